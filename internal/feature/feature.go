package feature

import (
	"github.com/drakos74/autoop/internal/model"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultMaxCategories is the max number of distinct values for an integer column to be categorical.
	DefaultMaxCategories = 3
	// DefaultMaxUniqueRatio is the exclusive upper bound of distinct over total values for a categorical column.
	DefaultMaxUniqueRatio = 0.05
)

// Config holds the thresholds of the classification heuristic.
type Config struct {
	MaxCategories  int     `json:"max_categories" yaml:"max_categories"`
	MaxUniqueRatio float64 `json:"max_unique_ratio" yaml:"max_unique_ratio"`
}

// DefaultConfig returns the default classification thresholds.
func DefaultConfig() Config {
	return Config{
		MaxCategories:  DefaultMaxCategories,
		MaxUniqueRatio: DefaultMaxUniqueRatio,
	}
}

// Profile contains the column statistics the classification is based on.
type Profile struct {
	Rows        int     `json:"rows"`
	Numeric     bool    `json:"numeric"`
	Distinct    int     `json:"distinct"`
	UniqueRatio float64 `json:"unique_ratio"`
	Integers    bool    `json:"integers"`
}

// Classifier decides the feature type of table columns.
type Classifier struct {
	config Config
}

// NewClassifier creates a new classifier.
// Only a zero valued config falls back to the defaults, single zero thresholds are kept
// i.e. a zero MaxUniqueRatio classifies every numeric column as numerical.
func NewClassifier(config Config) *Classifier {
	if config == (Config{}) {
		config = DefaultConfig()
	}
	return &Classifier{config: config}
}

// Config returns the thresholds of the classifier.
func (c *Classifier) Config() Config {
	return c.config
}

// Detect detects the feature type of each column with the default thresholds.
func Detect(table model.Table) []model.Feature {
	return NewClassifier(DefaultConfig()).Detect(table)
}

// Detect returns one feature per non-empty column, in the order of the table columns.
func (c *Classifier) Detect(table model.Table) []model.Feature {
	features := make([]model.Feature, 0, len(table.Columns))
	for _, column := range table.Columns {
		t, ok := c.Type(column)
		if !ok {
			log.Debug().Str("column", column.Name).Msg("skipping empty column")
			continue
		}
		features = append(features, model.NewFeature(column.Name, t))
	}
	return features
}

// Type returns the feature type of the column.
// It returns false if the column has no rows.
func (c *Classifier) Type(column model.Column) (model.FeatureType, bool) {
	p := c.Profile(column)
	if p.Rows == 0 {
		return "", false
	}
	t := c.decide(p)
	log.Debug().
		Str("column", column.Name).
		Bool("numeric", p.Numeric).
		Int("distinct", p.Distinct).
		Float64("ratio", p.UniqueRatio).
		Bool("integers", p.Integers).
		Str("type", string(t)).
		Msg("detected feature")
	return t, true
}

// Profile computes the statistics of the column.
// Distinct, UniqueRatio and Integers are only filled in for numeric columns.
func (c *Classifier) Profile(column model.Column) Profile {
	p := Profile{Rows: column.Len()}
	if p.Rows == 0 {
		return p
	}

	values := make([]float64, p.Rows)
	for i, v := range column.Values {
		f, ok := Parse(v)
		if !ok {
			return p
		}
		values[i] = f
	}
	p.Numeric = true

	unique := make(map[float64]struct{})
	p.Integers = true
	for _, f := range values {
		unique[f] = struct{}{}
		if !isInteger(f) {
			p.Integers = false
		}
	}
	p.Distinct = len(unique)
	p.UniqueRatio = float64(p.Distinct) / float64(p.Rows)
	return p
}

func (c *Classifier) decide(p Profile) model.FeatureType {
	if !p.Numeric {
		return model.Categorical
	}
	if p.Integers && p.Distinct <= c.config.MaxCategories && p.UniqueRatio < c.config.MaxUniqueRatio {
		return model.Categorical
	}
	return model.Numerical
}
