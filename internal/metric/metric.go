package metric

import (
	"errors"
	"fmt"
)

// InvalidInputErr signals sequences that cannot be compared i.e. empty or of different length.
var InvalidInputErr = errors.New("invalid input")

// Name is the tag of a known metric.
type Name int

const (
	// MeanSquaredError is the mean of the squared differences.
	MeanSquaredError Name = iota + 1
	// Accuracy is the fraction of equal pairs.
	Accuracy
	// RootMeanSquaredError is the square root of the mean squared error.
	RootMeanSquaredError
	// MeanAbsoluteError is the mean of the absolute differences.
	MeanAbsoluteError
	// CategoricalAccuracy is the accuracy over flattened inputs.
	CategoricalAccuracy
	// BalancedAccuracy is the unweighted mean of the recall of each class.
	BalancedAccuracy
)

var names = map[Name]string{
	MeanSquaredError:     "mean_squared_error",
	Accuracy:             "accuracy",
	RootMeanSquaredError: "root_mean_squared_error",
	MeanAbsoluteError:    "mean_absolute_error",
	CategoricalAccuracy:  "categorical_accuracy",
	BalancedAccuracy:     "balanced_accuracy",
}

// registry is the dispatch table from tag to evaluator.
var registry = map[Name]Metric{
	MeanSquaredError:     mse{},
	Accuracy:             accuracy{},
	RootMeanSquaredError: rmse{},
	MeanAbsoluteError:    mae{},
	CategoricalAccuracy:  categoricalAccuracy{},
	BalancedAccuracy:     balancedAccuracy{},
}

func (n Name) String() string {
	if s, ok := names[n]; ok {
		return s
	}
	return fmt.Sprintf("Name(%d)", int(n))
}

// Metric returns the evaluator for the tag.
// It returns nil for an unknown tag.
func (n Name) Metric() Metric {
	return registry[n]
}

// Names returns all known metric tags.
func Names() []Name {
	return []Name{
		MeanSquaredError,
		Accuracy,
		RootMeanSquaredError,
		MeanAbsoluteError,
		CategoricalAccuracy,
		BalancedAccuracy,
	}
}

// ParseName matches the given string exactly against the known metric names.
func ParseName(s string) (Name, bool) {
	for n, name := range names {
		if name == s {
			return n, true
		}
	}
	return 0, false
}

// Get returns the metric for the given name.
// Callers need to check the returned flag, unknown names return nil.
func Get(name string) (Metric, bool) {
	n, ok := ParseName(name)
	if !ok {
		return nil, false
	}
	return n.Metric(), true
}

// Metric scores predictions against the ground truth.
type Metric interface {
	// Evaluate returns the score for the given sequences.
	// It fails with InvalidInputErr if the sequences are empty or of different length.
	Evaluate(yTrue, yPred []float64) (float64, error)
}

// flat is implemented by metrics that accept nested input.
type flat interface {
	flatten()
}

// labeled is implemented by classification metrics that can compare non-numeric labels.
type labeled interface {
	evaluateLabels(yTrue, yPred []Label) (float64, error)
}

// Evaluate coerces the given sequences to numeric vectors and evaluates the metric on them.
// Classification metrics fall back to comparing labels if the sequences are not numeric.
func Evaluate(m Metric, yTrue, yPred interface{}) (float64, error) {
	_, nested := m.(flat)
	t, err := Vector(yTrue, nested)
	if err != nil {
		return evaluateLabels(m, yTrue, yPred, nested, fmt.Errorf("could not read ground truth: %w", err))
	}
	p, err := Vector(yPred, nested)
	if err != nil {
		return evaluateLabels(m, yTrue, yPred, nested, fmt.Errorf("could not read predictions: %w", err))
	}
	return m.Evaluate(t, p)
}

func evaluateLabels(m Metric, yTrue, yPred interface{}, nested bool, cause error) (float64, error) {
	l, ok := m.(labeled)
	if !ok {
		return 0, cause
	}
	t, err := Labels(yTrue, nested)
	if err != nil {
		return 0, fmt.Errorf("could not read ground truth labels: %w", err)
	}
	p, err := Labels(yPred, nested)
	if err != nil {
		return 0, fmt.Errorf("could not read prediction labels: %w", err)
	}
	return l.evaluateLabels(t, p)
}

func check(nTrue, nPred int) error {
	if nTrue == 0 || nPred == 0 {
		return fmt.Errorf("empty sequence [%d,%d]: %w", nTrue, nPred, InvalidInputErr)
	}
	if nTrue != nPred {
		return fmt.Errorf("length mismatch %d != %d: %w", nTrue, nPred, InvalidInputErr)
	}
	return nil
}
