package model

import (
	"encoding/json"
	"errors"
	"fmt"
)

// InvalidFeatureTypeErr is returned when decoding a feature type outside the known set.
var InvalidFeatureTypeErr = errors.New("invalid feature type")

// FeatureType defines the semantic type of a column.
type FeatureType string

const (
	// Categorical defines a column holding discrete labels.
	Categorical FeatureType = "categorical"
	// Numerical defines a column holding continuous measurements.
	Numerical FeatureType = "numerical"
)

// FeatureTypes lists all known feature types.
func FeatureTypes() []FeatureType {
	return []FeatureType{Categorical, Numerical}
}

// ParseFeatureType parses the given string into a feature type.
func ParseFeatureType(s string) (FeatureType, error) {
	switch t := FeatureType(s); t {
	case Categorical, Numerical:
		return t, nil
	}
	return "", fmt.Errorf("'%s': %w", s, InvalidFeatureTypeErr)
}

// UnmarshalJSON rejects any type other than the known ones.
func (t *FeatureType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("could not decode feature type: %w", err)
	}
	ft, err := ParseFeatureType(s)
	if err != nil {
		return err
	}
	*t = ft
	return nil
}

// Feature is the inferred type of a table column.
type Feature struct {
	Name string      `json:"name"`
	Type FeatureType `json:"type"`
}

// NewFeature creates a new feature.
func NewFeature(name string, t FeatureType) Feature {
	return Feature{
		Name: name,
		Type: t,
	}
}

func (f Feature) String() string {
	return fmt.Sprintf("Feature(name='%s', type='%s')", f.Name, f.Type)
}
