package metric

import (
	"fmt"
	"reflect"

	"github.com/drakos74/autoop/internal/model"
)

// Label is a comparable classification label.
// Numeric values, numeric strings included, compare by value, any other string by its text.
type Label struct {
	Numeric bool
	Value   float64
	Text    string
}

// Vector converts the given slice or array into a float vector.
// Elements can be of any numeric kind, bools or numeric strings, json.Number included.
// Nested slices are flattened in row order if flatten is set, otherwise they are rejected.
func Vector(v interface{}, flatten bool) ([]float64, error) {
	if ff, ok := v.([]float64); ok {
		return ff, nil
	}
	vv := make([]float64, 0)
	err := collect(reflect.ValueOf(v), flatten, 0, func(e reflect.Value) error {
		f, err := scalar(e)
		if err != nil {
			return err
		}
		vv = append(vv, f)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return vv, nil
}

// Labels converts the given slice or array into classification labels.
// It accepts the same input as Vector and additionally any string.
func Labels(v interface{}, flatten bool) ([]Label, error) {
	ll := make([]Label, 0)
	err := collect(reflect.ValueOf(v), flatten, 0, func(e reflect.Value) error {
		if e.Kind() == reflect.String {
			if f, ok := model.ParseNumber(e.String()); ok {
				ll = append(ll, Label{Numeric: true, Value: f})
			} else {
				ll = append(ll, Label{Text: e.String()})
			}
			return nil
		}
		f, err := scalar(e)
		if err != nil {
			return err
		}
		ll = append(ll, Label{Numeric: true, Value: f})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ll, nil
}

func collect(v reflect.Value, flatten bool, depth int, add func(e reflect.Value) error) error {
	for v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return fmt.Errorf("missing value: %w", InvalidInputErr)
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if depth > 0 && !flatten {
			return fmt.Errorf("nested sequence of depth %d: %w", depth+1, InvalidInputErr)
		}
		for i := 0; i < v.Len(); i++ {
			if err := collect(v.Index(i), flatten, depth+1, add); err != nil {
				return err
			}
		}
		return nil
	case reflect.Invalid:
		return fmt.Errorf("missing value: %w", InvalidInputErr)
	}

	if depth == 0 {
		return fmt.Errorf("expected a sequence but got '%v': %w", v.Type(), InvalidInputErr)
	}
	return add(v)
}

func scalar(v reflect.Value) (float64, error) {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), nil
	case reflect.Bool:
		if v.Bool() {
			return 1, nil
		}
		return 0, nil
	case reflect.String:
		f, ok := model.ParseNumber(v.String())
		if !ok {
			return 0, fmt.Errorf("could not parse '%s': %w", v.String(), InvalidInputErr)
		}
		return f, nil
	}
	return 0, fmt.Errorf("unsupported type '%v': %w", v.Type(), InvalidInputErr)
}
