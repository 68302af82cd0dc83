package metric

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetric_Evaluate(t *testing.T) {

	type test struct {
		metric Name
		yTrue  []float64
		yPred  []float64
		value  float64
	}

	tests := map[string]test{
		"accuracy-all": {
			metric: Accuracy,
			yTrue:  []float64{1, 2, 3},
			yPred:  []float64{1, 2, 3},
			value:  1.0,
		},
		"accuracy-none": {
			metric: Accuracy,
			yTrue:  []float64{1, 2, 3},
			yPred:  []float64{0, 0, 0},
			value:  0.0,
		},
		"accuracy-imbalanced": {
			metric: Accuracy,
			yTrue:  []float64{0, 0, 1, 1, 1},
			yPred:  []float64{0, 1, 1, 1, 1},
			value:  0.8,
		},
		"categorical-accuracy": {
			metric: CategoricalAccuracy,
			yTrue:  []float64{1, 2, 3, 4},
			yPred:  []float64{1, 2, 0, 0},
			value:  0.5,
		},
		"balanced-accuracy": {
			metric: BalancedAccuracy,
			yTrue:  []float64{0, 0, 1, 1, 1},
			yPred:  []float64{0, 1, 1, 1, 1},
			value:  0.75,
		},
		// class 2 only appears in the predictions
		"balanced-accuracy-prediction-only-class": {
			metric: BalancedAccuracy,
			yTrue:  []float64{0, 0, 1, 1},
			yPred:  []float64{2, 0, 1, 2},
			value:  0.5,
		},
		"mse": {
			metric: MeanSquaredError,
			yTrue:  []float64{0, 0},
			yPred:  []float64{1, 1},
			value:  1.0,
		},
		"mse-mixed": {
			metric: MeanSquaredError,
			yTrue:  []float64{1, 2, 3},
			yPred:  []float64{1, 4, 0},
			value:  13.0 / 3,
		},
		"rmse": {
			metric: RootMeanSquaredError,
			yTrue:  []float64{0, 0},
			yPred:  []float64{1, 1},
			value:  1.0,
		},
		"rmse-mixed": {
			metric: RootMeanSquaredError,
			yTrue:  []float64{0, 0},
			yPred:  []float64{3, -3},
			value:  3.0,
		},
		"mae": {
			metric: MeanAbsoluteError,
			yTrue:  []float64{0, 2},
			yPred:  []float64{0, 0},
			value:  1.0,
		},
		"mae-negative": {
			metric: MeanAbsoluteError,
			yTrue:  []float64{-1, 1, 0, 0},
			yPred:  []float64{1, -1, 0, 0},
			value:  1.0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v, err := tt.metric.Metric().Evaluate(tt.yTrue, tt.yPred)
			require.NoError(t, err)
			assert.InDelta(t, tt.value, v, 1e-12)
		})
	}
}

func TestMetric_Exact(t *testing.T) {
	acc, err := Accuracy.Metric().Evaluate([]float64{1, 2, 3}, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 1.0, acc)

	mse, err := MeanSquaredError.Metric().Evaluate([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, mse)

	rmse, err := RootMeanSquaredError.Metric().Evaluate([]float64{0, 0}, []float64{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 1.0, rmse)

	mae, err := MeanAbsoluteError.Metric().Evaluate([]float64{0, 2}, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, mae)
}

func TestBalancedAccuracy_IsNotAccuracy(t *testing.T) {
	yTrue := []float64{0, 0, 1, 1, 1}
	yPred := []float64{0, 1, 1, 1, 1}

	balanced, err := BalancedAccuracy.Metric().Evaluate(yTrue, yPred)
	require.NoError(t, err)
	plain, err := Accuracy.Metric().Evaluate(yTrue, yPred)
	require.NoError(t, err)

	assert.Equal(t, 0.75, balanced)
	assert.InDelta(t, 0.8, plain, 1e-12)
	assert.NotEqual(t, plain, balanced)
}

func TestMetric_InvalidInput(t *testing.T) {

	type test struct {
		yTrue []float64
		yPred []float64
	}

	tests := map[string]test{
		"empty":       {yTrue: []float64{}, yPred: []float64{}},
		"nil":         {},
		"empty-pred":  {yTrue: []float64{1}, yPred: []float64{}},
		"shorter":     {yTrue: []float64{1, 2}, yPred: []float64{1}},
		"longer-pred": {yTrue: []float64{1}, yPred: []float64{1, 2}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			for _, n := range Names() {
				_, err := n.Metric().Evaluate(tt.yTrue, tt.yPred)
				assert.True(t, errors.Is(err, InvalidInputErr), "metric %s", n)
			}
		})
	}
}

func TestGet(t *testing.T) {
	for _, n := range Names() {
		m, ok := Get(n.String())
		assert.True(t, ok)
		assert.NotNil(t, m)
		assert.Equal(t, n.Metric(), m)
	}

	assert.NotPanics(t, func() {
		m, ok := Get("nonexistent")
		assert.False(t, ok)
		assert.Nil(t, m)
	})

	// names are matched exactly
	_, ok := Get("Accuracy")
	assert.False(t, ok)
	_, ok = Get(" accuracy")
	assert.False(t, ok)

	assert.Nil(t, Name(0).Metric())
	assert.Equal(t, "Name(0)", Name(0).String())
}

func TestNames(t *testing.T) {
	names := make([]string, 0)
	for _, n := range Names() {
		names = append(names, n.String())
		parsed, ok := ParseName(n.String())
		assert.True(t, ok)
		assert.Equal(t, n, parsed)
	}
	assert.Equal(t, []string{
		"mean_squared_error",
		"accuracy",
		"root_mean_squared_error",
		"mean_absolute_error",
		"categorical_accuracy",
		"balanced_accuracy",
	}, names)
}

func TestEvaluate_Coercion(t *testing.T) {

	type test struct {
		metric Name
		yTrue  interface{}
		yPred  interface{}
		value  float64
		err    bool
	}

	tests := map[string]test{
		"ints": {
			metric: Accuracy,
			yTrue:  []int{1, 2, 3},
			yPred:  []int64{1, 2, 0},
			value:  2.0 / 3,
		},
		"strings": {
			metric: MeanAbsoluteError,
			yTrue:  []string{"0", " 2"},
			yPred:  []interface{}{0, 0.0},
			value:  1.0,
		},
		"json": {
			metric: MeanSquaredError,
			yTrue:  []interface{}{json.Number("0"), json.Number("0")},
			yPred:  []float32{1, 1},
			value:  1.0,
		},
		"bools": {
			metric: Accuracy,
			yTrue:  []bool{true, false},
			yPred:  []int{1, 1},
			value:  0.5,
		},
		"array": {
			metric: Accuracy,
			yTrue:  [3]int{1, 2, 3},
			yPred:  []int{1, 2, 3},
			value:  1.0,
		},
		"nested-categorical": {
			metric: CategoricalAccuracy,
			yTrue:  [][]int{{1}, {2}, {3}, {4}},
			yPred:  []int{1, 2, 0, 4},
			value:  0.75,
		},
		"nested-categorical-matrix": {
			metric: CategoricalAccuracy,
			yTrue:  [][]float64{{1, 2}, {3, 4}},
			yPred:  [][]interface{}{{1, 2}, {3, 0}},
			value:  0.75,
		},
		"nested-accuracy": {
			metric: Accuracy,
			yTrue:  [][]int{{1}, {2}},
			yPred:  []int{1, 2},
			err:    true,
		},
		"nested-mse": {
			metric: MeanSquaredError,
			yTrue:  []int{1, 2},
			yPred:  [][]int{{1}, {2}},
			err:    true,
		},
		"non-numeric": {
			metric: MeanSquaredError,
			yTrue:  []string{"a", "b"},
			yPred:  []int{1, 2},
			err:    true,
		},
		"missing": {
			metric: Accuracy,
			yTrue:  []interface{}{1, nil},
			yPred:  []int{1, 2},
			err:    true,
		},
		"scalar": {
			metric: Accuracy,
			yTrue:  1,
			yPred:  []int{1},
			err:    true,
		},
		"nil": {
			metric: Accuracy,
			yPred:  []int{1},
			err:    true,
		},
		"mismatch": {
			metric: CategoricalAccuracy,
			yTrue:  [][]int{{1, 2}},
			yPred:  []int{1},
			err:    true,
		},
		"unsupported": {
			metric: Accuracy,
			yTrue:  []struct{}{{}},
			yPred:  []int{1},
			err:    true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v, err := Evaluate(tt.metric.Metric(), tt.yTrue, tt.yPred)
			if tt.err {
				assert.True(t, errors.Is(err, InvalidInputErr))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.value, v, 1e-12)
		})
	}
}

func TestGenerics(t *testing.T) {
	acc, err := AccuracyOf([]string{"cat", "dog", "dog"}, []string{"cat", "cat", "dog"})
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3, acc, 1e-12)

	bacc, err := BalancedAccuracyOf([]string{"cat", "dog", "dog", "dog"}, []string{"cat", "cat", "dog", "dog"})
	require.NoError(t, err)
	assert.InDelta(t, (1.0+2.0/3)/2, bacc, 1e-12)

	_, err = AccuracyOf([]string{"a"}, []string{})
	assert.True(t, errors.Is(err, InvalidInputErr))
}

func TestBalancedAccuracy_NaN(t *testing.T) {

	type test struct {
		yTrue []float64
		yPred []float64
		value float64
	}

	tests := map[string]test{
		"nan-skipped":    {yTrue: []float64{0, math.NaN()}, yPred: []float64{0, math.NaN()}, value: 1},
		"nan-prediction": {yTrue: []float64{0, 1}, yPred: []float64{0, math.NaN()}, value: 0.5},
		"all-nan":        {yTrue: []float64{math.NaN(), math.NaN()}, yPred: []float64{math.NaN(), math.NaN()}, value: math.NaN()},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			v, err := BalancedAccuracy.Metric().Evaluate(tt.yTrue, tt.yPred)
			require.NoError(t, err)
			if math.IsNaN(tt.value) {
				assert.True(t, math.IsNaN(v))
				return
			}
			assert.Equal(t, tt.value, v)
		})
	}
}

func TestEvaluate_Labels(t *testing.T) {

	type test struct {
		metric string
		yTrue  interface{}
		yPred  interface{}
		value  float64
		err    bool
	}

	tests := map[string]test{
		"accuracy":             {metric: "accuracy", yTrue: []string{"cat", "dog"}, yPred: []string{"cat", "cat"}, value: 0.5},
		"accuracy-interface":   {metric: "accuracy", yTrue: []interface{}{"cat", "dog", "cat", "dog"}, yPred: []interface{}{"cat", "dog", "dog", "dog"}, value: 0.75},
		"balanced-accuracy":    {metric: "balanced_accuracy", yTrue: []string{"cat", "dog"}, yPred: []string{"cat", "cat"}, value: 0.5},
		"balanced-unequal":     {metric: "balanced_accuracy", yTrue: []string{"a", "a", "a", "b"}, yPred: []string{"a", "a", "a", "a"}, value: 0.5},
		"categorical-accuracy": {metric: "categorical_accuracy", yTrue: [][]string{{"cat", "dog"}, {"dog", "cat"}}, yPred: [][]string{{"cat", "dog"}, {"cat", "cat"}}, value: 0.75},
		"mixed":                {metric: "accuracy", yTrue: []interface{}{"1", "cat"}, yPred: []interface{}{1, "dog"}, value: 0.5},
		"numeric-strings":      {metric: "accuracy", yTrue: []string{"1.0", "2"}, yPred: []float64{1, 2}, value: 1},
		"text-vs-numbers":      {metric: "accuracy", yTrue: []string{"cat", "dog"}, yPred: []int{1, 0}, value: 0},
		"length-mismatch":      {metric: "accuracy", yTrue: []string{"cat", "dog"}, yPred: []string{"cat"}, err: true},
		"missing-label":        {metric: "accuracy", yTrue: []interface{}{"cat", nil}, yPred: []string{"cat", "dog"}, err: true},
		"nested-label":         {metric: "accuracy", yTrue: [][]string{{"cat"}, {"dog"}}, yPred: [][]string{{"cat"}, {"dog"}}, err: true},
		"regression":           {metric: "mean_squared_error", yTrue: []string{"cat", "dog"}, yPred: []string{"cat", "cat"}, err: true},
		"regression-absolute":  {metric: "mean_absolute_error", yTrue: []string{"cat"}, yPred: []string{"dog"}, err: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			m, ok := Get(tt.metric)
			require.True(t, ok)
			v, err := Evaluate(m, tt.yTrue, tt.yPred)
			if tt.err {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, InvalidInputErr))
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.value, v, 1e-12)
		})
	}
}
