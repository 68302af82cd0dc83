package metric

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type mse struct{}

func (mse) Evaluate(yTrue, yPred []float64) (float64, error) {
	if err := check(len(yTrue), len(yPred)); err != nil {
		return 0, err
	}
	diff := floats.SubTo(make([]float64, len(yTrue)), yTrue, yPred)
	return floats.Dot(diff, diff) / float64(len(yTrue)), nil
}

type rmse struct{}

func (rmse) Evaluate(yTrue, yPred []float64) (float64, error) {
	v, err := mse{}.Evaluate(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(v), nil
}

type mae struct{}

func (mae) Evaluate(yTrue, yPred []float64) (float64, error) {
	if err := check(len(yTrue), len(yPred)); err != nil {
		return 0, err
	}
	return floats.Distance(yTrue, yPred, 1) / float64(len(yTrue)), nil
}
