package metric

import (
	"gonum.org/v1/gonum/stat"
)

// recall counts the correct predictions within one true class.
type recall struct {
	total   int
	correct int
}

// AccuracyOf returns the fraction of equal pairs for any comparable labels.
func AccuracyOf[T comparable](yTrue, yPred []T) (float64, error) {
	if err := check(len(yTrue), len(yPred)); err != nil {
		return 0, err
	}
	c := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			c++
		}
	}
	return float64(c) / float64(len(yTrue)), nil
}

// BalancedAccuracyOf returns the unweighted mean of the per-class recall.
// Classes are taken from the ground truth only, labels that appear only
// in the predictions do not contribute a term and neither do NaN labels.
func BalancedAccuracyOf[T comparable](yTrue, yPred []T) (float64, error) {
	if err := check(len(yTrue), len(yPred)); err != nil {
		return 0, err
	}

	index := make(map[T]int)
	classes := make([]recall, 0)
	for i, y := range yTrue {
		// NaN never matches itself, so it has no computable recall
		if y != y {
			continue
		}
		c, ok := index[y]
		if !ok {
			c = len(classes)
			index[y] = c
			classes = append(classes, recall{})
		}
		classes[c].total++
		if yPred[i] == y {
			classes[c].correct++
		}
	}

	recalls := make([]float64, 0, len(classes))
	for _, r := range classes {
		recalls = append(recalls, float64(r.correct)/float64(r.total))
	}
	// NaN if no class has a recall
	return stat.Mean(recalls, nil), nil
}

type accuracy struct{}

func (accuracy) Evaluate(yTrue, yPred []float64) (float64, error) {
	return AccuracyOf(yTrue, yPred)
}

func (accuracy) evaluateLabels(yTrue, yPred []Label) (float64, error) {
	return AccuracyOf(yTrue, yPred)
}

type categoricalAccuracy struct{}

func (categoricalAccuracy) flatten() {}

func (categoricalAccuracy) Evaluate(yTrue, yPred []float64) (float64, error) {
	return AccuracyOf(yTrue, yPred)
}

func (categoricalAccuracy) evaluateLabels(yTrue, yPred []Label) (float64, error) {
	return AccuracyOf(yTrue, yPred)
}

type balancedAccuracy struct{}

func (balancedAccuracy) Evaluate(yTrue, yPred []float64) (float64, error) {
	return BalancedAccuracyOf(yTrue, yPred)
}

func (balancedAccuracy) evaluateLabels(yTrue, yPred []Label) (float64, error) {
	return BalancedAccuracyOf(yTrue, yPred)
}
