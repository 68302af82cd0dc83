package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/drakos74/autoop/internal/dataset"
	"github.com/drakos74/autoop/internal/feature"
	"github.com/drakos74/autoop/internal/metric"
	"github.com/drakos74/autoop/internal/model"
	"github.com/drakos74/autoop/internal/observe"
	"github.com/go-chi/chi/v5"
)

const csvContentType = "text/csv"

// API exposes the feature detection and the metric evaluation over http.
type API struct {
	classifier *feature.Classifier
	observer   *observe.Metrics
	debug      bool
}

// NewAPI creates a new api.
func NewAPI(classifier *feature.Classifier, observer *observe.Metrics) *API {
	return &API{
		classifier: classifier,
		observer:   observer,
	}
}

// Debug logs the request payloads.
func (a *API) Debug() *API {
	a.debug = true
	return a
}

// Routes returns the routes of the api.
func (a *API) Routes() []Route {
	return []Route{
		Live(),
		{Action: Api, Path: "metrics", Method: GET, Exec: a.metrics},
		{Action: Api, Path: "metrics/{name}", Method: POST, Exec: a.evaluate},
		{Action: Api, Path: "features", Method: POST, Exec: a.features},
	}
}

// New creates a server exposing the api and the prometheus metrics.
func New(name string, port int, api *API) *Server {
	return NewServer(name, port).
		Add(api.Routes()...).
		Mount("/metrics", observe.Handler())
}

func (a *API) metrics(_ *http.Request) ([]byte, int, error) {
	names := make([]string, 0)
	for _, n := range metric.Names() {
		names = append(names, n.String())
	}
	payload, err := json.Marshal(names)
	return payload, http.StatusOK, err
}

func (a *API) evaluate(r *http.Request) ([]byte, int, error) {
	name := chi.URLParam(r, "name")
	m, ok := metric.Get(name)
	if !ok {
		return nil, http.StatusNotFound, fmt.Errorf("unknown metric '%s'", name)
	}

	var request MetricRequest
	if _, err := ReadJson(r, a.debug, &request); err != nil {
		return nil, http.StatusBadRequest, fmt.Errorf("could not decode request: %w", err)
	}

	v, err := metric.Evaluate(m, request.GroundTruth, request.Predictions)
	a.observer.Evaluated(name, err)
	if err != nil {
		if errors.Is(err, metric.InvalidInputErr) {
			return nil, http.StatusBadRequest, err
		}
		return nil, http.StatusInternalServerError, err
	}

	payload, err := json.Marshal(NewMetricResponse(name, v))
	return payload, http.StatusOK, err
}

func (a *API) features(r *http.Request) ([]byte, int, error) {
	var table model.Table
	if strings.HasPrefix(r.Header.Get("Content-Type"), csvContentType) {
		body, err := ioutil.ReadAll(r.Body)
		if err != nil {
			return nil, http.StatusBadRequest, fmt.Errorf("could not read request: %w", err)
		}
		table, err = dataset.FromCSV(r.Context(), bytes.NewReader(body))
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
	} else {
		var request FeaturesRequest
		if _, err := ReadJson(r, a.debug, &request); err != nil {
			return nil, http.StatusBadRequest, fmt.Errorf("could not decode request: %w", err)
		}
		table = model.Table(request)
	}

	features := a.classifier.Detect(table)
	for _, f := range features {
		a.observer.Detected(string(f.Type))
	}
	payload, err := json.Marshal(features)
	return payload, http.StatusOK, err
}
