package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

type Action string

type Method string

const (
	Data Action = "data"
	Api  Action = "api"

	GET  Method = "GET"
	POST Method = "POST"
)

const shutdownTimeout = 5 * time.Second

// Handler processes a request and returns the payload and the status code.
// A zero code with no error means http.StatusOK.
type Handler func(r *http.Request) ([]byte, int, error)

type Route struct {
	Action Action
	Path   string
	Method Method
	Exec   Handler
}

type Server struct {
	name   string
	port   int
	debug  bool
	routes []Route
	mounts map[string]http.Handler
}

func NewServer(name string, port int) *Server {
	return &Server{
		name:   name,
		port:   port,
		routes: make([]Route, 0),
		mounts: make(map[string]http.Handler),
	}
}

// Debug sets the server to debug mode
func (s *Server) Debug() *Server {
	s.debug = true
	return s
}

// AddRoute adds a route for the given handler to the server
func (s *Server) AddRoute(method Method, action Action, path string, exec Handler) *Server {
	s.routes = append(s.routes, Route{
		Action: action,
		Path:   path,
		Method: method,
		Exec:   exec,
	})
	return s
}

// Add adds the given routes to the server
func (s *Server) Add(route ...Route) *Server {
	s.routes = append(s.routes, route...)
	return s
}

// Mount serves the given http handler under the path i.e. for the prometheus metrics.
func (s *Server) Mount(path string, handler http.Handler) *Server {
	s.mounts[path] = handler
	return s
}

func (s *Server) handle(route Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		b, code, err := route.Exec(r)
		if code == 0 {
			code = http.StatusOK
		}
		if err != nil {
			if code == http.StatusOK {
				code = http.StatusInternalServerError
			}
			s.error(w, r, err, code)
		} else {
			s.code(w, b, code)
		}
		if s.debug {
			log.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("code", code).
				Float64("duration", time.Since(start).Seconds()).
				Msg("completed request")
		}
	}
}

// Router creates the router for all the server routes.
func (s *Server) Router() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{string(GET), string(POST), "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	for _, route := range s.routes {
		path := fmt.Sprintf("/%s", route.Action)
		if route.Path != "" {
			path = fmt.Sprintf("/%s/%s", route.Action, route.Path)
		}
		router.Method(string(route.Method), path, s.handle(route))
	}
	for path, handler := range s.mounts {
		router.Handle(path, handler)
	}
	return router
}

// Run starts the server and blocks until the context is done.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.Router(),
	}

	errs := make(chan error, 1)
	go func() {
		log.Warn().Str("server", s.name).Int("port", s.port).Msg("starting server")
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return fmt.Errorf("could not start server: %w", err)
	case <-ctx.Done():
	}

	shutdown, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	log.Warn().Str("server", s.name).Msg("stopping server")
	if err := srv.Shutdown(shutdown); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not stop server: %w", err)
	}
	return nil
}

func (s *Server) code(w http.ResponseWriter, b []byte, code int) {
	w.WriteHeader(code)
	s.respond(w, b)
}

func (s *Server) respond(w http.ResponseWriter, b []byte) {
	_, err := w.Write(b)
	if err != nil {
		log.Error().Err(err).Msg("could not write response")
	}
}

func (s *Server) error(w http.ResponseWriter, r *http.Request, err error, code int) {
	log.Error().Err(err).Str("path", r.URL.Path).Int("code", code).Msg("error for http request")
	s.code(w, []byte(err.Error()), code)
}

// Live is the liveness route.
func Live() Route {
	return Route{
		Action: Data,
		Method: GET,
		Exec: func(r *http.Request) (payload []byte, code int, err error) {
			return []byte{}, http.StatusOK, nil
		},
	}
}

// ReadJson decodes the json body of the request into the given value.
func ReadJson(r *http.Request, debug bool, v interface{}) ([]byte, error) {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	if debug {
		log.Info().
			Str("url", fmt.Sprintf("%+v", r.URL)).
			Str("remote-address", r.RemoteAddr).
			Str("method", r.Method).
			Str("body", string(body)).
			Msg("received payload")
	}
	if len(body) > 0 {
		err = json.Unmarshal(body, v)
		if err != nil {
			return body, err
		}
	}
	return body, nil
}
