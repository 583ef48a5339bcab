package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type CORSConfig struct {
	Enabled          bool     `mapstructure:"enabled" yaml:"enabled"`
	AllowedOrigins   []string `mapstructure:"allowed_origins" yaml:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods" yaml:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers" yaml:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers" yaml:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials" yaml:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age" yaml:"max_age"`
}

type HandlerConfig struct {
	// DevMode includes diagnostic traces in error responses.
	DevMode bool
	// MaxBodyBytes limits request bodies; 0 disables the limit.
	MaxBodyBytes int64
	CORS         CORSConfig
}

// Handler wires the route table, dispatcher and error translator behind the
// ambient middleware chain.
type Handler struct {
	config     HandlerConfig
	translator *Translator
	dispatcher *Dispatcher
}

// NewHandler creates a new Handler serving the API routes.
func NewHandler(config *HandlerConfig) *Handler {
	translator := NewTranslator(config.DevMode)
	return &Handler{
		config:     *config,
		translator: translator,
		dispatcher: NewDispatcher(Routes(), translator),
	}
}

// Translator returns the translator used for every error response.
func (h *Handler) Translator() *Translator {
	return h.translator
}

// Router returns an http.Handler with the middleware chain applied. Every
// path and method is handed to the dispatcher, which owns the matched and
// unmatched branches.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(RequestIDMiddleware)
	r.Use(AccessLogMiddleware)
	r.Use(RecoverMiddleware(h.translator))

	if h.config.CORS.Enabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.config.CORS.AllowedOrigins,
			AllowedMethods:   h.config.CORS.AllowedMethods,
			AllowedHeaders:   h.config.CORS.AllowedHeaders,
			ExposedHeaders:   h.config.CORS.ExposedHeaders,
			AllowCredentials: h.config.CORS.AllowCredentials,
			MaxAge:           h.config.CORS.MaxAge,
		}))
	}

	if h.config.MaxBodyBytes > 0 {
		r.Use(middleware.RequestSize(h.config.MaxBodyBytes))
	}

	r.Handle("/*", h.dispatcher)
	r.NotFound(h.dispatcher.ServeHTTP)
	r.MethodNotAllowed(h.dispatcher.ServeHTTP)

	return r
}
