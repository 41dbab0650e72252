package docserver

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/validoc/pkg/i18n"
	"github.com/dmitrymomot/validoc/pkg/logger"
	"github.com/dmitrymomot/validoc/pkg/render"
	"github.com/dmitrymomot/validoc/pkg/validator"
	"github.com/dmitrymomot/validoc/pkg/validoc"
)

// Server serves the documentation of a registry.
type Server struct {
	registry *validoc.Registry
	catalog  *i18n.Translator
	maxDepth int
	logger   *slog.Logger
	router   chi.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and warning logger. Default discards.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithCatalog sets the message catalog. Its languages are the ones offered
// for negotiation. Default is validator.DefaultMessages.
func WithCatalog(t *i18n.Translator) Option {
	return func(s *Server) {
		if t != nil {
			s.catalog = t
		}
	}
}

// WithMaxDepth bounds delegation nesting of deep documents.
func WithMaxDepth(depth int) Option {
	return func(s *Server) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

// New creates a Server over reg.
func New(reg *validoc.Registry, opts ...Option) (*Server, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	s := &Server{
		registry: reg,
		maxDepth: validoc.DefaultMaxDepth,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.catalog == nil {
		s.catalog = validator.DefaultMessages()
	}
	s.logger = s.logger.With(logger.Component("docserver"))
	s.router = s.routes()
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() chi.Router {
	langs := i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(s.catalog.SupportedLanguages()...))

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(i18n.Middleware(langs))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ALIVE"))
	})
	r.Route("/validators", func(r chi.Router) {
		r.Get("/", s.handle(s.listValidators))
		r.Get("/{name}", s.handle(s.describeValidator))
	})
	r.NotFound(s.handle(func(*http.Request) Response {
		return jsonResponse{status: http.StatusNotFound, body: Envelope{Error: &ErrorDetail{Code: "not_found", Message: "route not found"}}}
	}))
	return r
}

// handle adapts a Response-returning function to http.HandlerFunc.
func (s *Server) handle(fn func(r *http.Request) Response) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(r).Render(w, r); err != nil {
			s.logger.ErrorContext(r.Context(), "response rendering failed", logger.Error(err))
		}
	}
}

func (s *Server) listValidators(_ *http.Request) Response {
	names := s.registry.Names()
	return JSON(names, map[string]any{"count": len(names)})
}

func (s *Server) describeValidator(r *http.Request) Response {
	ctx := r.Context()
	name := chi.URLParam(r, "name")

	v, err := s.registry.Get(name)
	if err != nil {
		return JSONError(err)
	}

	query := r.URL.Query()
	nested := false
	if raw := query.Get("deep"); raw != "" {
		if nested, err = strconv.ParseBool(raw); err != nil {
			return JSONError(errors.Join(ErrInvalidParam, err))
		}
	}

	format := render.Format(query.Get("format"))
	if format == "" {
		format = render.FormatJSON
	}
	formatter, err := render.New(format)
	if err != nil {
		return JSONError(err)
	}

	lang := i18n.GetLocale(ctx)
	b := validoc.NewBuilder(
		validoc.WithCatalog(s.catalog),
		validoc.WithLanguage(lang),
		validoc.WithMaxDepth(s.maxDepth),
		validoc.WithLogger(s.logger),
	)

	start := time.Now()
	members, err := b.Document(v, nested)
	if members == nil && err != nil {
		return JSONError(err)
	}
	if err != nil {
		s.logger.WarnContext(ctx, "documentation incomplete",
			logger.Validator(v.Name()),
			logger.Error(err),
		)
	}
	s.logger.DebugContext(ctx, "validator documented",
		logger.Validator(v.Name()),
		slog.Int("members", len(members)),
		logger.Duration(time.Since(start)),
	)

	doc := render.Document{Validator: v.Name(), Language: lang, Nested: nested, Members: members}
	if _, ok := formatter.(*render.JSONFormatter); !ok {
		return formatted{formatter: formatter, doc: doc}
	}

	meta := map[string]any{"members": len(members)}
	if err != nil {
		meta["warnings"] = warnings(err)
	}
	return JSON(doc, meta)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.InfoContext(r.Context(), "request served",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.Duration(time.Since(start)),
		)
	})
}

// warnings flattens joined errors into their messages.
func warnings(err error) []string {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []string{err.Error()}
	}
	errs := joined.Unwrap()
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Error())
	}
	return out
}
