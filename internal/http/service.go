package http

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"

	apicontract "github.com/tuanvumaihuynh/inventory-pos/api-contract"
	"github.com/tuanvumaihuynh/inventory-pos/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-pos/internal/config"
	"github.com/tuanvumaihuynh/inventory-pos/internal/http/apierr"
	"github.com/tuanvumaihuynh/inventory-pos/internal/http/gen"
	"github.com/tuanvumaihuynh/inventory-pos/internal/http/metric"
	"github.com/tuanvumaihuynh/inventory-pos/internal/http/middleware"
	"github.com/tuanvumaihuynh/inventory-pos/internal/http/swagger"
	"github.com/tuanvumaihuynh/inventory-pos/internal/service"
	"github.com/tuanvumaihuynh/inventory-pos/internal/storage/db"
	"github.com/tuanvumaihuynh/inventory-pos/pkg/validator"
)

var tracer = otel.Tracer("internal/http")

// Services are the application services exposed over HTTP.
type Services struct {
	Product service.ProductService
	Stock   service.StockService
	Sale    service.SaleService
	Alert   service.AlertService
	Catalog service.CatalogService
	Report  service.ReportService
}

// Service represents the HTTP service.
type Service struct {
	cfg       config.HTTP
	logger    *slog.Logger
	metrics   *metric.Metrics
	validator validator.Validator
	health    db.HealthChecker

	svcs Services
}

type CleanupFunc func(ctx context.Context) error

func New(
	cfg config.HTTP,
	log *slog.Logger,
	registerer prometheus.Registerer,
	validator validator.Validator,
	health db.HealthChecker,
	svcs Services,
) *Service {
	return &Service{
		cfg:       cfg,
		logger:    log.With(slog.String("service", "http")),
		metrics:   metric.New(registerer),
		validator: validator,
		health:    health,
		svcs:      svcs,
	}
}

func (s *Service) Run(ctx context.Context) (CleanupFunc, error) {
	handler, err := s.Handler(ctx)
	if err != nil {
		return nil, err
	}

	return s.RunWithServer(ctx, handler)
}

// Handler builds the router with every middleware and route registered.
func (s *Service) Handler(ctx context.Context) (http.Handler, error) {
	r := chi.NewRouter()
	s.RegisterMiddlewares(r)

	if s.cfg.Swagger {
		swagger.Register(r)
	}

	if err := s.RegisterHandlers(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) RunWithServer(ctx context.Context, handler http.Handler) (CleanupFunc, error) {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.cfg.Port),
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64 KB
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	s.logger.InfoContext(ctx, "http server started", slog.String("addr", srv.Addr))

	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}, nil
}

func (s *Service) RegisterMiddlewares(r chi.Router) {
	r.Use(
		middleware.Recoverer(s.logger),
		middleware.Trace(tracer),
		middleware.Metrics(s.metrics),
		middleware.CorrelationID(),
		middleware.Cors(s.cfg.AllowedOrigins),
		middleware.Logging(s.logger),
	)
}

func (s *Service) RegisterHandlers(ctx context.Context, r chi.Router) error {
	var requestValidator func(http.Handler) http.Handler
	if s.cfg.RequestValidation {
		v, err := middleware.NewRequestValidator(ctx, apicontract.GetSpecBytes(), s.handleRequestError)
		if err != nil {
			return fmt.Errorf("create request validator: %w", err)
		}
		requestValidator = v.Middleware
	}

	strictHandlers := gen.NewStrictHandlerWithOptions(
		s.newHandler(),
		[]gen.StrictMiddlewareFunc{},
		gen.StrictHTTPServerOptions{
			RequestErrorHandlerFunc:  s.handleRequestError,
			ResponseErrorHandlerFunc: s.handleResponseError,
		},
	)

	r.Group(func(r chi.Router) {
		if requestValidator != nil {
			r.Use(requestValidator)
		}

		gen.HandlerWithOptions(strictHandlers, gen.ChiServerOptions{
			BaseRouter:       r,
			ErrorHandlerFunc: s.handleResponseError,
			Middlewares:      []gen.MiddlewareFunc{},
		})
	})

	r.Get("/healthz", s.handleHealth)

	r.Handle(middleware.MetricsPath, promhttp.HandlerFor(prometheus.DefaultGatherer, promhttp.HandlerOpts{
		ErrorLog: log.Default(),
	}))

	return nil
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	status, statusCode := "ok", http.StatusOK

	healthy, err := s.health.IsHealthy(r.Context())
	if err != nil || !healthy {
		s.logger.WarnContext(r.Context(), "health check failed", slog.Any("error", err))
		status, statusCode = "unavailable", http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": status}); err != nil {
		s.logger.WarnContext(r.Context(), "error encoding health response", slog.Any("error", err))
	}
}

func (s *Service) handleRequestError(w http.ResponseWriter, r *http.Request, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)

	err = apperr.ValidationErr.WithMsg("%s", err.Error()).WrapParent(err)
	res := apierr.New(err)

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.WarnContext(r.Context(), "error encoding error request",
			slog.Any("error", err))
	}
}

func (s *Service) handleResponseError(w http.ResponseWriter, r *http.Request, err error) {
	res := apierr.New(err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)

	logLevel := slog.LevelInfo
	if res.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if res.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	s.logger.Log(r.Context(), logLevel, "http response error", slog.Any("error", err))

	if err := json.NewEncoder(w).Encode(res); err != nil {
		s.logger.ErrorContext(r.Context(), "error encoding error response",
			slog.Any("error", err))
	}
}

var _ gen.StrictServerInterface = (*handler)(nil)

type handler struct {
	*productHandler
	*saleHandler
	*alertHandler
	*catalogHandler
	*reportHandler
}

func (s *Service) newHandler() *handler {
	return &handler{
		productHandler: newProductHandler(s.validator, s.svcs.Product, s.svcs.Stock, s.svcs.Alert),
		saleHandler:    newSaleHandler(s.svcs.Sale),
		alertHandler:   newAlertHandler(s.svcs.Alert),
		catalogHandler: newCatalogHandler(s.svcs.Catalog),
		reportHandler:  newReportHandler(s.svcs.Report),
	}
}
