package billing

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"backoffice.app/billing/business/adjustment"
	"backoffice.app/billing/business/payment"
	"backoffice.app/billing/business/statement"
	"backoffice.app/billing/response"
	"backoffice.app/pkg/errs"
)

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Service struct {
	statements  statement.Business
	payments    payment.Business
	adjustments adjustment.Business
	db          Pinger
	logger      *zap.Logger
}

func NewService(
	statements statement.Business,
	payments payment.Business,
	adjustments adjustment.Business,
	db Pinger,
	logger *zap.Logger,
) *Service {
	return &Service{
		statements:  statements,
		payments:    payments,
		adjustments: adjustments,
		db:          db,
		logger:      logger,
	}
}

// Router wires the HTTP API. writeGuards wrap only the endpoints that
// mutate a bill, e.g. the idempotency and rate limit middleware.
func (s *Service) Router(requestTimeout time.Duration, writeGuards ...func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Timeout(requestTimeout),
	)

	r.Get("/healthz", s.Health)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/customers/{customerID}/connections/{connectionID}/bills/{year}/{month}", s.GetStatement)

		r.Group(func(r chi.Router) {
			r.Use(writeGuards...)
			r.Post("/bills/{billID}/payments", s.PayBill)
			r.Post("/bills/{billID}/adjustments", s.AdjustBill)
		})
	})

	return r
}

func (s *Service) Health(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.logger.Error("health check failed", zap.Error(err))
		response.Error(w, &errs.Error{Code: errs.Unavailable, Message: "database unavailable"})
		return
	}
	response.Success(w, "ok", nil)
}
