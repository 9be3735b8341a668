package ratelimit

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"backoffice.app/billing/response"
	"backoffice.app/pkg/errs"
)

// Limiter sheds write traffic above a fixed rate with a burst of twice the
// rate. It is shared by every route it wraps.
type Limiter struct {
	limiter *rate.Limiter
	logger  *zap.Logger
}

func NewLimiter(perSecond int, logger *zap.Logger) *Limiter {
	return &Limiter{
		limiter: rate.NewLimiter(rate.Limit(perSecond), perSecond*2),
		logger:  logger,
	}
}

func (l *Limiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.limiter.Allow() {
			l.logger.Warn("rate limit exceeded", zap.String("path", r.URL.Path), zap.String("remote_addr", r.RemoteAddr))
			response.Error(w, &errs.Error{Code: errs.ResourceExhausted, Message: "rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
