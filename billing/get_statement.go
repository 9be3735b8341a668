package billing

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"backoffice.app/billing/model"
	"backoffice.app/billing/response"
	"backoffice.app/pkg/errs"
)

type GetStatementRequest struct {
	CustomerID   string `validate:"required,max=50"`
	ConnectionID string `validate:"required,max=50"`
	Month        int    `validate:"min=1,max=12"`
	Year         int    `validate:"min=1900,max=9999"`
}

// GET /v1/customers/{customerID}/connections/{connectionID}/bills/{year}/{month}
func (s *Service) GetStatement(w http.ResponseWriter, r *http.Request) {
	req, err := newGetStatementRequest(r)
	if err != nil {
		response.Error(w, err)
		return
	}

	if err := req.Validate(); err != nil {
		response.Error(w, err)
		return
	}

	statement, err := s.statements.GetStatement(r.Context(), model.StatementKey{
		CustomerID:   req.CustomerID,
		ConnectionID: req.ConnectionID,
		Period:       model.Period{Month: req.Month, Year: req.Year},
	})
	if err != nil {
		s.logger.Error("failed to get statement",
			zap.String("customer_id", req.CustomerID),
			zap.String("connection_id", req.ConnectionID),
			zap.Error(err),
		)
		response.Error(w, err)
		return
	}

	response.Success(w, "bill statement", statement)
}

func newGetStatementRequest(r *http.Request) (*GetStatementRequest, error) {
	month, monthErr := strconv.Atoi(chi.URLParam(r, "month"))
	year, yearErr := strconv.Atoi(chi.URLParam(r, "year"))
	if monthErr != nil || yearErr != nil {
		return nil, &errs.Error{Code: errs.InvalidArgument, Message: "invalid billing period"}
	}

	return &GetStatementRequest{
		CustomerID:   chi.URLParam(r, "customerID"),
		ConnectionID: chi.URLParam(r, "connectionID"),
		Month:        month,
		Year:         year,
	}, nil
}

// Validate implements validation for GetStatementRequest
func (r *GetStatementRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: err.Error()}
	}
	return nil
}
