package billing

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"backoffice.app/billing/mocks/business/adjustment_business"
	"backoffice.app/billing/mocks/business/payment_business"
	"backoffice.app/billing/mocks/business/statement_business"
	"backoffice.app/billing/response"
	"backoffice.app/pkg/errs"
)

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}

type serviceFixture struct {
	service     *Service
	statements  *statement_business.MockBusiness
	payments    *payment_business.MockBusiness
	adjustments *adjustment_business.MockBusiness
}

func newServiceFixture(t *testing.T, db Pinger) *serviceFixture {
	ctrl := gomock.NewController(t)

	f := &serviceFixture{
		statements:  statement_business.NewMockBusiness(ctrl),
		payments:    payment_business.NewMockBusiness(ctrl),
		adjustments: adjustment_business.NewMockBusiness(ctrl),
	}
	f.service = NewService(f.statements, f.payments, f.adjustments, db, zap.NewNop())
	return f
}

func serve(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (response.APIResponse, map[string]interface{}) {
	t.Helper()

	var envelope response.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	data, _ := envelope.Data.(map[string]interface{})
	return envelope, data
}

func TestHealth(t *testing.T) {
	testCases := []struct {
		name           string
		pingErr        error
		expectedStatus int
	}{
		{
			name:           "database_reachable",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "database_unreachable",
			pingErr:        errors.New("dial tcp: connection refused"),
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newServiceFixture(t, fakePinger{err: tc.pingErr})

			rec := serve(f.service.Router(time.Second), http.MethodGet, "/healthz", "")

			assert.Equal(t, tc.expectedStatus, rec.Code)
		})
	}
}

func TestRouter_WriteGuardsOnlyWrapMutations(t *testing.T) {
	f := newServiceFixture(t, fakePinger{})
	guarded := 0
	guard := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			guarded++
			w.WriteHeader(http.StatusTeapot)
		})
	}
	router := f.service.Router(time.Second, guard)

	assert.Equal(t, http.StatusTeapot, serve(router, http.MethodPost, "/v1/bills/1/payments", `{}`).Code)
	assert.Equal(t, http.StatusTeapot, serve(router, http.MethodPost, "/v1/bills/1/adjustments", `{}`).Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, 2, guarded)
}

func TestRouter_ErrorEnvelope(t *testing.T) {
	testCases := []struct {
		name              string
		mockError         error
		expectedStatus    int
		expectedMessage   string
		expectedErrorCode int
	}{
		{
			name:              "not_found",
			mockError:         &errs.Error{Code: errs.NotFound, Message: "bill not found for the requested period"},
			expectedStatus:    http.StatusNotFound,
			expectedMessage:   "bill not found for the requested period",
			expectedErrorCode: http.StatusNotFound,
		},
		{
			name:              "serialization_conflict",
			mockError:         &errs.Error{Code: errs.Aborted, Message: "concurrent update, retry the request"},
			expectedStatus:    http.StatusConflict,
			expectedMessage:   "concurrent update, retry the request",
			expectedErrorCode: http.StatusConflict,
		},
		{
			name:              "storage_failure_hides_cause",
			mockError:         errs.Wrap(errors.New("pq: relation \"tariffs\" does not exist"), errs.Internal, "failed to load tariffs"),
			expectedStatus:    http.StatusInternalServerError,
			expectedMessage:   "an error occurred while processing the request",
			expectedErrorCode: http.StatusInternalServerError,
		},
		{
			name:              "uncoded_error",
			mockError:         errors.New("unexpected"),
			expectedStatus:    http.StatusInternalServerError,
			expectedMessage:   "an error occurred while processing the request",
			expectedErrorCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newServiceFixture(t, fakePinger{})
			f.statements.EXPECT().
				GetStatement(gomock.Any(), gomock.Any()).
				Return(nil, tc.mockError)

			rec := serve(f.service.Router(time.Second), http.MethodGet, "/v1/customers/C-1/connections/K-1/bills/2024/1", "")

			assert.Equal(t, tc.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			envelope, _ := decodeEnvelope(t, rec)
			assert.Equal(t, tc.expectedErrorCode, envelope.ErrorCode)
			assert.Equal(t, "error", envelope.Status)
			assert.Equal(t, tc.expectedMessage, envelope.Message)
			assert.Nil(t, envelope.Data)
			assert.NotContains(t, rec.Body.String(), "does not exist")
		})
	}
}
