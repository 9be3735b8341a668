package billing

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"backoffice.app/billing/middleware/idempotency"
	"backoffice.app/pkg/errs"
)

var validate = validator.New()

// maxBodyBytes bounds request bodies; payloads here are a handful of fields.
const maxBodyBytes = idempotency.MaxBodyBytes

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return &errs.Error{Code: errs.InvalidArgument, Message: "invalid request body: " + err.Error()}
	}
	return nil
}

func billIDParam(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "billID"), 10, 32)
	if err != nil || id <= 0 {
		return 0, &errs.Error{Code: errs.InvalidArgument, Message: "invalid bill ID"}
	}
	return int32(id), nil
}
