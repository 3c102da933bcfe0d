package api

import (
	"encoding/json/v2"
	"net/http"

	"github.com/cosmezukan/cosme-server/internal/errors"
)

// maxRequestBody caps JSON request bodies. Cosmetic payloads carry inline
// photo data URLs, so the limit is generous but not unbounded.
const maxRequestBody = 64 << 20

// decode reads a JSON request body into a value. Malformed JSON and bodies
// over the size cap surface as validation errors so clients get a 400, not
// a 500.
func decode[T any](r *http.Request) (T, error) {
	var v T
	if err := json.UnmarshalRead(http.MaxBytesReader(nil, r.Body, maxRequestBody), &v); err != nil {
		return v, errors.Validation("invalid JSON body").WithCause(err)
	}
	return v, nil
}
