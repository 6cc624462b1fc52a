package backend

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// errorBody is the shape most IntelliDocs endpoints use for failures.
type errorBody struct {
	Detail string `json:"detail"`
}

// decodeError turns a non-2xx response into a *domain.BackendError,
// keeping the detail string when the body carries one. Bodies are capped;
// an error response has no business being large.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var body errorBody
	_ = json.Unmarshal(raw, &body)
	return &domain.BackendError{Status: resp.StatusCode, Detail: body.Detail}
}
