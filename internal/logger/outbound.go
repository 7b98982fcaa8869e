package logger

import (
	"net/http"

	"github.com/google/uuid"
)

// TagRequest stamps an outgoing API request with an X-Request-ID taken from
// the context, generating a fresh one when the caller never set it. The id is
// returned so call sites can log it alongside the response.
func TagRequest(req *http.Request) string {
	reqID := RequestIDFrom(req.Context())
	if reqID == "" {
		reqID = uuid.New().String()
	}
	req.Header.Set("X-Request-ID", reqID)
	return reqID
}
