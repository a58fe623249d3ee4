package upstream

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/storeratings/storefront/internal/core/domain"
)

// envelope is the backend's uniform response shape. A 2xx status with
// error=true is a logical failure; the displayable message lives either in
// response.message or message.
type envelope struct {
	Error   bool            `json:"error"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Response *struct {
		Message string `json:"message"`
	} `json:"response"`
}

func (e *envelope) message() string {
	if e.Response != nil && e.Response.Message != "" {
		return e.Response.Message
	}
	if e.Message != "" {
		return e.Message
	}
	// Some endpoints stuff the message into data as a bare string.
	var s string
	if len(e.Data) > 0 && json.Unmarshal(e.Data, &s) == nil && s != "" {
		return s
	}
	return "request failed"
}

// decodeEnvelope extracts the data payload from a raw 2xx body. Responses
// that skip the envelope and return a bare JSON array are tolerated.
func decodeEnvelope(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return trimmed, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("%w: malformed response body", domain.ErrRejected)
	}
	if env.Error {
		return nil, fmt.Errorf("%w: %s", domain.ErrRejected, env.message())
	}
	return env.Data, nil
}

// categorize maps a non-2xx status to the error taxonomy, keeping the
// backend's message where one exists.
func categorize(status int, body []byte) error {
	var env envelope
	_ = json.Unmarshal(body, &env)
	msg := env.message()

	switch {
	case status == 401:
		return domain.ErrSessionExpired
	case status == 409:
		return fmt.Errorf("%w: %s", domain.ErrConflict, msg)
	case status >= 400 && status < 500:
		return fmt.Errorf("%w: %s", domain.ErrRejected, msg)
	default:
		return fmt.Errorf("backend returned status %d: %s", status, msg)
	}
}
