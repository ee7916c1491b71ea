package probe

import (
	"net/http"
	"time"
)

// NewHTTPClient creates the client probes use. Candidates carry their own,
// shorter deadlines; this is only a ceiling.
func NewHTTPClient() HTTPClient {
	return &http.Client{
		Timeout: 60 * time.Second,
	}
}
