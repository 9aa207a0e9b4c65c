package lambda

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Request represents one invocation passing through the handler layer
type Request struct {
	ID         string    `json:"id"`
	ReceivedAt time.Time `json:"received_at"`
	Event      Event     `json:"event"`
}

// Response represents the record returned to the invoking runtime.
// It carries exactly the two attributes the caller consumes.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// HandlerFunc is a framework-agnostic handler interface
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

// NewRequest builds a request for the given invocation, generating an ID
// when the runtime did not supply one
func NewRequest(id string, event Event) *Request {
	if id == "" {
		id = uuid.New().String()
	}

	return &Request{
		ID:         id,
		ReceivedAt: time.Now(),
		Event:      event,
	}
}
