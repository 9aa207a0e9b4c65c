package lambda

import (
	"bytes"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
)

// Event is the opaque invocation payload delivered by the runtime.
// The handler accepts any JSON value and never inspects it beyond
// best-effort trigger classification for logging.
type Event struct {
	raw json.RawMessage
}

// NewEvent wraps raw JSON bytes as an event
func NewEvent(data []byte) Event {
	return Event{raw: append(json.RawMessage(nil), data...)}
}

// UnmarshalJSON captures the raw payload without interpreting it
func (e *Event) UnmarshalJSON(data []byte) error {
	e.raw = append(e.raw[:0], data...)
	return nil
}

// MarshalJSON returns the captured payload unchanged
func (e Event) MarshalJSON() ([]byte, error) {
	if len(e.raw) == 0 {
		return []byte("null"), nil
	}
	return e.raw, nil
}

// Raw returns the captured payload bytes
func (e Event) Raw() []byte {
	return e.raw
}

// IsEmpty reports whether the invocation carried no payload content
func (e Event) IsEmpty() bool {
	trimmed := bytes.TrimSpace(e.raw)
	if len(trimmed) == 0 {
		return true
	}

	s := string(trimmed)
	return s == "null" || s == "{}"
}

// TriggerType identifies the event source that invoked the function
type TriggerType string

const (
	TriggerAPIGateway TriggerType = "api_gateway"
	TriggerSchedule   TriggerType = "schedule"
	TriggerUnknown    TriggerType = "unknown"
)

// TriggerInfo carries event-source facts used for logging
type TriggerInfo struct {
	Type     TriggerType
	Method   string
	Path     string
	SourceIP string
}

// Trigger classifies the event source. Classification is best effort and
// only feeds log fields; the response never depends on it.
func (e Event) Trigger() TriggerInfo {
	if e.IsEmpty() {
		return TriggerInfo{Type: TriggerUnknown}
	}

	var proxy events.APIGatewayProxyRequest
	if err := json.Unmarshal(e.raw, &proxy); err == nil && proxy.HTTPMethod != "" {
		return TriggerInfo{
			Type:     TriggerAPIGateway,
			Method:   proxy.HTTPMethod,
			Path:     proxy.Path,
			SourceIP: proxy.RequestContext.Identity.SourceIP,
		}
	}

	var scheduled events.CloudWatchEvent
	if err := json.Unmarshal(e.raw, &scheduled); err == nil && scheduled.Source == "aws.events" {
		return TriggerInfo{Type: TriggerSchedule}
	}

	return TriggerInfo{Type: TriggerUnknown}
}
