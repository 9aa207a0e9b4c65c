package lambda

import (
	"encoding/json"
	"testing"
)

func TestEventAcceptsArbitraryJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"object", `{"key": "value"}`},
		{"nested object", `{"a": {"b": [1, 2, 3]}}`},
		{"array", `[1, "two", null]`},
		{"string", `"hello"`},
		{"number", `42`},
		{"boolean", `true`},
		{"null", `null`},
		{"empty object", `{}`},
		{"api gateway shape", `{"httpMethod": "GET", "path": "/random"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var event Event
			if err := json.Unmarshal([]byte(tt.payload), &event); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if string(event.Raw()) != tt.payload {
				t.Errorf("Expected raw payload '%s', got '%s'", tt.payload, event.Raw())
			}
		})
	}
}

func TestEventRoundTrip(t *testing.T) {
	payload := `{"httpMethod":"POST","body":"{\"inner\":1}"}`

	var event Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	out, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if string(out) != payload {
		t.Errorf("Expected round-tripped payload '%s', got '%s'", payload, out)
	}
}

func TestEventMarshalEmpty(t *testing.T) {
	out, err := json.Marshal(Event{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if string(out) != "null" {
		t.Errorf("Expected 'null' for empty event, got '%s'", out)
	}
}

func TestEventIsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    bool
	}{
		{"no payload", "", true},
		{"null", "null", true},
		{"empty object", "{}", true},
		{"whitespace around empty object", "  {}  ", true},
		{"object with keys", `{"key": "value"}`, false},
		{"array", `[]`, false},
		{"string", `""`, false},
		{"number", `0`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := NewEvent([]byte(tt.payload))
			if got := event.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEventTrigger(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		wantType   TriggerType
		wantMethod string
		wantPath   string
	}{
		{
			name:       "api gateway proxy request",
			payload:    `{"httpMethod": "GET", "path": "/api/v1/random", "requestContext": {"identity": {"sourceIp": "10.0.0.1"}}}`,
			wantType:   TriggerAPIGateway,
			wantMethod: "GET",
			wantPath:   "/api/v1/random",
		},
		{
			name:     "scheduled event",
			payload:  `{"source": "aws.events", "detail-type": "Scheduled Event", "detail": {}}`,
			wantType: TriggerSchedule,
		},
		{
			name:     "empty event",
			payload:  `{}`,
			wantType: TriggerUnknown,
		},
		{
			name:     "opaque custom payload",
			payload:  `{"anything": [1, 2, 3]}`,
			wantType: TriggerUnknown,
		},
		{
			name:     "non-object payload",
			payload:  `"just a string"`,
			wantType: TriggerUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := NewEvent([]byte(tt.payload))
			info := event.Trigger()

			if info.Type != tt.wantType {
				t.Errorf("Expected trigger type '%s', got '%s'", tt.wantType, info.Type)
			}

			if tt.wantMethod != "" && info.Method != tt.wantMethod {
				t.Errorf("Expected method '%s', got '%s'", tt.wantMethod, info.Method)
			}

			if tt.wantPath != "" && info.Path != tt.wantPath {
				t.Errorf("Expected path '%s', got '%s'", tt.wantPath, info.Path)
			}
		})
	}
}

func TestNewRequest(t *testing.T) {
	event := NewEvent([]byte(`{}`))

	req := NewRequest("runtime-id-1", event)
	if req.ID != "runtime-id-1" {
		t.Errorf("Expected request ID 'runtime-id-1', got '%s'", req.ID)
	}

	if req.ReceivedAt.IsZero() {
		t.Error("Expected received timestamp to be set")
	}

	// Without a runtime ID, one is generated
	generated := NewRequest("", event)
	if generated.ID == "" {
		t.Error("Expected request ID to be generated")
	}

	if len(generated.ID) != 36 {
		t.Errorf("Expected UUID-formatted ID, got '%s'", generated.ID)
	}
}

func TestResponseShape(t *testing.T) {
	resp := Response{StatusCode: 200, Body: `"Random number: 37"`}

	out, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// The wire record must carry exactly statusCode and body
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(out, &fields); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(fields) != 2 {
		t.Errorf("Expected exactly 2 fields, got %d: %v", len(fields), fields)
	}

	if _, ok := fields["statusCode"]; !ok {
		t.Error("Expected 'statusCode' field")
	}

	if _, ok := fields["body"]; !ok {
		t.Error("Expected 'body' field")
	}

	expected := `{"statusCode":200,"body":"\"Random number: 37\""}`
	if string(out) != expected {
		t.Errorf("Expected '%s', got '%s'", expected, out)
	}
}
