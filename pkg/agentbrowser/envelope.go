package agentbrowser

import "encoding/json"

// envelope is the JSON structure agent-browser prints on stdout for every
// JSON-mode invocation.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// decodeEnvelope parses stdout from a JSON-mode invocation and returns the
// envelope's data payload. A success=false envelope or unparseable output
// yields *Error.
func decodeEnvelope(op string, stdout []byte) (json.RawMessage, error) {
	var env envelope
	if err := json.Unmarshal(stdout, &env); err != nil {
		return nil, wrapError(op, "failed to parse JSON output", err)
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "unknown error"
		}
		return nil, newError(op, msg)
	}
	return env.Data, nil
}

// decodeAny unmarshals an envelope payload into a generic value. A nil or
// empty payload decodes to nil, matching the tool's null data field.
func decodeAny(op string, data json.RawMessage) (any, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, wrapError(op, "failed to decode data payload", err)
	}
	return v, nil
}

// stringField extracts a named string from a payload that is either a bare
// string or an object like {"text": "..."}. agent-browser uses both shapes
// depending on the subcommand.
func stringField(data any, key string) string {
	switch v := data.(type) {
	case string:
		return v
	case map[string]any:
		if s, ok := v[key].(string); ok {
			return s
		}
	}
	return ""
}

// intField extracts a named integer the same way stringField does, handling
// the float64 representation JSON numbers decode to.
func intField(data any, key string) int {
	switch v := data.(type) {
	case float64:
		return int(v)
	case map[string]any:
		if n, ok := v[key].(float64); ok {
			return int(n)
		}
	}
	return 0
}
