package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// errorBody is the {"error": ..., "details": ...} shape every failure uses.
type errorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// unwrapMessage extracts the human-readable part from a wrapped validation error.
// e.g. "validation error: Email is required." → "Email is required."
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const prefix = "validation error: "
	if i := strings.LastIndex(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return msg
}

// decodeObject reads a JSON object body into a string-keyed map whose values
// are stringified the way a form field would be. A missing, malformed or
// non-object body yields an empty map so the request fails validation rather
// than parsing. Only an oversize body is reported as an error.
func decodeObject(r *http.Request) (map[string]string, error) {
	out := map[string]string{}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, err
		}
		return out, nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return out, nil
	}
	for k, v := range raw {
		out[k] = stringify(v)
	}
	return out, nil
}

// stringify renders one JSON value as text: strings as-is, null as "",
// everything else as its JSON literal (numbers keep their original digits).
func stringify(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	text := strings.TrimSpace(string(v))
	if text == "null" {
		return ""
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return text
}

// writeDecodeError answers a body that could not be read.
func writeDecodeError(w http.ResponseWriter) {
	writeError(w, http.StatusRequestEntityTooLarge, "Request body too large")
}
