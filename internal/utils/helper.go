package utils

import (
	"encoding/json"
	"net/http"
	"strconv"
)

func StrPtr(s string) *string {
	return &s
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ToUint(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	return uint(n), err
}

// WriteJSON writes the body with the given status. The body is expected to
// already carry the success flag of the gateway envelope.
func WriteJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSONError writes the failure half of the gateway envelope:
// {"success": false, "error": "<message>"}.
func WriteJSONError(w http.ResponseWriter, message string, code int) {
	WriteJSON(w, code, map[string]any{
		"success": false,
		"error":   message,
	})
}
