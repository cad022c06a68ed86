package httpx

import (
	"encoding/json"
	"net/http"
)

// JSON writes v as JSON with the given status code. Content-Type and
// X-Content-Type-Options headers are set automatically. Encoding errors are
// silently discarded; use this for handler responses, not for streaming.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError writes a standard {"error": message} JSON response. Every error
// body in the API has this single-field shape.
func JSONError(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
