// Package problem writes RFC 7807 error response bodies.
package problem

import (
	"encoding/json"
	"net/http"
)

const blankType = "about:blank"

// Problem is an application/problem+json body. Detail carries the
// client-facing message; Type stays blank since the service defines no
// problem-type URIs.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
}

// Write sends a problem body with the given status, title and detail.
func Write(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Problem{
		Type:   blankType,
		Title:  title,
		Status: status,
		Detail: detail,
	})
}
