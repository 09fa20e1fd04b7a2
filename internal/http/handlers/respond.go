package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

var errNoBody = errors.New("request body missing")

// writeJSON writes data as a JSON response body.
func writeJSON(ctx context.Context, log *slog.Logger, w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.ErrorContext(ctx, "failed to encode JSON response", "err", err)
	}
}

// decodeBody parses the request body into v. An empty, malformed or literal
// null body is an error; the caller maps it to the entity's "required"
// message.
func decodeBody(r *http.Request, v interface{}) error {
	defer r.Body.Close()

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return errNoBody
	}
	return json.Unmarshal(raw, v)
}
