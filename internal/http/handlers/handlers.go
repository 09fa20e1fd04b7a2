package handlers

import "github.com/go-chi/chi/v5"

// Mountable is implemented by feature handlers that register their own
// routes into the service router.
type Mountable interface {
	Mount(r chi.Router)
}
