// internal/app/features/persona/routes.go
package persona

import (
	"github.com/go-chi/chi/v5"
)

// Routes returns a router serving the three setting endpoints.
// HEAD is registered on the same handlers; the server drops the body.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/author", h.ServeAuthor)
	r.Head("/author", h.ServeAuthor)

	r.Get("/life-quote", h.ServeLifeQuote)
	r.Head("/life-quote", h.ServeLifeQuote)

	r.Get("/purpose", h.ServePurpose)
	r.Head("/purpose", h.ServePurpose)

	return r
}
