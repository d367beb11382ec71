package search

import "github.com/go-chi/chi/v5"

func Routes(r chi.Router, h *Handler) {
	r.Get("/vulnerable-search", h.VulnerableSearch)
	r.Get("/secure-search", h.SecureSearch)
}

/*
- GET: /vulnerable-search?product={term} -> search, raw errors reach the client
- GET: /secure-search?product={term}     -> search, failures render the fixed page
*/
