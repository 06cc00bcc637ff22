package server

import "net/http"

// NewMux registers every route of the API.
func NewMux(h *Handler) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /v1/health", h.health)
	mux.HandleFunc("POST /v1/essays", h.analyzeEssay)
	mux.HandleFunc("POST /v1/essays/bulk", h.uploadBulk)
	mux.HandleFunc("GET /v1/essays/{file_id}", h.jobByID)

	// Interactive documentation
	mux.HandleFunc("GET /openapi.json", h.openAPISpec)
	mux.HandleFunc("GET /docs", h.docsPage)

	return mux
}
