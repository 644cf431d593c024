package server

import "net/http"

// registerRoutes wires the API endpoints onto the mux.
func registerRoutes(mux *http.ServeMux, h *Handlers) {
	mux.HandleFunc("GET /api/health", h.handleHealth)
	mux.HandleFunc("GET /api/catalog", h.handleCatalog)

	mux.HandleFunc("POST /api/sessions", h.handleCreateSession)
	mux.HandleFunc("GET /api/sessions/{id}", h.handleGetSession)

	mux.HandleFunc("POST /api/sessions/{id}/uploads", h.handleUpload)
	mux.HandleFunc("GET /api/sessions/{id}/transcript", h.handleGetTranscript)
	mux.HandleFunc("PUT /api/sessions/{id}/transcript", h.handlePutTranscript)

	mux.HandleFunc("POST /api/sessions/{id}/tasks", h.handleAddTask)
	mux.HandleFunc("PATCH /api/sessions/{id}/tasks/{taskID}", h.handleEditTask)
	mux.HandleFunc("DELETE /api/sessions/{id}/tasks/{taskID}", h.handleRemoveTask)

	mux.HandleFunc("POST /api/sessions/{id}/generate", h.handleGenerate)
	mux.HandleFunc("GET /api/sessions/{id}/artifacts", h.handleArtifacts)
	mux.HandleFunc("GET /api/sessions/{id}/export", h.handleExport)

	mux.HandleFunc("GET /api/sessions/{id}/action-items", h.handleActionItems)
	mux.HandleFunc("POST /api/sessions/{id}/drafts", h.handleDraft)
	mux.HandleFunc("DELETE /api/sessions/{id}/drafts", h.handleResetDraft)
}
