package server

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/wealthlens/wealthlens/internal/models"
	"github.com/wealthlens/wealthlens/internal/services/portfolio"
	"github.com/wealthlens/wealthlens/internal/statement"
)

// handlePortfolioUpload handles POST /api/portfolio/upload. Expects a
// multipart form with a "file" part and an optional "password" field for
// password-protected statements.
func (s *Server) handlePortfolioUpload(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	maxBytes := int64(s.app.Config.Ingest.MaxUploadMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "file part is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "failed to read uploaded file")
		return
	}
	if len(content) == 0 {
		WriteError(w, http.StatusBadRequest, "uploaded file is empty")
		return
	}

	password := r.FormValue("password")

	view, err := s.app.PortfolioService.IngestStatement(r.Context(), userID, header.Filename, content, password)
	if err != nil {
		s.writePortfolioError(w, err)
		return
	}

	status := http.StatusOK
	if !view.Duplicate {
		status = http.StatusCreated
	}
	WriteJSON(w, status, view)
}

// handlePortfolioGet handles GET /api/portfolio.
func (s *Server) handlePortfolioGet(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	view, err := s.app.PortfolioService.GetPortfolio(r.Context(), userID)
	if err != nil {
		s.writePortfolioError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, view)
}

// handleManual handles POST /api/portfolio/manual.
func (s *Server) handleManual(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	var entry models.ManualEntry
	if !DecodeJSON(w, r, &entry) {
		return
	}

	view, err := s.app.PortfolioService.AddManualHolding(r.Context(), userID, &entry)
	if err != nil {
		s.writePortfolioError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, view)
}

// handleManualDelete handles DELETE /api/portfolio/manual/{scheme}. The
// scheme name is URL-encoded in the path. Deleting an absent scheme succeeds.
func (s *Server) handleManualDelete(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	scheme := PathParam(r, "/api/portfolio/manual/")
	if strings.TrimSpace(scheme) == "" {
		WriteError(w, http.StatusBadRequest, "scheme name is required")
		return
	}

	view, err := s.app.PortfolioService.DeleteManualHolding(r.Context(), userID, scheme)
	if err != nil {
		s.writePortfolioError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, view)
}

// handleSources handles GET /api/portfolio/sources.
func (s *Server) handleSources(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	sources, err := s.app.PortfolioService.ListSources(r.Context(), userID)
	if err != nil {
		s.writePortfolioError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"sources": sources})
}

// handleSourceDelete handles DELETE /api/portfolio/sources/{id}.
func (s *Server) handleSourceDelete(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	sourceID := PathParam(r, "/api/portfolio/sources/")
	if sourceID == "" {
		WriteError(w, http.StatusBadRequest, "source id is required")
		return
	}

	view, err := s.app.PortfolioService.RemoveSource(r.Context(), userID, sourceID)
	if err != nil {
		s.writePortfolioError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, view)
}

// handlePortfolioReset handles POST /api/portfolio/reset.
func (s *Server) handlePortfolioReset(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	if err := s.app.PortfolioService.Reset(r.Context(), userID); err != nil {
		s.writePortfolioError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// handleAllocationChart handles GET /api/portfolio/chart and returns a PNG.
func (s *Server) handleAllocationChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	userID, ok := s.requireUser(w, r)
	if !ok {
		return
	}

	png, err := s.app.PortfolioService.RenderAllocationChart(r.Context(), userID)
	if err != nil {
		WriteError(w, http.StatusNotFound, "no allocation data available")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// writePortfolioError maps service errors to HTTP status codes:
// unparseable statements to 422, validation failures to 400, everything
// else to 500.
func (s *Server) writePortfolioError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, statement.ErrUnparseable):
		WriteErrorWithCode(w, http.StatusUnprocessableEntity, err.Error(), "unparseable_statement")
	case errors.Is(err, portfolio.ErrValidation):
		WriteErrorWithCode(w, http.StatusBadRequest, err.Error(), "validation_error")
	default:
		s.logger.Error().Err(err).Msg("Portfolio operation failed")
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
