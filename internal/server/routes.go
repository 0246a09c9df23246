package server

import (
	"net/http"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/shutdown", s.handleShutdown)

	// Auth
	mux.HandleFunc("/api/auth/send-otp", s.handleSendOTP)
	mux.HandleFunc("/api/auth/verify-otp", s.handleVerifyOTP)
	mux.HandleFunc("/api/auth/me", s.handleMe)

	// Portfolio
	mux.HandleFunc("/api/portfolio", s.handlePortfolioGet)
	mux.HandleFunc("/api/portfolio/upload", s.handlePortfolioUpload)
	mux.HandleFunc("/api/portfolio/manual", s.handleManual)
	mux.HandleFunc("/api/portfolio/manual/", s.handleManualDelete)
	mux.HandleFunc("/api/portfolio/sources", s.handleSources)
	mux.HandleFunc("/api/portfolio/sources/", s.handleSourceDelete)
	mux.HandleFunc("/api/portfolio/reset", s.handlePortfolioReset)
	mux.HandleFunc("/api/portfolio/chart", s.handleAllocationChart)
}
