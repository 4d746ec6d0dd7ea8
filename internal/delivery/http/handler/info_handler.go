package handler

import (
	"encoding/json"
	"net/http"
)

// InfoHandler serves the unauthenticated health and index endpoints.
type InfoHandler struct {
	serviceName string
	version     string
	endpoints   map[string]string
}

func NewInfoHandler(serviceName, version string, endpoints map[string]string) *InfoHandler {
	return &InfoHandler{
		serviceName: serviceName,
		version:     version,
		endpoints:   endpoints,
	}
}

func (h *InfoHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": h.serviceName,
	})
}

func (h *InfoHandler) Root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"service":   h.serviceName,
		"version":   h.version,
		"endpoints": h.endpoints,
	})
}
