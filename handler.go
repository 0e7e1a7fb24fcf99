package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"
)

const maxBodySize = 4 << 20

type Handler struct {
	handler          *http.ServeMux
	requestProcessor *RequestProcessor
}

// NewHandler wires the service routes. newRelicApp may be nil.
func NewHandler(newRelicApp *newrelic.Application) *Handler {
	h := &Handler{}
	h.requestProcessor = NewRequestProcessor()
	h.handler = http.NewServeMux()
	h.handler.HandleFunc(newrelic.WrapHandleFunc(newRelicApp, "/", h.getRoot))
	h.handler.HandleFunc(newrelic.WrapHandleFunc(newRelicApp, "/asciize", h.asciize))
	h.handler.HandleFunc(newrelic.WrapHandleFunc(newRelicApp, "/discover", h.discover))
	return h
}

func (h *Handler) getRoot(w http.ResponseWriter, r *http.Request) {
	io.WriteString(w, "Hello\n")
}

func (h *Handler) asciize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	resp, err := h.requestProcessor.ProcessConversion(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, resp)
}

func (h *Handler) discover(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	resp, err := h.requestProcessor.ProcessDiscovery(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Can't write response: %v", err)
	}
}

func (h *Handler) Mux() *http.ServeMux {
	return h.handler
}
