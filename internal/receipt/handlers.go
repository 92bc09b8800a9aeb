package receipt

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/zombor/receipt-processor/internal/scoring"
)

const maxBodySize = 1 << 20 // 1MB

// braces strips the literal braces some clients send around IDs
var braces = strings.NewReplacer("{", "", "}", "")

// corsError writes an error response with CORS headers set
func corsError(w http.ResponseWriter, message string, code int) {
	setCORSHeaders(w)
	http.Error(w, message, code)
}

// setCORSHeaders sets CORS headers on a response
func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Max-Age", "3600")
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error encoding response", "error", err)
	}
}

func writeJSONError(w http.ResponseWriter, message string, code int) {
	writeJSON(w, code, map[string]string{
		"error": message,
	})
}

// receiptID reads the id path value
func receiptID(r *http.Request) string {
	return braces.Replace(r.PathValue("id"))
}

// lookupError maps a service lookup error onto a response
func lookupError(w http.ResponseWriter, id string, err error) {
	if errors.Is(err, ErrNotFound) {
		corsError(w, "Receipt not found", http.StatusNotFound)
		return
	}
	slog.Error("Error looking up receipt", "id", id, "error", err)
	corsError(w, "Internal server error", http.StatusInternalServerError)
}

// handleProcessReceipt stores a submitted receipt and returns its ID
func (s *Server) handleProcessReceipt(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		slog.Warn("Error reading request body", "error", err)
		errorMsg := "Error reading request body"
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			errorMsg = "Receipt is too large. Maximum size is 1MB."
		}
		writeJSONError(w, errorMsg, http.StatusBadRequest)
		return
	}

	receipt, err := decodeReceipt(body)
	if err != nil {
		slog.Warn("Rejected receipt body", "error", err)
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := s.service.ProcessReceipt(receipt)
	if err != nil {
		if errors.Is(err, ErrInvalidReceipt) {
			slog.Warn("Invalid receipt", "error", err)
			writeJSONError(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("Error processing receipt", "error", err)
		writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"id": id,
	})
}

// handleGetPoints returns the point total of a receipt
func (s *Server) handleGetPoints(w http.ResponseWriter, r *http.Request) {
	id := receiptID(r)
	points, err := s.service.Points(id)
	if err != nil {
		lookupError(w, id, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{
		"points": points,
	})
}

// handleGetBreakdown returns the contribution of every scoring rule
func (s *Server) handleGetBreakdown(w http.ResponseWriter, r *http.Request) {
	id := receiptID(r)
	breakdown, err := s.service.Breakdown(id)
	if err != nil {
		lookupError(w, id, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		scoring.Breakdown
		Points int `json:"points"`
	}{
		Breakdown: breakdown,
		Points:    breakdown.Points(),
	})
}

// handleGetReceipt returns a stored receipt as submitted
func (s *Server) handleGetReceipt(w http.ResponseWriter, r *http.Request) {
	id := receiptID(r)
	receipt, err := s.service.GetReceipt(id)
	if err != nil {
		lookupError(w, id, err)
		return
	}

	writeJSON(w, http.StatusOK, receipt)
}
