package server

import (
	"encoding/json"
	"errors"
	"net/http"
)

type AnalysisRequest struct {
	InvoicePath string `json:"invoice_path"`
	POPath      string `json:"po_path"`

	Recipient string `json:"recipient,omitempty"`
}

type AnalysisResponse struct {
	Report string `json:"report"`

	Delivered bool `json:"delivered,omitempty"`
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	var req AnalysisRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if req.InvoicePath == "" || req.POPath == "" {
		writeError(w, http.StatusBadRequest, errors.New("invoice_path and po_path are required"))
		return
	}

	inputs := map[string]string{
		"invoice_file_path": req.InvoicePath,
		"po_file_path":      req.POPath,
		"recipient_email":   req.Recipient,
	}

	var report string

	if s.HasCrew() {
		crew, err := s.BuildCrew(s.logger)

		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		result, err := crew.Kickoff(r.Context(), inputs)

		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		report = result.Final
	} else {
		// Without an agent pipeline, the raw document analysis is the report.
		analyzer, err := s.Tool("textract_document_analyzer")

		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		report = analyzer.Run(r.Context(), inputs)
	}

	result := AnalysisResponse{
		Report: report,
	}

	if req.Recipient != "" && s.Mailer() != nil {
		if err := s.Mailer().Send(req.Recipient, "PO / Invoice Discrepancy Report", report); err != nil {
			s.logger.Error("sending report", "recipient", req.Recipient, "error", err)
		} else {
			result.Delivered = true
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	json.NewEncoder(w).Encode(map[string]any{
		"error": err.Error(),
	})
}
