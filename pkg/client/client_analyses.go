package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

type AnalysisService struct {
	Options []RequestOption
}

func NewAnalysisService(opts ...RequestOption) AnalysisService {
	return AnalysisService{
		Options: opts,
	}
}

type Analysis struct {
	Report string `json:"report"`

	Delivered bool `json:"delivered,omitempty"`
}

type AnalysisRequest struct {
	InvoicePath string `json:"invoice_path"`
	POPath      string `json:"po_path"`

	Recipient string `json:"recipient,omitempty"`
}

func (r *AnalysisService) New(ctx context.Context, input AnalysisRequest, opts ...RequestOption) (*Analysis, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	body, err := json.Marshal(input)

	if err != nil {
		return nil, err
	}

	url := strings.TrimRight(c.URL, "/") + "/v1/analyses"

	req, _ := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	var result Analysis

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}
