package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/vlcak/asciize/asciize"
	"github.com/vlcak/asciize/discovery"
)

type ConversionRequest struct {
	Text string `json:"text"`
}

type ConversionResponse struct {
	Text  string `json:"text"`
	ASCII string `json:"ascii"`
}

type DiscoveryResponse struct {
	Lines   int               `json:"lines"`
	Entries []discovery.Entry `json:"entries"`
	Removed int               `json:"removed"`
}

func NewRequestProcessor() *RequestProcessor {
	return &RequestProcessor{}
}

type RequestProcessor struct{}

func (rp *RequestProcessor) ProcessConversion(body io.Reader) (*ConversionResponse, error) {
	req := ConversionRequest{}
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		log.Printf("Can't decode conversion request: %v", err)
		return nil, fmt.Errorf("decode request: %w", err)
	}
	return &ConversionResponse{
		Text:  req.Text,
		ASCII: asciize.Asciize(req.Text),
	}, nil
}

func (rp *RequestProcessor) ProcessDiscovery(body io.Reader) (*DiscoveryResponse, error) {
	report, err := discovery.Scan(body)
	if err != nil {
		return nil, err
	}
	return &DiscoveryResponse{
		Lines:   report.Lines(),
		Entries: report.Entries(),
		Removed: len(report.Removed()),
	}, nil
}
