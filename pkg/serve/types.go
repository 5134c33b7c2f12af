package serve

import (
	"encoding/json"

	"github.com/arashsheyda/vue-prop-konverter/pkg/types"
)

// Request represents an incoming NDJSON request
type Request struct {
	Type    string          `json:"type"` // "convert" | "convert_batch" | "locate" | "close"
	Payload json.RawMessage `json:"payload"`
}

// ContentItem is one document in a batch request
type ContentItem struct {
	Content string `json:"content"`
	Source  string `json:"source"`
}

// ConvertPayload is the payload for "convert" requests
type ConvertPayload struct {
	Content string `json:"content"`
	Source  string `json:"source"`
}

// ConvertBatchPayload is the payload for "convert_batch" requests
type ConvertBatchPayload struct {
	Items []ContentItem `json:"items"`
}

// LocatePayload is the payload for "locate" requests
type LocatePayload struct {
	Content string `json:"content"`
	Source  string `json:"source"`
}

// ConvertResult is the data field for "convert" responses
type ConvertResult struct {
	Source  string `json:"source,omitempty"`
	Output  string `json:"output"`
	Changed bool   `json:"changed"`
	Count   int    `json:"count"`
}

// ConvertBatchResult is the data field for "convert_batch" responses
type ConvertBatchResult struct {
	Results []ConvertResult `json:"results"`
}

// LocateResult is the data field for "locate" responses
type LocateResult struct {
	Source      string             `json:"source,omitempty"`
	Sites       []types.CallSite   `json:"sites"`
	Diagnostics []types.Diagnostic `json:"diagnostics"`
}

// Response represents an outgoing NDJSON response
type Response struct {
	Success bool            `json:"success"`
	Type    string          `json:"type"` // "ready" | "convert" | "convert_batch" | "locate" | "error"
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// ReadyData is the data field for "ready" responses
type ReadyData struct {
	Version  string `json:"version"`
	Profiles int    `json:"profiles"`
}
