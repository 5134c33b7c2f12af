package serve

import (
	"bufio"
	"context"
	"encoding/json"
	"io"

	konverter "github.com/arashsheyda/vue-prop-konverter"
)

// Version is the server protocol version
const Version = "1.0.0"

// Server manages the streaming converter
type Server struct {
	conv    *konverter.Converter
	encoder *json.Encoder
	decoder *json.Decoder
}

// NewServer creates a new streaming server
func NewServer(conv *konverter.Converter, in io.Reader, out io.Writer) *Server {
	return &Server{
		conv:    conv,
		encoder: json.NewEncoder(out),
		decoder: json.NewDecoder(bufio.NewReader(in)),
	}
}

// Run starts the server main loop
func (s *Server) Run(ctx context.Context) error {
	// Send ready signal
	s.sendReady()

	// Use buffered channels for incoming requests
	reqChan := make(chan Request, 1)
	errChan := make(chan error, 1)

	go func() {
		for {
			var req Request
			if err := s.decoder.Decode(&req); err != nil {
				errChan <- err
				return
			}
			select {
			case reqChan <- req:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Process requests until stdin closes or context cancels
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errChan:
			// Drain any pending requests before handling EOF
			for {
				select {
				case req := <-reqChan:
					if s.processRequest(req) {
						return nil
					}
				default:
					// No more pending requests
					if err == io.EOF {
						return nil
					}
					s.sendError("decode", err.Error())
					return nil
				}
			}
		case req := <-reqChan:
			if s.processRequest(req) {
				return nil
			}
		}
	}
}

// processRequest handles a single request and returns true if the server should exit
func (s *Server) processRequest(req Request) bool {
	switch req.Type {
	case "convert":
		s.handleConvert(req.Payload)
	case "convert_batch":
		s.handleConvertBatch(req.Payload)
	case "locate":
		s.handleLocate(req.Payload)
	case "close":
		return true
	default:
		s.sendError("unknown", "unknown request type: "+req.Type)
	}
	return false
}

func (s *Server) sendReady() {
	data, _ := json.Marshal(ReadyData{
		Version:  Version,
		Profiles: s.conv.ProfileCount(),
	})
	s.encoder.Encode(Response{
		Success: true,
		Type:    "ready",
		Data:    data,
	})
}

func (s *Server) convertItem(item ContentItem) ConvertResult {
	results := s.conv.Results(item.Content)
	output := s.conv.ConvertAll(item.Content)
	return ConvertResult{
		Source:  item.Source,
		Output:  output,
		Changed: output != item.Content,
		Count:   len(results),
	}
}

func (s *Server) handleConvert(payload json.RawMessage) {
	var p ConvertPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		s.sendError("convert", err.Error())
		return
	}

	result := s.convertItem(ContentItem{Content: p.Content, Source: p.Source})

	data, _ := json.Marshal(result)
	s.encoder.Encode(Response{
		Success: true,
		Type:    "convert",
		Data:    data,
	})
}

func (s *Server) handleConvertBatch(payload json.RawMessage) {
	var p ConvertBatchPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		s.sendError("convert_batch", err.Error())
		return
	}

	result := ConvertBatchResult{Results: make([]ConvertResult, 0, len(p.Items))}
	for _, item := range p.Items {
		result.Results = append(result.Results, s.convertItem(item))
	}

	data, _ := json.Marshal(result)
	s.encoder.Encode(Response{
		Success: true,
		Type:    "convert_batch",
		Data:    data,
	})
}

func (s *Server) handleLocate(payload json.RawMessage) {
	var p LocatePayload
	if err := json.Unmarshal(payload, &p); err != nil {
		s.sendError("locate", err.Error())
		return
	}

	result := LocateResult{
		Source:      p.Source,
		Sites:       s.conv.Locate(p.Content),
		Diagnostics: s.conv.Diagnostics(p.Content),
	}

	data, _ := json.Marshal(result)
	s.encoder.Encode(Response{
		Success: true,
		Type:    "locate",
		Data:    data,
	})
}

func (s *Server) sendError(reqType, msg string) {
	s.encoder.Encode(Response{
		Success: false,
		Type:    reqType,
		Error:   msg,
	})
}
