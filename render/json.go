package render

import (
	"encoding/json"
	"fmt"
)

// JSONRenderer emits the frame itself, for hosts that draw client-side
type JSONRenderer struct{}

// Name returns the name of the renderer
func (r *JSONRenderer) Name() string {
	return "JSON Renderer"
}

// Render serializes the frame
func (r *JSONRenderer) Render(frame *Frame, options *Options) ([]byte, error) {
	out, err := json.MarshalIndent(frame, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize frame: %w", err)
	}
	return out, nil
}
