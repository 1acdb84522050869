package sdfio

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cyclostatic/csdf/sdfgraph"
)

// LoadJSON decodes the `{"actors": [...], "channels": [...]}` document
// schema into a built sdfgraph.Graph, returning any defaulting warnings
// alongside it.
func LoadJSON(r io.Reader) (*sdfgraph.Graph, []string, error) {
	var raw RawGraph
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, nil, fmt.Errorf("sdfio: decoding JSON: %w", err)
	}

	g, warnings, err := raw.ToGraph()
	if err != nil {
		return nil, warnings, err
	}
	if err := g.Build(); err != nil {
		return nil, warnings, err
	}

	return g, warnings, nil
}

// DumpJSON writes g back out in LoadJSON's schema.
func DumpJSON(g *sdfgraph.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(fromGraph(g))
}
