package sdfio

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cyclostatic/csdf/sdfgraph"
)

type yamlDocument struct {
	Graph RawGraph `yaml:"graph"`
}

// LoadYAML decodes a document with a top-level `graph:` key holding the
// same actors/channels shape LoadJSON consumes.
func LoadYAML(r io.Reader) (*sdfgraph.Graph, []string, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("sdfio: decoding YAML: %w", err)
	}

	g, warnings, err := doc.Graph.ToGraph()
	if err != nil {
		return nil, warnings, err
	}
	if err := g.Build(); err != nil {
		return nil, warnings, err
	}

	return g, warnings, nil
}

// DumpYAML writes g back out under LoadYAML's top-level `graph:` key.
func DumpYAML(g *sdfgraph.Graph, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(yamlDocument{Graph: fromGraph(g)})
}
