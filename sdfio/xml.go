package sdfio

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cyclostatic/csdf/sdfgraph"
)

type sdf3Document struct {
	XMLName  xml.Name     `xml:"sdf3"`
	Type     string       `xml:"type,attr"`
	Version  string       `xml:"version,attr"`
	AppGraph sdf3AppGraph `xml:"applicationGraph"`
}

type sdf3AppGraph struct {
	SDF           sdf3Graph      `xml:"sdf"`
	SDFProperties sdf3Properties `xml:"sdfProperties"`
}

type sdf3Graph struct {
	Name     string        `xml:"name,attr"`
	Type     string        `xml:"type,attr"`
	Actors   []sdf3Actor   `xml:"actor"`
	Channels []sdf3Channel `xml:"channel"`
}

type sdf3Actor struct {
	Name  string     `xml:"name,attr"`
	Type  string     `xml:"type,attr"`
	Ports []sdf3Port `xml:"port"`
}

type sdf3Port struct {
	Name string `xml:"name,attr"`
	Type string `xml:"type,attr"`
	Rate string `xml:"rate,attr"`
}

type sdf3Channel struct {
	Name          string `xml:"name,attr"`
	SrcActor      string `xml:"srcActor,attr"`
	SrcPort       string `xml:"srcPort,attr"`
	DstActor      string `xml:"dstActor,attr"`
	DstPort       string `xml:"dstPort,attr"`
	InitialTokens string `xml:"initialTokens,attr,omitempty"`
}

type sdf3Properties struct {
	ActorProperties []sdf3ActorProperties `xml:"actorProperties"`
}

type sdf3ActorProperties struct {
	Actor     string        `xml:"actor,attr"`
	Processor sdf3Processor `xml:"processor"`
}

type sdf3Processor struct {
	Type          string            `xml:"type,attr"`
	Default       string            `xml:"default,attr"`
	ExecutionTime sdf3ExecutionTime `xml:"executionTime"`
}

type sdf3ExecutionTime struct {
	Time string `xml:"time,attr"`
}

// LoadXML decodes a SDF3 `<sdf3 type="sdf|csdf" version="1.0">` document:
// actors and channels from the `<sdf>` element, execution times from
// `<sdfProperties>`, port rates comma-separated on each `<port rate="...">`.
// `<csdf>` and `<csdfProperties>` elements are not read, so a document
// that uses them loads with no actors or channels.
func LoadXML(r io.Reader) (*sdfgraph.Graph, []string, error) {
	var doc sdf3Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, fmt.Errorf("sdfio: decoding XML: %w", err)
	}

	if doc.Type != "sdf" && doc.Type != "csdf" {
		return nil, nil, fmt.Errorf("%w: unsupported graph type %q", ErrMalformedXML, doc.Type)
	}
	if doc.Version != "1.0" {
		return nil, nil, fmt.Errorf("%w: unsupported version %q", ErrMalformedXML, doc.Version)
	}

	execTime := make(map[string]string, len(doc.AppGraph.SDFProperties.ActorProperties))
	for _, ap := range doc.AppGraph.SDFProperties.ActorProperties {
		execTime[ap.Actor] = ap.Processor.ExecutionTime.Time
	}

	portRate := make(map[[2]string]string)
	for _, a := range doc.AppGraph.SDF.Actors {
		for _, p := range a.Ports {
			portRate[[2]string{a.Name, p.Name}] = p.Rate
		}
	}

	var warnings []string
	raw := RawGraph{}
	for _, a := range doc.AppGraph.SDF.Actors {
		t, ok := execTime[a.Name]
		if !ok || t == "" {
			warnings = append(warnings, fmt.Sprintf("actor %q: missing execution time, assuming 1", a.Name))
			t = "1"
		}
		wcet, err := ParseCommaList(t)
		if err != nil {
			return nil, warnings, fmt.Errorf("sdfio: actor %q: %w", a.Name, err)
		}
		raw.Actors = append(raw.Actors, RawActor{Name: a.Name, Wcet: wcet})
	}

	for _, c := range doc.AppGraph.SDF.Channels {
		if c.SrcActor == "" || c.DstActor == "" {
			return nil, warnings, fmt.Errorf("%w: channel %q has no srcActor/dstActor", ErrMalformedXML, c.Name)
		}

		prodRate, ok := portRate[[2]string{c.SrcActor, c.SrcPort}]
		if !ok {
			prodRate = "1"
		}
		consRate, ok := portRate[[2]string{c.DstActor, c.DstPort}]
		if !ok {
			consRate = "1"
		}

		production, err := ParseCommaList(prodRate)
		if err != nil {
			return nil, warnings, fmt.Errorf("sdfio: channel %q production: %w", c.Name, err)
		}
		consumption, err := ParseCommaList(consRate)
		if err != nil {
			return nil, warnings, fmt.Errorf("sdfio: channel %q consumption: %w", c.Name, err)
		}

		var tokens int64
		if c.InitialTokens != "" {
			tokens, err = strconv.ParseInt(c.InitialTokens, 10, 64)
			if err != nil {
				return nil, warnings, fmt.Errorf("sdfio: channel %q: invalid initialTokens %q", c.Name, c.InitialTokens)
			}
		}

		raw.Channels = append(raw.Channels, RawChannel{
			From:        c.SrcActor,
			To:          c.DstActor,
			Key:         c.Name,
			Production:  production,
			Consumption: consumption,
			Tokens:      tokens,
		})
	}

	g, buildWarnings, err := raw.ToGraph()
	warnings = append(warnings, buildWarnings...)
	if err != nil {
		return nil, warnings, err
	}
	if err := g.Build(); err != nil {
		return nil, warnings, err
	}

	return g, warnings, nil
}

// DumpXML writes g out as a SDF3 `type="sdf" version="1.0"` document,
// synthesising one production port and one consumption port per channel
// the way write_sdf_xml does.
func DumpXML(g *sdfgraph.Graph, w io.Writer) error {
	doc := sdf3Document{Type: "sdf", Version: "1.0"}
	doc.AppGraph.SDF.Name = "g"
	doc.AppGraph.SDF.Type = "G"

	actorIdx := make(map[string]int, len(g.Actors()))
	for _, id := range g.Actors() {
		a, _ := g.Actor(id)
		actorIdx[id] = len(doc.AppGraph.SDF.Actors)
		doc.AppGraph.SDF.Actors = append(doc.AppGraph.SDF.Actors, sdf3Actor{Name: id, Type: "A"})
		doc.AppGraph.SDFProperties.ActorProperties = append(doc.AppGraph.SDFProperties.ActorProperties, sdf3ActorProperties{
			Actor: id,
			Processor: sdf3Processor{
				Type:          "p1",
				Default:       "true",
				ExecutionTime: sdf3ExecutionTime{Time: joinInts(a.Wcet.Raw())},
			},
		})
	}

	portIndex := make(map[string]int, len(g.Actors()))
	cidx := 0
	for _, c := range g.AllChannels() {
		cidx++
		srcPort := fmt.Sprintf("p%dprod", portIndex[c.From])
		dstPort := fmt.Sprintf("p%dcons", portIndex[c.To])
		portIndex[c.From]++
		portIndex[c.To]++

		srcIdx := actorIdx[c.From]
		doc.AppGraph.SDF.Actors[srcIdx].Ports = append(doc.AppGraph.SDF.Actors[srcIdx].Ports, sdf3Port{
			Name: srcPort, Type: "out", Rate: joinInts(c.Production.Raw()),
		})
		dstIdx := actorIdx[c.To]
		doc.AppGraph.SDF.Actors[dstIdx].Ports = append(doc.AppGraph.SDF.Actors[dstIdx].Ports, sdf3Port{
			Name: dstPort, Type: "in", Rate: joinInts(c.Consumption.Raw()),
		})

		ch := sdf3Channel{
			Name:     fmt.Sprintf("ch%d", cidx),
			SrcActor: c.From, SrcPort: srcPort,
			DstActor: c.To, DstPort: dstPort,
		}
		if c.Tokens != 0 {
			ch.InitialTokens = strconv.FormatInt(c.Tokens, 10)
		}
		doc.AppGraph.SDF.Channels = append(doc.AppGraph.SDF.Channels, ch)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}

	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")

	return enc.Encode(doc)
}

func joinInts(vals []int64) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatInt(v, 10)
	}

	return strings.Join(parts, ",")
}
