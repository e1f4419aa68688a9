// Package graphml decodes GraphML documents into graph payloads. The
// upstream entity-extraction pipeline exports its graph as GraphML;
// this package is the file-based ingest path next to the HTTP one.
package graphml

import (
	"encoding/xml"
	"io"
	"os"
	"strconv"

	"graphlens/domain/graph"
	pkgerrors "graphlens/pkg/errors"
)

type document struct {
	XMLName xml.Name   `xml:"graphml"`
	Keys    []key      `xml:"key"`
	Graph   graphBlock `xml:"graph"`
}

type key struct {
	ID       string `xml:"id,attr"`
	For      string `xml:"for,attr"`
	AttrName string `xml:"attr.name,attr"`
}

type graphBlock struct {
	Nodes []node `xml:"node"`
	Edges []edge `xml:"edge"`
}

type node struct {
	ID   string `xml:"id,attr"`
	Data []data `xml:"data"`
}

type edge struct {
	Source string `xml:"source,attr"`
	Target string `xml:"target,attr"`
	Data   []data `xml:"data"`
}

type data struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// Parse decodes a GraphML document into a payload. Attribute keys are
// resolved through the key declarations, so exports that name the type
// column "d0" and ones that name it "type" both work.
func Parse(r io.Reader) (*graph.Payload, error) {
	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, pkgerrors.NewDataFormatError("graphml", "not a GraphML document").WithCause(err)
	}

	// key id -> declared attribute name
	attrNames := make(map[string]string, len(doc.Keys))
	for _, k := range doc.Keys {
		attrNames[k.ID] = k.AttrName
	}
	lookup := func(entries []data, name string) (string, bool) {
		for _, d := range entries {
			if attrNames[d.Key] == name || d.Key == name {
				return d.Value, true
			}
		}
		return "", false
	}

	payload := &graph.Payload{
		Nodes: make([]graph.NodePayload, 0, len(doc.Graph.Nodes)),
		Edges: make([]graph.EdgePayload, 0, len(doc.Graph.Edges)),
	}

	for _, n := range doc.Graph.Nodes {
		np := graph.NodePayload{
			ID:    n.ID,
			Label: n.ID,
		}
		if v, ok := lookup(n.Data, "label"); ok {
			np.Label = v
		}
		if v, ok := lookup(n.Data, "type"); ok {
			np.Type = v
		}
		if v, ok := lookup(n.Data, "description"); ok {
			np.Description = v
		}
		payload.Nodes = append(payload.Nodes, np)
	}

	for _, e := range doc.Graph.Edges {
		ep := graph.EdgePayload{
			Source: e.Source,
			Target: e.Target,
		}
		if v, ok := lookup(e.Data, "weight"); ok {
			if w, err := strconv.ParseFloat(v, 64); err == nil {
				ep.Weight = &w
			}
		}
		if v, ok := lookup(e.Data, "type"); ok {
			ep.Type = v
		}
		payload.Edges = append(payload.Edges, ep)
	}

	payload.TotalNodes = len(payload.Nodes)
	payload.TotalEdges = len(payload.Edges)
	return payload, nil
}

// ParseFile decodes a GraphML file from disk.
func ParseFile(path string) (*graph.Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.NewFetchError("opening graphml file", err)
	}
	defer f.Close()
	return Parse(f)
}
