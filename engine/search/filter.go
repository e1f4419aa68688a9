// Package search derives the visible-node set from free-text search
// input. State is recomputed in full on every text change, never
// patched incrementally.
package search

import (
	"strings"

	"graphlens/domain/graph"
)

// DefaultHopDepth is how many edge hops beyond a match stay visible.
// The depth is a parameter, not a constant, so a degrees-of-separation
// control can raise it.
const DefaultHopDepth = 1

// State is the outcome of one filter pass. VisibleIDs always contains
// MatchedIDs. An empty raw text produces empty sets and ShowAll() true.
type State struct {
	RawText    string
	MatchedIDs map[string]bool
	VisibleIDs map[string]bool
}

// ShowAll reports whether the renderer should treat every node as
// visible. Text with no usable terms means "no filter", which is
// distinct from a filter that matched nothing.
func (s State) ShowAll() bool {
	return len(parseTerms(s.RawText)) == 0
}

// parseTerms splits raw search text on commas into lowercase terms,
// discarding blanks.
func parseTerms(raw string) []string {
	var terms []string
	for _, part := range strings.Split(raw, ",") {
		if term := strings.ToLower(strings.TrimSpace(part)); term != "" {
			terms = append(terms, term)
		}
	}
	return terms
}

// Filter computes the search state for rawText over the model. Text is
// split on commas into independent terms; a node matches a term when
// the term is a case-insensitive substring of its label or id. The
// visible set expands from the matches by up to hops edge hops in
// either direction over resolved edges. hops < 1 falls back to
// DefaultHopDepth.
func Filter(rawText string, model *graph.Model, hops int) State {
	state := State{
		RawText:    rawText,
		MatchedIDs: make(map[string]bool),
		VisibleIDs: make(map[string]bool),
	}

	terms := parseTerms(rawText)
	if len(terms) == 0 || model == nil {
		return state
	}

	if hops < 1 {
		hops = DefaultHopDepth
	}

	for _, node := range model.Nodes() {
		label := strings.ToLower(node.Label)
		id := strings.ToLower(node.ID)
		for _, term := range terms {
			if strings.Contains(label, term) || strings.Contains(id, term) {
				state.MatchedIDs[node.ID] = true
				state.VisibleIDs[node.ID] = true
				break
			}
		}
	}

	if len(state.MatchedIDs) == 0 {
		return state
	}

	// Breadth-first expansion over resolved edges only; dangling edges
	// never make an absent neighbor visible.
	adjacency := make(map[string][]string)
	for _, e := range model.ResolvedEdges() {
		adjacency[e.Source] = append(adjacency[e.Source], e.Target)
		adjacency[e.Target] = append(adjacency[e.Target], e.Source)
	}

	frontier := make([]string, 0, len(state.MatchedIDs))
	for id := range state.MatchedIDs {
		frontier = append(frontier, id)
	}

	for depth := 0; depth < hops && len(frontier) > 0; depth++ {
		var next []string
		for _, id := range frontier {
			for _, neighbor := range adjacency[id] {
				if !state.VisibleIDs[neighbor] {
					state.VisibleIDs[neighbor] = true
					next = append(next, neighbor)
				}
			}
		}
		frontier = next
	}

	return state
}
