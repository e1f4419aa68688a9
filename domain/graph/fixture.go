package graph

import "go.uber.org/zap"

// FixturePayload returns the built-in demo graph served when the real
// payload cannot be fetched or parsed. The UI stays usable in this
// degraded mode instead of showing a blank scene.
func FixturePayload() *Payload {
	w := func(v float64) *float64 { return &v }

	return &Payload{
		Nodes: []NodePayload{
			{ID: "ALEX CHEN", Label: "ALEX CHEN", Type: "person", Description: "Software engineer, distributed systems"},
			{ID: "MARIA RODRIGUEZ", Label: "MARIA RODRIGUEZ", Type: "person", Description: "Machine learning engineer"},
			{ID: "TECHSTART INC.", Label: "TECHSTART INC.", Type: "organization", Description: "Early-stage startup"},
			{ID: "UNIVERSITY OF CALIFORNIA, BERKELEY", Label: "UNIVERSITY OF CALIFORNIA, BERKELEY", Type: "organization", Description: "Public research university"},
			{ID: "GOOGLE", Label: "GOOGLE", Type: "organization", Description: "Technology company"},
			{ID: "PYTHON", Label: "PYTHON", Type: "technology", Description: "Programming language"},
			{ID: "KUBERNETES", Label: "KUBERNETES", Type: "technology", Description: "Container orchestration platform"},
			{ID: "SEATTLE", Label: "SEATTLE", Type: "other", Description: "City in Washington"},
		},
		Edges: []EdgePayload{
			{Source: "ALEX CHEN", Target: "TECHSTART INC.", Weight: w(0.9), Type: "works_at"},
			{Source: "ALEX CHEN", Target: "UNIVERSITY OF CALIFORNIA, BERKELEY", Weight: w(0.7), Type: "studied_at"},
			{Source: "MARIA RODRIGUEZ", Target: "GOOGLE", Weight: w(0.9), Type: "works_at"},
			{Source: "MARIA RODRIGUEZ", Target: "PYTHON", Weight: w(0.6), Type: "uses"},
			{Source: "GOOGLE", Target: "KUBERNETES", Weight: w(0.8), Type: "created"},
			{Source: "TECHSTART INC.", Target: "SEATTLE", Weight: w(0.5), Type: "located_in"},
		},
		TotalNodes: 8,
		TotalEdges: 6,
	}
}

// Fixture loads the fixture payload into a Model. The fixture is known
// good, so the load cannot fail.
func Fixture() *Model {
	m, err := Load(FixturePayload(), zap.NewNop())
	if err != nil {
		panic(err)
	}
	return m
}
