package ui

import (
	"testing"

	"torus-life/internal/core"
)

func TestStatusLine(t *testing.T) {
	snap := core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "generation", Value: "12"},
		{Key: "population", Value: "5"},
		{Key: "resolution", Value: "40"},
		{Key: "running", Type: core.ParamTypeBool, Value: "true"},
	}}
	if got, want := StatusLine(snap), "gen 12  pop 5  res 40  running"; got != want {
		t.Fatalf("got %q, expected %q", got, want)
	}
	if got, want := StatusLine(core.ParameterSnapshot{}), "gen --  pop --  res --  stopped"; got != want {
		t.Fatalf("got %q, expected %q", got, want)
	}
}
