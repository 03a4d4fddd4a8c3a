//go:build !ebiten

package ui

import "torus-life/internal/core"

// Status is a no-op placeholder used when the ebiten build tag is absent.
type Status struct{}

// NewStatus constructs a stub status line.
func NewStatus(core.ParameterProvider) *Status { return &Status{} }

// Update is a no-op in headless builds.
func (s *Status) Update() {}

// Draw is a no-op placeholder.
func (s *Status) Draw(any) {}
