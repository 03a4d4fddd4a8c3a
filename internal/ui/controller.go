package ui

import "torus-life/internal/core"

// Controller is everything the HUD needs from the session it drives.
type Controller interface {
	core.ParameterProvider
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.ActionProvider
}
