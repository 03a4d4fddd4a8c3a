package app

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"torus-life/internal/config"
	"torus-life/internal/core"
	"torus-life/internal/life"
	"torus-life/internal/paint"
)

const maxStepsPerSecond = 60

// Session is the control layer between a front-end and the engine. It owns
// the engine, the paint brush and the step pacer, and is driven from a
// single loop.
type Session struct {
	engine *life.Engine
	brush  *paint.Brush
	pacer  *core.FixedStep
	logger *slog.Logger

	seed    int64
	density float64
}

// NewSession builds a session from validated settings.
func NewSession(s config.Settings, logger *slog.Logger) (*Session, error) {
	engine, err := life.New(s.Resolution)
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	ses := &Session{
		engine:  engine,
		brush:   paint.NewBrush(s.BoardSize),
		pacer:   core.NewFixedStep(s.StepsPerSecond),
		logger:  logger,
		seed:    s.Seed,
		density: s.Density,
	}
	if s.Seed != 0 {
		engine.Seed(s.Seed, s.Density)
	}
	engine.SetRunning(s.Running)
	logger.Debug("Session created.", "resolution", s.Resolution, "seed", s.Seed, "running", s.Running)
	return ses, nil
}

// View returns a read-only view of the current board for rendering.
func (s *Session) View() core.View { return s.engine }

// Engine exposes the underlying engine.
func (s *Session) Engine() *life.Engine { return s.engine }

// BoardPixels returns the size the board is drawn at.
func (s *Session) BoardPixels() int { return s.brush.BoardPixels() }

// Start enables automatic stepping. The first step happens on the next
// Advance.
func (s *Session) Start() {
	s.engine.SetRunning(true)
	s.pacer.Restart()
	s.logger.Debug("Simulation started.", "generation", s.engine.Generation())
}

// Stop disables automatic stepping.
func (s *Session) Stop() {
	s.engine.SetRunning(false)
	s.logger.Debug("Simulation stopped.", "generation", s.engine.Generation())
}

// TogglePause starts a stopped simulation or stops a running one.
func (s *Session) TogglePause() {
	if s.engine.Running() {
		s.Stop()
		return
	}
	s.Start()
}

// Reset clears the board at its current resolution and stops stepping.
func (s *Session) Reset() {
	s.engine.Clear()
	s.logger.Debug("Board reset.", "resolution", s.engine.Resolution())
}

// SetResolution replaces the board with an empty one of the new size. The
// running state is kept.
func (s *Session) SetResolution(res int) error {
	if res > config.MaxResolution {
		res = config.MaxResolution
	}
	if err := s.engine.Resize(res); err != nil {
		s.logger.Warn("Resolution change rejected.", "resolution", res, "error", err)
		return fmt.Errorf("set resolution %d: %w", res, err)
	}
	s.brush.Forget()
	s.logger.Debug("Resolution changed.", "resolution", res, "running", s.engine.Running())
	return nil
}

// SetStepsPerSecond changes the automatic stepping cadence.
func (s *Session) SetStepsPerSecond(rate int) {
	s.pacer.SetRate(rate)
	s.logger.Debug("Step rate changed.", "steps_per_second", s.pacer.Rate())
}

// Randomize fills the board with a soup generated from seed.
func (s *Session) Randomize(seed int64) {
	s.seed = seed
	s.engine.Seed(seed, s.density)
	s.logger.Debug("Board seeded.", "seed", seed, "population", s.engine.Population())
}

// StepOnce advances one generation whether or not the simulation is running.
func (s *Session) StepOnce() { s.engine.Step() }

// Pointer feeds one pointer sample, in board pixels, to the paint brush.
func (s *Session) Pointer(px, py float64, pressed bool) {
	x, y, toggled, err := s.brush.Sample(s.engine, px, py, pressed)
	if err != nil {
		s.logger.Warn("Paint rejected.", "x", x, "y", y, "error", err)
		return
	}
	if toggled {
		s.logger.Debug("Cell toggled.", "x", x, "y", y, "alive", s.engine.Cell(x, y) == 1)
	}
}

// Advance steps the engine if it is running and a step is due at now. It
// reports whether a generation was computed.
func (s *Session) Advance(now time.Time) bool {
	return s.advance(func() bool { return s.pacer.ShouldStepAt(now) })
}

// Tick is Advance against the wall clock; the frame loop calls it once per
// frame.
func (s *Session) Tick() bool {
	return s.advance(s.pacer.ShouldStep)
}

func (s *Session) advance(due func() bool) bool {
	if !s.engine.Running() || !due() {
		return false
	}
	s.engine.Step()
	return true
}

// Parameters reports the values shown on the HUD and status line.
func (s *Session) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Params: []core.Parameter{
		{Key: "resolution", Label: "Resolution", Type: core.ParamTypeInt, Value: strconv.Itoa(s.engine.Resolution())},
		{Key: "steps_per_second", Label: "Steps/sec", Type: core.ParamTypeInt, Value: strconv.Itoa(s.pacer.Rate())},
		{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(s.engine.Generation())},
		{Key: "population", Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(s.engine.Population())},
		{Key: "running", Label: "Running", Type: core.ParamTypeBool, Value: strconv.FormatBool(s.engine.Running())},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "resolution", Label: "Resolution", Step: 1, Min: 1, Max: config.MaxResolution},
		{Key: "steps_per_second", Label: "Steps/sec", Step: 1, Min: 1, Max: maxStepsPerSecond},
	}
}

// SetIntParameter applies a HUD adjustment.
func (s *Session) SetIntParameter(key string, value int) bool {
	switch key {
	case "resolution":
		return s.SetResolution(value) == nil
	case "steps_per_second":
		if value < 1 || value > maxStepsPerSecond {
			return false
		}
		s.SetStepsPerSecond(value)
		return true
	}
	return false
}

// Actions lists the HUD buttons.
func (s *Session) Actions() []core.Action {
	return []core.Action{
		{Key: "start", Label: "Start"},
		{Key: "stop", Label: "Stop"},
		{Key: "reset", Label: "Reset"},
		{Key: "step", Label: "Step"},
		{Key: "seed", Label: "Random"},
	}
}

// Trigger runs the action registered under key.
func (s *Session) Trigger(key string) bool {
	switch key {
	case "start":
		s.Start()
	case "stop":
		s.Stop()
	case "reset":
		s.Reset()
	case "step":
		s.StepOnce()
	case "seed":
		s.Randomize(s.seed + 1)
	default:
		return false
	}
	return true
}
