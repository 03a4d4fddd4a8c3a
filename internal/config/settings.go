package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// MaxResolution bounds the board side so a typo cannot allocate gigabytes.
const MaxResolution = 400

// Log output formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// ParseLogLevel maps a level name to its slog level.
func ParseLogLevel(name string) (slog.Level, bool) {
	level, ok := logLevels[name]
	return level, ok
}

// Settings is the full set of tunables. Attributes absent from a file keep
// the value they had before decoding.
type Settings struct {
	Resolution      int     `hcl:"resolution,optional"`
	BoardSize       int     `hcl:"board_size,optional"`
	StepsPerSecond  int     `hcl:"steps_per_second,optional"`
	FramesPerSecond int     `hcl:"frames_per_second,optional"`
	HUDWidth        int     `hcl:"hud_width,optional"`
	Running         bool    `hcl:"running,optional"`
	Seed            int64   `hcl:"seed,optional"`
	Density         float64 `hcl:"density,optional"`
	LogLevel        string  `hcl:"log_level,optional"`
	LogFormat       string  `hcl:"log_format,optional"`
}

// Default returns the built-in settings: a 40x40 board drawn 800px wide,
// stepping 10 times per second once started.
func Default() Settings {
	return Settings{
		Resolution:      40,
		BoardSize:       800,
		StepsPerSecond:  10,
		FramesPerSecond: 60,
		HUDWidth:        180,
		Density:         0.25,
		LogLevel:        "info",
		LogFormat:       LogFormatText,
	}
}

// Validate reports every out-of-range value.
func (s Settings) Validate() error {
	var errs []error
	if s.Resolution < 1 || s.Resolution > MaxResolution {
		errs = append(errs, fmt.Errorf("resolution must be between 1 and %d, got %d", MaxResolution, s.Resolution))
	}
	if s.BoardSize < 1 {
		errs = append(errs, fmt.Errorf("board_size must be positive, got %d", s.BoardSize))
	}
	if s.StepsPerSecond < 1 {
		errs = append(errs, fmt.Errorf("steps_per_second must be positive, got %d", s.StepsPerSecond))
	}
	if s.FramesPerSecond < 1 {
		errs = append(errs, fmt.Errorf("frames_per_second must be positive, got %d", s.FramesPerSecond))
	}
	if s.HUDWidth < 0 {
		errs = append(errs, fmt.Errorf("hud_width must not be negative, got %d", s.HUDWidth))
	}
	if s.Density < 0 || s.Density > 1 {
		errs = append(errs, fmt.Errorf("density must be between 0 and 1, got %g", s.Density))
	}
	if _, ok := ParseLogLevel(s.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("log_level must be 'debug', 'info', 'warn', or 'error', got %q", s.LogLevel))
	}
	switch s.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		errs = append(errs, fmt.Errorf("log_format must be 'text' or 'json', got %q", s.LogFormat))
	}
	return errors.Join(errs...)
}

// Environ returns the process environment as a map.
func Environ() map[string]string {
	env := make(map[string]string)
	for _, e := range os.Environ() {
		pair := strings.SplitN(e, "=", 2)
		if len(pair) == 2 {
			env[pair[0]] = pair[1]
		}
	}
	return env
}

// EvalContext builds the variables and functions available to settings files.
func EvalContext(env map[string]string) *hcl.EvalContext {
	envVal := cty.MapValEmpty(cty.String)
	if len(env) > 0 {
		vals := make(map[string]cty.Value, len(env))
		for k, v := range env {
			vals[k] = cty.StringVal(v)
		}
		envVal = cty.MapVal(vals)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": envVal},
		Functions: map[string]function.Function{
			"min":      stdlib.MinFunc,
			"max":      stdlib.MaxFunc,
			"parseint": stdlib.ParseIntFunc,
			"coalesce": stdlib.CoalesceFunc,
			"lookup":   stdlib.LookupFunc,
			"lower":    stdlib.LowerFunc,
		},
	}
}

// Load decodes the HCL file at path on top of base and validates the result.
func Load(path string, base Settings, env map[string]string) (Settings, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	return Parse(src, path, base, env)
}

// Parse is Load for an in-memory file; filename is used in diagnostics.
func Parse(src []byte, filename string, base Settings, env map[string]string) (Settings, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to parse HCL file %s: %s", filename, diags.Error())
	}

	s := base
	diags = gohcl.DecodeBody(file.Body, EvalContext(env), &s)
	if diags.HasErrors() {
		return base, fmt.Errorf("failed to decode HCL file %s: %s", filename, diags.Error())
	}
	if err := s.Validate(); err != nil {
		return base, fmt.Errorf("invalid settings in %s: %w", filename, err)
	}
	return s, nil
}
