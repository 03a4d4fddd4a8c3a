// Package config loads simulator settings from an optional HCL file. Files
// are evaluated with an `env` map of the process environment and a small set
// of functions, so a value can be derived from the environment:
//
//	resolution = max(10, parseint(lookup(env, "LIFE_RESOLUTION", "40"), 10))
//	log_level  = lower(lookup(env, "LIFE_LOG_LEVEL", "info"))
package config
