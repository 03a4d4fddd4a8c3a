// Package cli parses command-line arguments, layering an optional HCL
// settings file under explicit flags, and maps failures to exit codes.
package cli
