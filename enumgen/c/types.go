// Package c renders enum descriptors as C stringification functions.
package c

import (
	"context"

	"github.com/broady/showenum/enumgen/ir"
	"github.com/broady/showenum/enumgen/sink"
)

// Generator transforms an enum descriptor into target language source code.
type Generator interface {
	// Name returns the generator's identifier (e.g., "c").
	Name() string

	// Generate produces source code for the given descriptor.
	Generate(ctx context.Context, d *ir.EnumDescriptor, opts GenerateOptions) (*GenerateResult, error)
}

// GenerateOptions configures generation behavior.
type GenerateOptions struct {
	// Sink receives the generated output file.
	Sink sink.OutputSink

	// Path is the relative output path handed to the sink.
	// Defaults to the function name with a ".c" extension.
	Path string

	// Config contains generator-specific configuration.
	Config GeneratorConfig
}

// GenerateResult contains generation output metadata.
type GenerateResult struct {
	// Files lists all files that were written.
	Files []OutputFile

	// Warnings contains non-fatal issues encountered.
	Warnings []ir.Warning
}

// OutputFile describes a generated file.
type OutputFile struct {
	// Path is the relative path of the generated file.
	Path string

	// Size is the number of bytes written.
	Size int64
}

// GeneratorConfig provides rendering options.
type GeneratorConfig struct {
	// FunctionPrefix is prepended to the lowercased display name to form
	// the function identifier. Default: "show_".
	FunctionPrefix string

	// Formatting
	IndentSize      int    // Spaces per indent level (default 4)
	LineEnding      string // "lf" or "crlf"
	TrailingNewline bool   // End the output with a line ending after the closing brace
}

// DefaultFunctionPrefix is the function-name prefix used when none is configured.
const DefaultFunctionPrefix = "show_"

func applyDefaults(cfg GeneratorConfig) GeneratorConfig {
	if cfg.FunctionPrefix == "" {
		cfg.FunctionPrefix = DefaultFunctionPrefix
	}
	if cfg.IndentSize <= 0 {
		cfg.IndentSize = 4
	}
	if cfg.LineEnding == "" {
		cfg.LineEnding = "lf"
	}
	return cfg
}
