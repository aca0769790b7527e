// Package enumgen generates C functions that return the name of each
// enumerator of a C enum declaration.
package enumgen

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/broady/showenum/enumgen/c"
	"github.com/broady/showenum/enumgen/ir"
	"github.com/broady/showenum/enumgen/parser"
	"github.com/broady/showenum/enumgen/sink"
	"github.com/broady/showenum/internal/source"
)

// Config holds the configuration for code generation.
type Config struct {
	// Start and End select the inclusive 1-based line window that holds the
	// declaration. Zero leaves the bound open.
	Start int `validate:"gte=0"`
	End   int `validate:"omitempty,gtefield=Start"`

	// MaxVariants is the largest number of enumerators accepted.
	// Default: parser.DefaultMaxVariants
	MaxVariants int `validate:"gte=0"`

	// FunctionPrefix is prepended to the lowercased display name.
	// Default: "show_"
	FunctionPrefix string `validate:"omitempty,cprefix"`

	// TrailingNewline ends the output with a newline after the closing brace.
	TrailingNewline bool

	// Sink receives the generated file. Default: standard output.
	Sink sink.OutputSink `validate:"-"`

	// OutputPath is the path handed to Sink.
	// Default: the function name with a ".c" extension.
	OutputPath string

	// Logger receives progress and warning records. Default: slog.Default().
	Logger *slog.Logger `validate:"-"`
}

// GenerateResult describes one completed generation.
type GenerateResult struct {
	// Enum is the parsed declaration.
	Enum *ir.EnumDescriptor

	// Files lists the files written to the sink.
	Files []c.OutputFile

	// Warnings contains non-fatal issues encountered.
	Warnings []ir.Warning

	// Output holds the generated text when produced by Generator.Generate.
	Output []byte
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("cprefix", isCPrefix); err != nil {
		panic(err)
	}
	return v
}

// isCPrefix accepts strings that can start a C identifier.
func isCPrefix(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '_', ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// GenerateFile reads path and generates the stringification function for
// the enum declared in the configured line window.
func GenerateFile(ctx context.Context, path string, cfg *Config) (*GenerateResult, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}

	text, err := source.Load(path)
	if err != nil {
		return nil, err
	}
	return generate(ctx, path, text, cfg)
}

// GenerateSource generates the stringification function for the enum
// declared in text.
func GenerateSource(ctx context.Context, text string, cfg *Config) (*GenerateResult, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, err
	}
	return generate(ctx, "", text, cfg)
}

func generate(ctx context.Context, filename, text string, cfg *Config) (*GenerateResult, error) {
	cfg = applyConfigDefaults(cfg)
	logger := cfg.Logger
	start := time.Now()

	window, err := source.Slice(text, cfg.Start, cfg.End)
	if err != nil {
		return nil, err
	}

	// 1. Parse the declaration
	d, err := parser.Parse(window,
		parser.WithFilename(filename),
		parser.WithMaxVariants(cfg.MaxVariants),
		parser.WithLineWindow(cfg.Start, cfg.End),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse declaration: %w", err)
	}

	logger.DebugContext(ctx, "declaration parsed",
		slog.String("file", filename),
		slog.String("tag", d.Tag),
		slog.String("alias", d.Alias),
		slog.Int("variants", len(d.Variants)),
	)

	// 2. Check the descriptor can be named
	if err := d.Validate(); err != nil {
		return nil, err
	}

	// 3. Render and write
	gen := &c.CGenerator{}
	result, err := gen.Generate(ctx, d, c.GenerateOptions{
		Sink: cfg.Sink,
		Path: cfg.OutputPath,
		Config: c.GeneratorConfig{
			FunctionPrefix:  cfg.FunctionPrefix,
			TrailingNewline: cfg.TrailingNewline,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate C: %w", err)
	}

	for _, w := range result.Warnings {
		logger.WarnContext(ctx, w.Message,
			slog.String("code", w.Code),
			slog.String("name", w.Name),
		)
	}

	logger.InfoContext(ctx, "generated",
		slog.String("function", d.FunctionName(cfg.FunctionPrefix)),
		slog.String("path", result.Files[0].Path),
		slog.Int64("bytes", result.Files[0].Size),
		slog.Duration("duration", time.Since(start)),
	)

	return &GenerateResult{
		Enum:     d,
		Files:    result.Files,
		Warnings: result.Warnings,
	}, nil
}

// applyConfigDefaults returns a copy of cfg with defaults filled in.
func applyConfigDefaults(cfg *Config) *Config {
	out := *cfg
	if out.MaxVariants == 0 {
		out.MaxVariants = parser.DefaultMaxVariants
	}
	if out.FunctionPrefix == "" {
		out.FunctionPrefix = c.DefaultFunctionPrefix
	}
	if out.Sink == nil {
		out.Sink = sink.NewWriterSink(os.Stdout)
	}
	if out.Logger == nil {
		out.Logger = slog.Default()
	}
	return &out
}
