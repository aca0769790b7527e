package enumgen

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/broady/showenum/enumgen/sink"
)

// Generator provides a fluent API for code generation.
// Create with FromFile() or FromSource() and configure with method chaining.
//
// Example:
//
//	enumgen.FromFile("include/status.h").
//	    Lines(12, 18).
//	    Prefix("status_name_").
//	    ToWriter(os.Stdout)
type Generator struct {
	filename string
	source   string
	inMemory bool
	cfg      Config
}

// FromFile creates a Generator that reads the declaration from path.
func FromFile(path string) *Generator {
	return &Generator{filename: path}
}

// FromSource creates a Generator over in-memory declaration text.
func FromSource(text string) *Generator {
	return &Generator{source: text, inMemory: true}
}

// Lines restricts parsing to the inclusive 1-based line window [start, end].
// Zero leaves the corresponding bound open.
func (g *Generator) Lines(start, end int) *Generator {
	g.cfg.Start = start
	g.cfg.End = end
	return g
}

// MaxVariants sets the largest number of enumerators accepted.
func (g *Generator) MaxVariants(n int) *Generator {
	g.cfg.MaxVariants = n
	return g
}

// Prefix sets the generated function-name prefix (default "show_").
func (g *Generator) Prefix(p string) *Generator {
	g.cfg.FunctionPrefix = p
	return g
}

// TrailingNewline ends the output with a newline after the closing brace.
func (g *Generator) TrailingNewline() *Generator {
	g.cfg.TrailingNewline = true
	return g
}

// WithLogger sets the logger used during generation.
func (g *Generator) WithLogger(logger *slog.Logger) *Generator {
	g.cfg.Logger = logger
	return g
}

// ToWriter generates the function and writes it to w.
func (g *Generator) ToWriter(w io.Writer) (*GenerateResult, error) {
	g.cfg.Sink = sink.NewWriterSink(w)
	return g.run()
}

// ToFile generates the function and writes it atomically to path.
func (g *Generator) ToFile(path string) (*GenerateResult, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	g.cfg.Sink = sink.NewFilesystemSink(dir)
	g.cfg.OutputPath = base
	return g.run()
}

// Generate returns the generated function in memory without writing it anywhere.
// The text is available in GenerateResult.Output.
func (g *Generator) Generate() (*GenerateResult, error) {
	mem := sink.NewMemorySink()
	g.cfg.Sink = mem

	result, err := g.run()
	if err != nil {
		return nil, err
	}
	if len(result.Files) > 0 {
		result.Output = mem.Get(result.Files[0].Path)
	}
	return result, nil
}

func (g *Generator) run() (*GenerateResult, error) {
	ctx := context.Background()
	if g.inMemory {
		return GenerateSource(ctx, g.source, &g.cfg)
	}
	return GenerateFile(ctx, g.filename, &g.cfg)
}
