package c

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/broady/showenum/enumgen/ir"
)

// CGenerator implements Generator for C output.
type CGenerator struct{}

// Name returns "c".
func (g *CGenerator) Name() string {
	return "c"
}

// Generate renders d and writes it to opts.Sink as a single file.
func (g *CGenerator) Generate(ctx context.Context, d *ir.EnumDescriptor, opts GenerateOptions) (*GenerateResult, error) {
	if d == nil {
		return nil, errors.New("descriptor is nil")
	}
	if opts.Sink == nil {
		return nil, errors.New("output sink is required")
	}

	emitter := NewEmitter(opts.Config)

	var buf bytes.Buffer
	warnings, err := emitter.Emit(&buf, d)
	if err != nil {
		return nil, err
	}

	path := opts.Path
	if path == "" {
		path = d.FunctionName(emitter.config.FunctionPrefix) + ".c"
	}

	if err := opts.Sink.WriteFile(ctx, path, buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return &GenerateResult{
		Files:    []OutputFile{{Path: path, Size: int64(buf.Len())}},
		Warnings: warnings,
	}, nil
}
