package c

import (
	"context"
	"testing"

	"github.com/broady/showenum/enumgen/ir"
	"github.com/broady/showenum/enumgen/sink"
)

func TestCGenerator_Name(t *testing.T) {
	var g Generator = &CGenerator{}
	if g.Name() != "c" {
		t.Errorf("Name() = %q, want %q", g.Name(), "c")
	}
}

func TestCGenerator_Generate(t *testing.T) {
	mem := sink.NewMemorySink()
	d := &ir.EnumDescriptor{Tag: "Color", Alias: "Color", Variants: []string{"RED", "GREEN"}}

	result, err := (&CGenerator{}).Generate(context.Background(), d, GenerateOptions{Sink: mem})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(result.Files) != 1 || result.Files[0].Path != "show_color.c" {
		t.Fatalf("Files = %+v, want one file show_color.c", result.Files)
	}
	content := mem.Get("show_color.c")
	if content == nil {
		t.Fatal("show_color.c not written to sink")
	}
	if int64(len(content)) != result.Files[0].Size {
		t.Errorf("Size = %d, want %d", result.Files[0].Size, len(content))
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %+v", result.Warnings)
	}
}

func TestCGenerator_GenerateCustomPath(t *testing.T) {
	mem := sink.NewMemorySink()
	d := &ir.EnumDescriptor{Tag: "E", Variants: []string{"A"}}

	_, err := (&CGenerator{}).Generate(context.Background(), d, GenerateOptions{Sink: mem, Path: "out/e_names.c"})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if mem.Get("out/e_names.c") == nil {
		t.Error("expected file at custom path")
	}
}

func TestCGenerator_GenerateErrors(t *testing.T) {
	ctx := context.Background()
	g := &CGenerator{}

	if _, err := g.Generate(ctx, nil, GenerateOptions{Sink: sink.NewMemorySink()}); err == nil {
		t.Error("expected error for nil descriptor")
	}
	if _, err := g.Generate(ctx, &ir.EnumDescriptor{Tag: "E"}, GenerateOptions{}); err == nil {
		t.Error("expected error for missing sink")
	}

	mem := sink.NewMemorySink()
	if _, err := g.Generate(ctx, &ir.EnumDescriptor{Variants: []string{"X"}}, GenerateOptions{Sink: mem}); err == nil {
		t.Error("expected error for anonymous enum without alias")
	}
	if len(mem.Files()) != 0 {
		t.Error("nothing should be written on error")
	}
}
