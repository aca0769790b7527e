package showenum

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/go-playground/validator/v10"

	"github.com/broady/showenum/enumgen/ir"
	"github.com/broady/showenum/enumgen/parser"
	"github.com/broady/showenum/internal/source"
)

func TestNewError(t *testing.T) {
	err := NewError(CodeNotFound, "file not found")
	if err.Code != CodeNotFound {
		t.Errorf("expected code %s, got %s", CodeNotFound, err.Code)
	}
	if err.Message != "file not found" {
		t.Errorf("expected message 'file not found', got %s", err.Message)
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf(CodeInvalidArgument, "bad flag: %s", "--start")
	if err.Message != "bad flag: --start" {
		t.Errorf("expected formatted message, got %s", err.Message)
	}
}

func TestErrorError(t *testing.T) {
	err := NewError(CodeInternal, "something went wrong")
	expected := "internal: something went wrong"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestWithDetail(t *testing.T) {
	base := NewError(CodeMalformedDeclaration, "bad")
	withLine := base.WithDetail("line", 3)
	if base.Details != nil {
		t.Errorf("WithDetail mutated the receiver: %v", base.Details)
	}
	if withLine.Details["line"] != 3 {
		t.Errorf("expected line detail 3, got %v", withLine.Details["line"])
	}
}

func TestDefaultErrorTransformer(t *testing.T) {
	_, malformed := parser.Parse("enum Status OK, FAIL };")
	_, capacity := parser.Parse("enum E { A, B };", parser.WithMaxVariants(1))
	_, badRange := source.Slice("a\nb", 2, 1)

	tests := []struct {
		name     string
		input    error
		wantCode ErrorCode
	}{
		{"envelope passthrough", NewError(CodeNotFound, "x"), CodeNotFound},
		{"malformed declaration", malformed, CodeMalformedDeclaration},
		{"wrapped malformed declaration", fmt.Errorf("failed to parse declaration: %w", malformed), CodeMalformedDeclaration},
		{"capacity", capacity, CodeVariantCapacityExceeded},
		{"empty display name", ir.ErrEmptyDisplayName, CodeEmptyDisplayName},
		{"invalid range", badRange, CodeInvalidArgument},
		{"missing file", fmt.Errorf("failed to read file: %w", fs.ErrNotExist), CodeNotFound},
		{"canceled", context.Canceled, CodeCanceled},
		{"joined", errors.Join(ir.ErrEmptyDisplayName, errors.New("other")), CodeEmptyDisplayName},
		{"generic", errors.New("disk on fire"), CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.input == nil {
				t.Fatal("test input error is nil")
			}
			result := DefaultErrorTransformer(tt.input)
			if result.Code != tt.wantCode {
				t.Errorf("expected code %s, got %s (%v)", tt.wantCode, result.Code, result)
			}
		})
	}

	if DefaultErrorTransformer(nil) != nil {
		t.Error("expected nil for nil input")
	}
}

func TestDefaultErrorTransformer_MalformedDetails(t *testing.T) {
	_, err := parser.Parse("enum Status OK, FAIL };")
	result := DefaultErrorTransformer(err)

	if result.Details["expected"] != "{" {
		t.Errorf("expected detail '{', got %v", result.Details["expected"])
	}
	if result.Details["line"] != 1 || result.Details["column"] != 13 {
		t.Errorf("expected position 1:13, got %v:%v", result.Details["line"], result.Details["column"])
	}
}

func TestDefaultErrorTransformer_ValidationErrors(t *testing.T) {
	type opts struct {
		Start int `validate:"gte=0"`
		End   int `validate:"omitempty,gtefield=Start"`
	}

	err := validator.New().Struct(opts{Start: 4, End: 2})
	result := DefaultErrorTransformer(err)
	if result.Code != CodeInvalidArgument {
		t.Fatalf("expected code %s, got %s", CodeInvalidArgument, result.Code)
	}
	if result.Message != "End: must not be less than Start" {
		t.Errorf("unexpected message %q", result.Message)
	}
	if result.Details["End"] != "must not be less than Start" {
		t.Errorf("unexpected details %v", result.Details)
	}
}

func TestErrorCode_ExitCode(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{CodeInvalidArgument, 2},
		{CodeMalformedDeclaration, 1},
		{CodeVariantCapacityExceeded, 1},
		{CodeEmptyDisplayName, 1},
		{CodeNotFound, 1},
		{CodeInternal, 1},
	}
	for _, tt := range tests {
		if got := tt.code.ExitCode(); got != tt.want {
			t.Errorf("%s.ExitCode() = %d, want %d", tt.code, got, tt.want)
		}
	}
}
