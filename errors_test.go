package card2pdf

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/alnah/go-card2pdf/internal/layout"
)

func TestBlockDataError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *BlockDataError
		want string
	}{
		{
			name: "with field",
			err:  &BlockDataError{Card: "Goblin", Field: "strength", Msg: "out of range"},
			want: "invalid card data: Goblin: strength: out of range",
		},
		{
			name: "without field",
			err:  &BlockDataError{Card: "entry 2", Msg: "entry must be a mapping"},
			want: "invalid card data: entry 2: entry must be a mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			wrapped := fmt.Errorf("card file: %w", tt.err)
			if !errors.Is(wrapped, ErrInvalidBlockData) || !IsDataError(wrapped) {
				t.Error("wrapped error should match ErrInvalidBlockData")
			}
			if errors.Is(wrapped, ErrTemplateTooSmall) {
				t.Error("data error should not match ErrTemplateTooSmall")
			}
		})
	}
}

func TestTooSmallError(t *testing.T) {
	t.Parallel()

	overflow := &layout.OverflowError{Remaining: 2, Unsplittable: true}
	err := &TooSmallError{
		Title: "Tarrasque",
		Tried: []string{"small", "small+split"},
		Err:   &layout.ExhaustedError{Last: overflow},
	}

	msg := err.Error()
	if !strings.Contains(msg, `"Tarrasque"`) || !strings.Contains(msg, "small, small+split") {
		t.Errorf("Error() = %q", msg)
	}
	if !errors.Is(err, ErrTemplateTooSmall) {
		t.Error("should match ErrTemplateTooSmall")
	}
	if !errors.Is(err, ErrUnsplittableOverflow) {
		t.Error("should match ErrUnsplittableOverflow through the last overflow")
	}

	var got *layout.OverflowError
	if !errors.As(err, &got) || got != overflow {
		t.Error("last overflow should be reachable with errors.As")
	}
}

func TestTooSmallError_SplittableHead(t *testing.T) {
	t.Parallel()

	err := &TooSmallError{
		Title: "Lich",
		Err:   &layout.ExhaustedError{Last: &layout.OverflowError{Remaining: 1}},
	}
	if errors.Is(err, ErrUnsplittableOverflow) {
		t.Error("a splittable head should not match ErrUnsplittableOverflow")
	}
}
