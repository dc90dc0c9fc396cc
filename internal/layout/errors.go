package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout failures.
var (
	// ErrTemplateTooSmall means the regions of a template ran out before the
	// queue was drained. Escalation recovers from it by trying the next template.
	ErrTemplateTooSmall = errors.New("template too small")

	// ErrUnsplittableOverflow means the block left at the head of the queue
	// could not be split. It always comes together with ErrTemplateTooSmall.
	ErrUnsplittableOverflow = errors.New("unsplittable block overflows template")
)

// OverflowError reports an Exhausted flow: the blocks that did not fit.
type OverflowError struct {
	Remaining    int   // blocks left in the queue, head included
	Head         Block // block that could not be placed
	Unsplittable bool  // Head was not offered for splitting or could not be split
}

func (e *OverflowError) Error() string {
	msg := fmt.Sprintf("%s: %d block(s) left, head is %s", ErrTemplateTooSmall, e.Remaining, Describe(e.Head))
	if e.Unsplittable {
		msg += " (unsplittable)"
	}
	return msg
}

// Is reports ErrTemplateTooSmall always and ErrUnsplittableOverflow when the
// head block could not be split.
func (e *OverflowError) Is(target error) bool {
	switch target {
	case ErrTemplateTooSmall:
		return true
	case ErrUnsplittableOverflow:
		return e.Unsplittable
	}
	return false
}

// ExhaustedError is returned by Escalate when every attempt failed for lack
// of space.
type ExhaustedError struct {
	Attempts []Attempt
	Last     error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all %d layout attempts failed: %v", len(e.Attempts), e.Last)
}

func (e *ExhaustedError) Unwrap() error { return e.Last }
