package layout

import "errors"

// Attempt identifies one (template, split mode) combination.
type Attempt struct {
	Template int
	Split    bool
}

// Attempts lists the combinations Escalate tries for n templates, in order:
// each template without splitting, then with splitting when split is set.
func Attempts(n int, split bool) []Attempt {
	var out []Attempt
	for i := range n {
		out = append(out, Attempt{Template: i})
		if split {
			out = append(out, Attempt{Template: i, Split: true})
		}
	}
	return out
}

// Escalate runs try over Attempts(n, split) and returns the first success.
// Errors other than ErrTemplateTooSmall stop the search at once. When every
// attempt runs out of space the result is an *ExhaustedError.
func Escalate[T any](n int, split bool, try func(Attempt) (T, error)) (T, error) {
	var zero T
	attempts := Attempts(n, split)
	if len(attempts) == 0 {
		return zero, &ExhaustedError{Last: ErrTemplateTooSmall}
	}

	var last error
	for _, a := range attempts {
		v, err := try(a)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, ErrTemplateTooSmall) {
			return zero, err
		}
		last = err
	}
	return zero, &ExhaustedError{Attempts: attempts, Last: last}
}
