package errs

import (
	"errors"
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func New(msg string) error {
	return cr.New(msg)
}

// Mark associates err with a sentinel without changing its message.
// The sentinel is matched by errors.Is while the cause chain stays
// reachable through Unwrap, so kind tags and wrapped errors keep
// matching too.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &markedError{cause: err, mark: markErr}
}

type markedError struct {
	cause error
	mark  error
}

func (e *markedError) Error() string { return e.cause.Error() }

func (e *markedError) Unwrap() error { return e.cause }

func (e *markedError) Is(target error) bool {
	return errors.Is(e.mark, target)
}

func (e *markedError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%+v", e.cause)
		return
	}
	fmt.Fprintf(s, "%v", e.cause)
}

func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	s := fmt.Sprintf("%+v", err)
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	return lines
}
