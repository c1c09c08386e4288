package match

import (
	"fmt"
)

// ErrConfiguration is the error class of *ConfigurationError. Clients may
// test for it with errors.Is.
var ErrConfiguration = fmt.Errorf("pattern match configuration error")

// ErrIncompleteMatch is the error class of *IncompletePatternMatchError.
// Clients may test for it with errors.Is.
var ErrIncompleteMatch = fmt.Errorf("incomplete pattern match")

// ConfigurationError is returned when a match has been set up in an illegal
// way, e.g. with two else-cases.
type ConfigurationError struct {
	Op  string // builder operation which failed
	Msg string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("match.%s: %s", e.Op, e.Msg)
}

// Is lets errors.Is(err, ErrConfiguration) hold.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// IncompletePatternMatchError is returned by an evaluation where no case
// matched and no else-case had been set.
type IncompletePatternMatchError struct {
	Input    string // input value in %v-format, if the match has one
	HasInput bool
	Cases    int // number of cases tried
}

func (e *IncompletePatternMatchError) Error() string {
	if e.HasInput {
		return fmt.Sprintf("incomplete pattern match: none of %d case(s) matched %s",
			e.Cases, e.Input)
	}
	return fmt.Sprintf("incomplete pattern match: none of %d case(s) matched", e.Cases)
}

// Is lets errors.Is(err, ErrIncompleteMatch) hold.
func (e *IncompletePatternMatchError) Is(target error) bool {
	return target == ErrIncompleteMatch
}
