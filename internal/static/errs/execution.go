package errs

import "errors"

// RuntimeUnavailable means the isolation engine itself could not be reached
// or provisioned. It is never used for failures of the executed code.
var RuntimeUnavailable = errors.New("execution runtime unavailable")

var (
	NoTestCases         = errors.New("no test cases configured")
	NoReferenceSolution = errors.New("no reference solution available")
	ExerciseNotFound    = errors.New("exercise not found")
)
