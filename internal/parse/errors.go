package parse

import "errors"

// ErrMalformed indicates model output that does not match the expected
// delimited grammar. The calling action is aborted and the diagnostic
// surfaced to the user; the workflow mode is left unchanged.
var ErrMalformed = errors.New("malformed delimited text")
