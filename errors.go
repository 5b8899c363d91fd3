package recordcache

import "errors"

// ErrInvalidArgument is returned (wrapped with context) when a caller passes
// a malformed GetRecords/PutRecords argument: a zero-value Position, a
// non-positive limit, or an empty records slice. No state is mutated before
// this error is returned.
var ErrInvalidArgument = errors.New("recordcache: invalid argument")
