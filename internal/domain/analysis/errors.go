package analysis

import "errors"

// ErrMissingObjectID indicates a request without a content-addressed identifier.
// This is the only input condition that refuses analysis outright.
var ErrMissingObjectID = errors.New("IPFS hash is required")
