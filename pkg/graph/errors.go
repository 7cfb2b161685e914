package graph

import "errors"

// Common sentinel errors
var (
	ErrNodeOutOfRange = errors.New("node index out of range")
	ErrEdgeNotFound   = errors.New("edge not found")
	ErrBadDistance    = errors.New("bad edge distance")
)
