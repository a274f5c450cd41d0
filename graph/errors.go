package graph

import "errors"

var (
	// ErrFileOpen indicates an input path could not be opened for reading.
	ErrFileOpen = errors.New("graph: cannot open file")
	// ErrParse indicates a header or record does not match the expected field count or type.
	ErrParse = errors.New("graph: malformed input")
	// ErrRange indicates a node id outside [0,n), or a request for more sources than nodes.
	ErrRange = errors.New("graph: node id out of range")
)
