package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Span identifies one execution of a program fragment in the log
// stream.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
