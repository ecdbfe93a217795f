package core

import (
	"errors"
	"strings"
)

// CauseChain unwinds a wrapped error into one message per wrapping layer,
// outermost first. Each layer's message is stripped of the text repeated by
// the layers beneath it, so hosts can render the chain as an ordered list of
// causes instead of one ever-growing line.
func CauseChain(err error) []string {
	var chain []string
	for err != nil {
		msg := err.Error()
		if inner := errors.Unwrap(err); inner != nil {
			msg = strings.TrimSuffix(msg, inner.Error())
			msg = strings.TrimSuffix(msg, ": ")
		}
		if msg != "" {
			chain = append(chain, msg)
		}
		err = errors.Unwrap(err)
	}
	return chain
}
