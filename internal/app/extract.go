package app

import (
	"github.com/example/agora/internal/ports/primary"
	"github.com/example/agora/internal/ports/secondary"
)

// contractEventKind is the event kind under which the commerce contract
// emits its attributes.
const contractEventKind = "wasm"

// extractEventAttr scans a transaction's event records for the first
// contract event carrying the given attribute key. Absence is an
// ExtractionError: the attribute is a structural guarantee of the
// contract, not a business outcome.
func extractEventAttr(res *secondary.ExecResult, key, op string) (string, error) {
	for _, ev := range res.Events {
		if ev.Kind != contractEventKind {
			continue
		}
		if v, ok := ev.Attributes[key]; ok {
			return v, nil
		}
	}
	return "", &primary.ExtractionError{Op: op, Attribute: key}
}
