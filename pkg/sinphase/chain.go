package sinphase

import "fmt"

// CheckChain certifies that every stage was registered and validated. At
// Disabled trust nothing is required and nothing is recorded.
func (c *Context) CheckChain() error {
	if c == nil || c.closed {
		return newError(InvalidArgument, NoStage, "context destroyed")
	}
	if c.trust == Disabled {
		return nil
	}
	if err := c.usable(); err != nil {
		return err
	}

	for _, id := range Stages() {
		if !c.validated[id] || c.impls[id] == nil {
			_ = c.record(id, true, fmt.Sprintf("Zero Trust Chain Violation: stage %d (%s) not properly validated", int(id), id))
			return newError(ChainIncomplete, id, "stage not registered")
		}
	}

	return c.record(NoStage, false, "Zero Trust Chain Validation: PASSED")
}

// ValidateChain reports whether CheckChain passes.
func (c *Context) ValidateChain() bool {
	return c.CheckChain() == nil
}
