package sinphase

import (
	"context"
	"fmt"
)

// Execute runs stage id on input and returns the stage's output.
//
// From Comprehensive trust upwards the stage must have been registered and
// must be the expected next stage. Every trust level requires an
// implementation. A stage error is returned unchanged and does not move the
// context; success moves it to the following stage, or to Completed after
// the last one.
func (c *Context) Execute(ctx context.Context, id StageID, input []byte) ([]byte, error) {
	if err := c.usable(); err != nil {
		return nil, err
	}

	if !id.Valid() {
		_ = c.record(id, true, fmt.Sprintf("execution rejected: stage %d out of range", int(id)))
		return nil, newError(InvalidArgument, id, "stage id out of range")
	}

	if c.trust >= Comprehensive {
		if !c.validated[id] {
			_ = c.record(id, true, fmt.Sprintf("Zero Trust Violation: unvalidated stage execution (stage %d)", int(id)))
			return nil, newError(UnvalidatedStage, id, "stage was never registered")
		}
		if expected, ok := c.state.Stage(); !ok || expected != id {
			_ = c.record(id, true, fmt.Sprintf("Zero Trust Violation: stage sequence violation (expected %s, got %d)", c.state, int(id)))
			return nil, newError(OutOfOrderExecution, id, "expected "+c.state.String())
		}
	}

	impl := c.impls[id]
	if impl == nil {
		_ = c.record(id, true, fmt.Sprintf("stage %d (%s) implementation not found", int(id), id))
		return nil, newError(MissingImplementation, id, "no implementation registered")
	}

	out, err := impl.Execute(ctx, input)
	if err != nil {
		_ = c.record(id, true, fmt.Sprintf("stage %d (%s) failed: %v", int(id), id, err))
		return nil, err
	}

	c.state = after(id)
	if rerr := c.record(id, false, fmt.Sprintf("stage %d (%s) executed successfully", int(id), id)); rerr != nil {
		return out, rerr
	}
	return out, nil
}
