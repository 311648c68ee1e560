package sinphase

import (
	"fmt"

	"github.com/ib-77/sinphase/pkg/rop"
)

// RegisterStage installs impl as the implementation of id. From Basic trust
// upwards sig must be accepted by the context's verifier; a rejected
// signature leaves the registry untouched. Registering a stage again
// replaces the previous implementation.
func (c *Context) RegisterStage(id StageID, impl Stage, sig uint64) error {
	if err := c.usable(); err != nil {
		return err
	}

	if !id.Valid() {
		_ = c.record(id, true, fmt.Sprintf("registration rejected: stage %d out of range", int(id)))
		return newError(InvalidArgument, id, "stage id out of range")
	}
	if rop.IsNil(impl) {
		_ = c.record(id, true, fmt.Sprintf("registration rejected: stage %d (%s) has no implementation", int(id), id))
		return newError(InvalidArgument, id, "nil stage implementation")
	}

	if c.trust >= Basic && !c.verifier.Verify(int(id), sig) {
		_ = c.record(id, true, fmt.Sprintf("Zero Trust Violation: invalid stage signature (stage %d)", int(id)))
		return newError(SignatureMismatch, id, fmt.Sprintf("signature 0x%X rejected", sig))
	}

	replaced := c.impls[id] != nil
	c.impls[id] = impl
	c.validated[id] = true

	msg := fmt.Sprintf("stage %d (%s) registered with signature 0x%X", int(id), id, sig)
	if replaced {
		msg += ", replacing previous implementation"
	}
	return c.record(id, false, msg)
}

// Register is RegisterStage reduced to whether the stage was accepted. The
// reason for a refusal is in the audit trail.
func (c *Context) Register(id StageID, impl Stage, sig uint64) bool {
	return c.RegisterStage(id, impl, sig) == nil
}
