package flow

import (
	"context"

	"github.com/ib-77/sinphase/pkg/rop"
	"github.com/ib-77/sinphase/pkg/rop/solo"
	"github.com/ib-77/sinphase/pkg/sinphase"
)

// Flow threads one artifact through the stages of a pipeline context.
type Flow struct {
	ctx    context.Context
	pc     *sinphase.Context
	result rop.Result[[]byte]
}

// Start creates a flow over pc carrying input.
func Start(ctx context.Context, pc *sinphase.Context, input []byte) *Flow {
	return &Flow{
		ctx:    ctx,
		pc:     pc,
		result: rop.Success(input),
	}
}

// Result returns the underlying rop.Result
func (f *Flow) Result() rop.Result[[]byte] {
	return f.result
}

// Then executes stage id on the current artifact.
func (f *Flow) Then(id sinphase.StageID) *Flow {
	return &Flow{
		ctx: f.ctx,
		pc:  f.pc,
		result: solo.Try(f.ctx, f.result, id.String(),
			func(ctx context.Context, in []byte) ([]byte, error) {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return f.pc.Execute(ctx, id, in)
			}),
	}
}

// Remaining executes every stage from the context's expected stage through
// the last one, stopping at the first failure.
func (f *Flow) Remaining() *Flow {
	next := f
	if !f.result.IsSuccess() || f.pc.Completed() {
		return next
	}
	for id := f.pc.CurrentStage(); int(id) < sinphase.StageCount; id++ {
		next = next.Then(id)
		if !next.result.IsSuccess() {
			break
		}
	}
	return next
}

// Certify fails the flow when the context's chain does not validate.
func (f *Flow) Certify() *Flow {
	return &Flow{
		ctx: f.ctx,
		pc:  f.pc,
		result: solo.Switch(f.ctx, f.result,
			func(ctx context.Context, out []byte) rop.Result[[]byte] {
				if err := f.pc.CheckChain(); err != nil {
					return rop.Fail[[]byte](err).At("certify")
				}
				return rop.Success(out).At("certify")
			}),
	}
}

// Ensure performs a side effect without changing the result
func (f *Flow) Ensure(onSuccess func(context.Context, []byte)) *Flow {
	return &Flow{
		ctx:    f.ctx,
		pc:     f.pc,
		result: solo.Tee(f.ctx, f.result, onSuccess),
	}
}

// Finally collapses the flow into a final value using solo.Finally
func Finally[U any](f *Flow, onSuccess func(context.Context, []byte) U,
	onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally(f.ctx, f.result, onSuccess, onFailure, onCancel)
}
