// Package solo contains single-value, synchronous ROP primitives that operate
// on Result[T]. The stage drivers build on them to thread one artifact
// through the pipeline without branching on errors at every step.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Switch: move from Result[In] to Result[Out]
// - Try: call a function (Out, error) and convert the error to a failure,
//   or to a cancellation when it is a context error
// - Tee: side effect on success
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
