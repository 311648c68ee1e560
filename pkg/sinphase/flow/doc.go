// Package flow provides a fluent railway driver over a sinphase.Context.
//
// Each step feeds the previous stage's output into the next stage; the first
// refusal or stage error switches the flow to the failure track and later
// steps are skipped. Context errors returned by a stage land on the cancel
// track.
//
// Key operations:
// - Start: begin a flow with an input artifact
// - Then: execute one stage
// - Remaining: execute every stage from the expected one to the last
// - Certify: require the chain to validate
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the flow into a final value via handlers
package flow
