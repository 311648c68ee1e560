// Package sinphase is the zero-trust execution engine of the compiler
// pipeline.
//
// A Context owns a registry of opaque stage implementations, the position of
// the pipeline in the fixed stage sequence (tokenization, parsing, semantic,
// validation, bytecode, verification, emission) and an append-only audit
// trail. How much is verified depends on the context's TrustLevel:
//
//   - Disabled: a stage only needs an implementation to run.
//   - Basic: registrations must carry a signature accepted by the Verifier.
//   - Comprehensive, Paranoid: stages must be registered before they run and
//     must run in order.
//
// Every refusal is recorded in the audit trail and returned as an *Error;
// compare with errors.Is against the Err* sentinels. After the last stage
// the context is Completed until Restart is called.
package sinphase
