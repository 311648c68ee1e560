// Package batch runs many compilation units through the zero-trust pipeline
// concurrently. Every unit gets its own sinphase.Context, so units never
// share a registry, a stage position or an audit trail; the only shared
// state is the bounded worker pool.
//
// Worker count and certification are configured through the context, the
// same way as the rest of the pipeline plumbing:
//
//	ctx = batch.WithWorkerOptions(ctx, 8)
//	ctx = batch.WithCertifyOptions(ctx, true)
//	reports := batch.NewRunner(factory, logger).Run(ctx, units...)
package batch
