package batch

import "context"

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
	CertifyOptionKey OptionKey = "certify_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type CertifyOptions struct {
	Required bool
}

// WithWorkerOptions caps how many units run at once.
func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

// WithCertifyOptions sets whether a unit's chain must validate for its report
// to succeed.
func WithCertifyOptions(ctx context.Context, required bool) context.Context {
	return context.WithValue(ctx, CertifyOptionKey, CertifyOptions{Required: required})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func IsCertifyRequired(ctx context.Context, defaultRequired bool) bool {
	options, ok := ctx.Value(CertifyOptionKey).(CertifyOptions)
	if ok {
		return options.Required
	}
	return defaultRequired
}
