package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ib-77/sinphase/pkg/rop"
	"github.com/ib-77/sinphase/pkg/sinphase"
	"github.com/ib-77/sinphase/pkg/sinphase/audit"
	"github.com/ib-77/sinphase/pkg/sinphase/flow"
)

const DefaultWorkers = 4

// Unit is one compilation input.
type Unit struct {
	Name  string
	Input []byte
}

// Factory builds the pipeline context a unit runs in, with its stages
// registered.
type Factory func(ctx context.Context, unit Unit) (*sinphase.Context, error)

// Report is the outcome of one unit.
type Report struct {
	Unit        string
	ExecutionID uuid.UUID
	Output      []byte
	Step        string
	Err         error
	Cancelled   bool
	Certified   bool
	Audit       []audit.Entry
}

func (r Report) OK() bool {
	return r.Err == nil && !r.Cancelled
}

type Runner struct {
	Factory Factory
	Logger  *zap.Logger
}

func NewRunner(factory Factory, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{Factory: factory, Logger: logger}
}

// Run drives every unit through all stages, each in its own context, with
// at most GetWorkerMaxCount(ctx, DefaultWorkers) units in flight. Reports are
// returned in the order of units. Units not started before ctx is done are
// reported as cancelled.
func (r *Runner) Run(ctx context.Context, units ...Unit) []Report {
	reports := make([]Report, len(units))
	certify := IsCertifyRequired(ctx, true)

	var g errgroup.Group
	g.SetLimit(GetWorkerMaxCount(ctx, DefaultWorkers))

	for i, u := range units {
		g.Go(func() error {
			reports[i] = r.runUnit(ctx, u, certify)
			return nil
		})
	}
	_ = g.Wait()

	return reports
}

func (r *Runner) runUnit(ctx context.Context, u Unit, certify bool) Report {
	rep := Report{Unit: u.Name}

	if err := ctx.Err(); err != nil {
		rep.Err = err
		rep.Cancelled = true
		return rep
	}

	pc, err := r.Factory(ctx, u)
	if err != nil {
		rep.Err = fmt.Errorf("build pipeline: %w", err)
		r.Logger.Error("unit setup failed", zap.String("unit", u.Name), zap.Error(err))
		return rep
	}
	defer pc.Close()
	rep.ExecutionID = pc.ExecutionID()

	f := flow.Start(ctx, pc, u.Input).Remaining()
	if certify {
		f = f.Certify()
	}
	res := f.Result()

	rep.Step = res.Step()
	rep.Cancelled = res.IsCancel()
	rep.Certified = certify && res.IsSuccess()
	rep.Output = flow.Finally(f,
		func(_ context.Context, out []byte) []byte { return out },
		func(_ context.Context, err error) []byte { rep.Err = err; return nil },
		func(_ context.Context, err error) []byte { rep.Err = err; return nil })
	rep.Audit = pc.Audit()

	if rep.OK() {
		r.Logger.Info("unit completed",
			zap.String("unit", u.Name),
			zap.Stringer("execution_id", rep.ExecutionID),
			zap.Bool("certified", rep.Certified))
	} else {
		r.Logger.Warn("unit failed",
			zap.String("unit", u.Name),
			zap.String("step", rep.Step),
			zap.Bool("cancelled", rep.Cancelled),
			zap.Error(rep.Err))
	}
	return rep
}

// Err joins the errors of every failed report, each prefixed with its unit.
func Err(reports []Report) error {
	var errs []error
	for _, rep := range reports {
		if rop.IsNil(rep.Err) {
			continue
		}
		errs = append(errs, fmt.Errorf("%s: %w", rep.Unit, rep.Err))
	}
	return errors.Join(errs...)
}
