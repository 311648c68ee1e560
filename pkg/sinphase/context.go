package sinphase

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ib-77/sinphase/pkg/sinphase/audit"
	"github.com/ib-77/sinphase/pkg/sinphase/signature"
)

const executionNonceMask uint64 = 0xDEADBEEF

// Verifier decides whether a registration signature is acceptable for a
// stage. signature.Scheme implementations satisfy it.
type Verifier interface {
	Verify(stage int, sig uint64) bool
}

type options struct {
	verifier      Verifier
	logger        *zap.Logger
	clock         func() time.Time
	auditCapacity int
}

type Option func(*options)

// WithVerifier sets the registration verifier. The default is
// signature.Placeholder().
func WithVerifier(v Verifier) Option {
	return func(o *options) {
		if v != nil {
			o.verifier = v
		}
	}
}

// WithLogger mirrors audit events to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// WithAuditCapacity bounds the audit trail. Operations fail with BufferFull
// instead of running once the trail has no room left.
func WithAuditCapacity(n int) Option {
	return func(o *options) {
		o.auditCapacity = n
	}
}

// Context is one pipeline execution: its registry, its position in the stage
// sequence and its audit trail. A Context is not safe for concurrent use;
// callers sharing one must serialize every call.
type Context struct {
	trust       TrustLevel
	state       State
	validated   [StageCount]bool
	impls       [StageCount]Stage
	executionID uuid.UUID
	trail       *audit.Trail
	verifier    Verifier
	log         *zap.Logger
	closed      bool
}

// New creates a context at the given trust level, expecting the first stage.
func New(trust TrustLevel, opts ...Option) (*Context, error) {
	if !trust.Valid() {
		return nil, newError(InvalidArgument, NoStage, fmt.Sprintf("unknown trust level %d", int(trust)))
	}
	o := options{
		verifier: signature.Placeholder(),
		logger:   zap.NewNop(),
		clock:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.auditCapacity < 0 {
		return nil, newError(InvalidArgument, NoStage, fmt.Sprintf("negative audit capacity %d", o.auditCapacity))
	}

	id := uuid.New()
	c := &Context{
		trust:       trust,
		state:       AtStage(Tokenization),
		executionID: id,
		trail:       audit.New(audit.WithCapacity(o.auditCapacity), audit.WithClock(o.clock)),
		verifier:    o.verifier,
	}
	c.log = o.logger.With(
		zap.String("execution_id", id.String()),
		zap.Stringer("trust", trust),
	)

	if err := c.record(NoStage, false, fmt.Sprintf("context created (trust=%s)", trust)); err != nil {
		return nil, err
	}
	return c, nil
}

// Close releases the registry and the audit trail. It is safe to call on a
// nil or already closed context.
func (c *Context) Close() {
	if c == nil || c.closed {
		return
	}
	c.log.Debug("context destroyed", zap.Int("audit_entries", c.trail.Len()))
	c.closed = true
	c.trail = nil
	c.impls = [StageCount]Stage{}
	c.validated = [StageCount]bool{}
}

func (c *Context) Trust() TrustLevel {
	return c.trust
}

// ExecutionID identifies this context in logs.
func (c *Context) ExecutionID() uuid.UUID {
	return c.executionID
}

// ExecutionSignature is a session nonce derived from the execution id. It is
// diagnostic only and never verified.
func (c *Context) ExecutionSignature() uint64 {
	return binary.BigEndian.Uint64(c.executionID[:8]) ^ executionNonceMask
}

func (c *Context) State() State {
	return c.state
}

// CurrentStage is the next stage expected to run. A completed pipeline
// reports the first stage.
func (c *Context) CurrentStage() StageID {
	id, _ := c.state.Stage()
	return id
}

func (c *Context) Completed() bool {
	return c.state.Completed()
}

// Validated reports whether id was successfully registered.
func (c *Context) Validated(id StageID) bool {
	return id.Valid() && c.validated[id]
}

// Audit returns a snapshot of the audit trail, or nil once closed.
func (c *Context) Audit() []audit.Entry {
	if c == nil || c.closed {
		return nil
	}
	return c.trail.Entries()
}

// Restart moves a completed pipeline back to the first stage.
func (c *Context) Restart() error {
	if err := c.usable(); err != nil {
		return err
	}
	if !c.state.Completed() {
		err := newError(InvalidArgument, NoStage, "restart requires a completed pipeline, at "+c.state.String())
		_ = c.record(NoStage, true, "restart rejected: pipeline not completed")
		return err
	}
	c.state = AtStage(Tokenization)
	return c.record(NoStage, false, "pipeline restarted")
}

func (c *Context) usable() error {
	if c == nil || c.closed {
		return newError(InvalidArgument, NoStage, "context destroyed")
	}
	if c.trail.Remaining() == 0 {
		return newError(BufferFull, NoStage, audit.ErrBufferFull.Error())
	}
	return nil
}

// record appends msg to the trail and mirrors it to the logger. Violations
// are logged at warn level.
func (c *Context) record(stage StageID, violation bool, msg string) error {
	if _, err := c.trail.Append(msg); err != nil {
		return newError(BufferFull, stage, err.Error())
	}

	fields := []zap.Field{zap.String("event", msg)}
	if stage != NoStage {
		fields = append(fields, zap.Int("stage", int(stage)), zap.Stringer("stage_name", stage))
	}
	if violation {
		c.log.Warn("audit", fields...)
	} else {
		c.log.Debug("audit", fields...)
	}
	return nil
}
