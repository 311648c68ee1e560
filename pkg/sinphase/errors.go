package sinphase

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	InvalidArgument ErrorKind = iota + 1
	SignatureMismatch
	UnvalidatedStage
	OutOfOrderExecution
	MissingImplementation
	ChainIncomplete
	BufferFull
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case SignatureMismatch:
		return "signature mismatch"
	case UnvalidatedStage:
		return "unvalidated stage"
	case OutOfOrderExecution:
		return "out of order execution"
	case MissingImplementation:
		return "missing implementation"
	case ChainIncomplete:
		return "chain incomplete"
	case BufferFull:
		return "audit buffer full"
	default:
		return fmt.Sprintf("error kind %d", int(k))
	}
}

// Error is returned by every engine operation that fails. Two errors match
// under errors.Is when their kinds are equal, so callers compare against the
// Err* sentinels.
type Error struct {
	Kind   ErrorKind
	Stage  StageID
	Detail string
}

func (e *Error) Error() string {
	msg := "sinphase: " + e.Kind.String()
	if e.Stage != NoStage {
		msg += fmt.Sprintf(" (stage %d %s)", int(e.Stage), e.Stage)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrInvalidArgument       = &Error{Kind: InvalidArgument, Stage: NoStage}
	ErrSignatureMismatch     = &Error{Kind: SignatureMismatch, Stage: NoStage}
	ErrUnvalidatedStage      = &Error{Kind: UnvalidatedStage, Stage: NoStage}
	ErrOutOfOrderExecution   = &Error{Kind: OutOfOrderExecution, Stage: NoStage}
	ErrMissingImplementation = &Error{Kind: MissingImplementation, Stage: NoStage}
	ErrChainIncomplete       = &Error{Kind: ChainIncomplete, Stage: NoStage}
	ErrBufferFull            = &Error{Kind: BufferFull, Stage: NoStage}
)

func newError(kind ErrorKind, stage StageID, detail string) *Error {
	return &Error{Kind: kind, Stage: stage, Detail: detail}
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
