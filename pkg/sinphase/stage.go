package sinphase

import (
	"context"
	"fmt"
)

// StageID identifies one phase of the compilation pipeline.
type StageID int

const (
	Tokenization StageID = iota
	Parsing
	Semantic
	Validation
	Bytecode
	Verification
	Emission

	// StageCount is the number of stages in a full chain.
	StageCount = int(Emission) + 1
)

// NoStage marks errors that are not tied to a stage.
const NoStage StageID = -1

var stageNames = [StageCount]string{
	"tokenization",
	"parsing",
	"semantic",
	"validation",
	"bytecode",
	"verification",
	"emission",
}

func (id StageID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("stage(%d)", int(id))
	}
	return stageNames[id]
}

func (id StageID) Valid() bool {
	return id >= 0 && int(id) < StageCount
}

// Stages returns every stage id in execution order.
func Stages() []StageID {
	ids := make([]StageID, StageCount)
	for i := range ids {
		ids[i] = StageID(i)
	}
	return ids
}

// Stage is an opaque stage implementation. The engine never looks inside
// it; it only hands it the input and returns what it produced.
type Stage interface {
	Execute(ctx context.Context, input []byte) ([]byte, error)
}

// StageFunc adapts a function to Stage.
type StageFunc func(ctx context.Context, input []byte) ([]byte, error)

func (f StageFunc) Execute(ctx context.Context, input []byte) ([]byte, error) {
	return f(ctx, input)
}
