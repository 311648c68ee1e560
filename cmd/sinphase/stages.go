package main

import (
	"context"
	"fmt"

	"github.com/ib-77/sinphase/pkg/sinphase"
)

// placeholderStage stands in for the real compiler stage: it passes its input
// through and appends a marker line naming the stage.
func placeholderStage(id sinphase.StageID) sinphase.Stage {
	return sinphase.StageFunc(func(ctx context.Context, input []byte) ([]byte, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out := make([]byte, 0, len(input)+64)
		out = append(out, input...)
		out = fmt.Appendf(out, "\n; stage %d (%s) output with zero trust validation", int(id), id)
		return out, nil
	})
}
