package batch

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/sinphase/pkg/sinphase"
	"github.com/ib-77/sinphase/pkg/sinphase/signature"
)

// TestSourceUnitsEndToEnd drives a mixed set of units through validating
// stages and checks that only well-formed units come out certified.
func TestSourceUnitsEndToEnd(t *testing.T) {
	sources := []string{
		"let a = 1;",
		"let b = 2;",
		"fn main() { return 0; }",
		"let c = a + b;",
		"let d = ((1);",
		"",
		"let e = 3",
		"fn f() { return 1; }",
	}

	units := make([]Unit, len(sources))
	for i, src := range sources {
		units[i] = Unit{Name: fmt.Sprintf("unit-%d", i), Input: []byte(src)}
	}

	reports := NewRunner(checkingFactory, nil).Run(WithWorkerOptions(context.Background(), 3), units...)

	validCount := 0
	invalidCount := 0
	for _, rep := range reports {
		if rep.OK() && rep.Certified {
			validCount++
		} else {
			invalidCount++
		}
	}

	assert.Equal(t, len(sources), len(reports))
	assert.Equal(t, 5, validCount)
	assert.Equal(t, 3, invalidCount)

	assert.Equal(t, "tokenization", reports[5].Step)
	assert.Equal(t, "parsing", reports[4].Step)
	assert.Equal(t, "semantic", reports[6].Step)
}

func checkingFactory(_ context.Context, _ Unit) (*sinphase.Context, error) {
	pc, err := sinphase.New(sinphase.Comprehensive)
	if err != nil {
		return nil, err
	}
	for _, id := range sinphase.Stages() {
		if err := pc.RegisterStage(id, checkingStage(id), signature.Placeholder().Sign(int(id))); err != nil {
			pc.Close()
			return nil, err
		}
	}
	return pc, nil
}

func checkingStage(id sinphase.StageID) sinphase.Stage {
	return sinphase.StageFunc(func(_ context.Context, in []byte) ([]byte, error) {
		src := string(in)
		switch id {
		case sinphase.Tokenization:
			if strings.TrimSpace(src) == "" {
				return nil, fmt.Errorf("empty unit")
			}
		case sinphase.Parsing:
			if strings.Count(src, "(") != strings.Count(src, ")") {
				return nil, fmt.Errorf("unbalanced parentheses")
			}
		case sinphase.Semantic:
			if !strings.HasSuffix(strings.TrimSpace(src), ";") && !strings.HasSuffix(strings.TrimSpace(src), "}") {
				return nil, fmt.Errorf("missing terminator")
			}
		}
		return in, nil
	})
}
