package rustedbrain

import (
	"fmt"
	"os"

	sm "github.com/xrash/smetrics"
)

// An evaluation of a finished run's output against a known-good expected
// output. The score is an edit-distance fidelity: 100 means the program
// emitted exactly the expected bytes, 0 means nothing matched at all.

type EvaluatorConfig struct {
	ExpectedPath string `toml:"expected_path"`
}

type Evaluation struct {
	Fidelity    byte
	Distance    int
	OutputLen   int
	ExpectedLen int
}

type Evaluator struct {
	Expected []byte
	Config   *EvaluatorConfig
}

func NewEvaluator(ec *EvaluatorConfig) (*Evaluator, error) {
	if ec == nil || len(ec.ExpectedPath) == 0 {
		return nil, fmt.Errorf("Expected output path must be defined")
	}

	expected, err := os.ReadFile(ec.ExpectedPath)
	if err != nil {
		return nil, fmt.Errorf("Failed to read expected output [%s]: %v", ec.ExpectedPath, err)
	}

	return &Evaluator{Expected: expected, Config: ec}, nil
}

func NewEvaluatorFromBytes(expected []byte) *Evaluator {
	return &Evaluator{Expected: expected}
}

func (e *Evaluator) Evaluate(output []byte) *Evaluation {
	// Insert/delete cost 1, substitute cost 2, so the worst case distance is
	// len(output) + len(expected) and fidelity lands on [0,100].
	distance := sm.WagnerFischer(string(output), string(e.Expected), 1, 1, 2)

	eval := &Evaluation{
		Distance:    distance,
		OutputLen:   len(output),
		ExpectedLen: len(e.Expected),
	}

	total := len(output) + len(e.Expected)
	if total == 0 {
		eval.Fidelity = 100
		return eval
	}

	score := 100 - (distance*100)/total
	if score < 0 {
		score = 0
	}
	eval.Fidelity = byte(score)
	return eval
}
