package rustedbrain

import (
	"bytes"
	"context"
	"testing"

	bf "nickandperla.net/brainfuck"
)

func MakeSession(out *bytes.Buffer, maxSteps uint) *Session {
	return NewSession(&bf.MachineConfig{
		MaxInstructionExecutionCount: maxSteps,
		MemoryConfig:                 &bf.MemoryConfig{CellCount: 10},
	}, bytes.NewReader(nil), out)
}

func TestSessionCompletedRun(t *testing.T) {
	program, err := bf.NewProgram([]byte("+++."))
	if err != nil {
		t.Fatalf("Unexpected failure loading program. %v", err)
	}

	out := &bytes.Buffer{}
	session := MakeSession(out, 0)
	record := session.Run(context.Background(), program)

	if record.Outcome != RunCompleted {
		t.Errorf("Outcome [%s] doesn't match expected [completed]. Machine error: %v", record.Outcome, record.MachineError)
	}

	if record.StepsExecuted != 4 {
		t.Errorf("StepsExecuted [%d] doesn't match expected [4]", record.StepsExecuted)
	}

	if record.OutputBytes != 1 {
		t.Errorf("OutputBytes [%d] doesn't match expected [1]", record.OutputBytes)
	}

	if !bytes.Equal(out.Bytes(), []byte{3}) {
		t.Errorf("Output bytes [%v] don't match expected [[3]]", out.Bytes())
	}

	if record.MachineError != nil {
		t.Errorf("MachineError [%s] on a completed run", *record.MachineError)
	}

	if record.Fingerprint == "" {
		t.Errorf("Fingerprint is empty on a completed run")
	}

	if source, err := record.SourceText(); err != nil {
		t.Errorf("Unexpected failure calling SourceText. %v", err)
	} else if source != "+++." {
		t.Errorf("SourceText [%s] doesn't match program [+++.]", source)
	}
}

func TestSessionFaultedRun(t *testing.T) {
	program, err := bf.NewProgram([]byte("<+"))
	if err != nil {
		t.Fatalf("Unexpected failure loading program. %v", err)
	}

	session := MakeSession(&bytes.Buffer{}, 0)
	record := session.Run(context.Background(), program)

	if record.Outcome != RunFaulted {
		t.Errorf("Outcome [%s] doesn't match expected [faulted]", record.Outcome)
	}

	if record.MachineError == nil {
		t.Fatalf("MachineError is nil on a faulted run")
	}

	if *record.MachineError != "Write access violation" {
		t.Errorf("MachineError string doesn't match: %s", *record.MachineError)
	}

	if record.StepsExecuted != 1 {
		t.Errorf("StepsExecuted [%d] doesn't match expected [1]", record.StepsExecuted)
	}
}

func TestSessionLimitedRun(t *testing.T) {
	program, err := bf.NewProgram([]byte("+[]"))
	if err != nil {
		t.Fatalf("Unexpected failure loading program. %v", err)
	}

	session := MakeSession(&bytes.Buffer{}, 50)
	record := session.Run(context.Background(), program)

	if record.Outcome != RunLimited {
		t.Errorf("Outcome [%s] doesn't match expected [limited]", record.Outcome)
	}

	if record.StepsExecuted != 50 {
		t.Errorf("StepsExecuted [%d] doesn't match budget [50]", record.StepsExecuted)
	}
}

func TestSessionCanceledRun(t *testing.T) {
	program, err := bf.NewProgram([]byte("+[]"))
	if err != nil {
		t.Fatalf("Unexpected failure loading program. %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session := MakeSession(&bytes.Buffer{}, 0)
	record := session.Run(ctx, program)

	if record.Outcome != RunCanceled {
		t.Errorf("Outcome [%s] doesn't match expected [canceled]", record.Outcome)
	}

	if record.StepsExecuted != 0 {
		t.Errorf("StepsExecuted [%d] on a canceled-before-start run, expected [0]", record.StepsExecuted)
	}
}

func TestSessionEvaluatesOutput(t *testing.T) {
	program, err := bf.NewProgram([]byte("+++."))
	if err != nil {
		t.Fatalf("Unexpected failure loading program. %v", err)
	}

	out := &bytes.Buffer{}
	session := MakeSession(out, 0)
	session.Evaluator = NewEvaluatorFromBytes([]byte{3})

	record := session.Run(context.Background(), program)

	if record.Fidelity == nil {
		t.Fatalf("Fidelity is nil on an evaluated run")
	}

	if *record.Fidelity != 100 {
		t.Errorf("Fidelity [%d] doesn't match expected [100]", *record.Fidelity)
	}

	// Evaluation tees output, it must not swallow it.
	if !bytes.Equal(out.Bytes(), []byte{3}) {
		t.Errorf("Output bytes [%v] don't match expected [[3]]", out.Bytes())
	}
}

func TestSessionClonesSharedConfig(t *testing.T) {
	shared := &bf.MachineConfig{
		MaxInstructionExecutionCount: 7,
		MemoryConfig:                 &bf.MemoryConfig{CellCount: 10},
	}

	session := NewSession(shared, bytes.NewReader(nil), &bytes.Buffer{})
	session.Config.MaxInstructionExecutionCount = 99
	session.Config.MemoryConfig.CellCount = 1

	if shared.MaxInstructionExecutionCount != 7 {
		t.Errorf("Mutating a session config changed the shared budget to [%d]", shared.MaxInstructionExecutionCount)
	}

	if shared.MemoryConfig.CellCount != 10 {
		t.Errorf("Mutating a session config changed the shared cell count to [%d]", shared.MemoryConfig.CellCount)
	}
}
