package rustedbrain

import (
	"bytes"
	"context"
	"io"
	"log"
	"time"

	cp "github.com/jinzhu/copier"

	bf "nickandperla.net/brainfuck"
)

// A Session owns one Machine and drives it step by step until the program
// ends, the machine faults, the instruction budget runs out, or the context
// is canceled. Each run is summarized as a RunRecord suitable for
// persistence.

type RunRecord struct {
	ID            uint
	Fingerprint   string
	Source        []byte `gorm:"type:blob"`
	Outcome       RunOutcome
	StepsExecuted uint
	DurationNanos int64
	OutputBytes   uint
	Fidelity      *byte
	MachineError  *string
	CreatedAt     time.Time
}

// SourceText decompresses the stored program source.
func (r *RunRecord) SourceText() (string, error) {
	source, err := unpackSource(r.Source)
	if err != nil {
		return "", err
	}
	return string(source), nil
}

type Session struct {
	Machine   *bf.Machine
	Config    *bf.MachineConfig
	Evaluator *Evaluator

	out    io.Writer
	output *countingWriter
}

// NewSession clones the shared MachineConfig so one ToolConfig can serve any
// number of concurrent sessions without aliasing.
func NewSession(shared *bf.MachineConfig, in io.Reader, out io.Writer) *Session {
	config := &bf.MachineConfig{}
	if shared != nil {
		cp.CopyWithOption(config, shared, cp.Option{DeepCopy: true})
	}

	machine := bf.NewMachine(config)
	machine.In = in

	return &Session{
		Machine: machine,
		Config:  config,
		out:     out,
	}
}

func (s *Session) Run(ctx context.Context, program *bf.Program) *RunRecord {
	record := &RunRecord{
		Fingerprint: Fingerprint(program),
		Source:      packSource([]byte(program.String())),
	}

	s.output = &countingWriter{sink: s.out}

	var captured bytes.Buffer
	if s.Evaluator != nil {
		s.Machine.Out = io.MultiWriter(s.output, &captured)
	} else {
		s.Machine.Out = s.output
	}

	s.Machine.LoadProgram(program)

	started := time.Now()
	outcome := RunCompleted
	var failure error

FOR:
	for {
		select {
		case <-ctx.Done():
			outcome = RunCanceled
			failure = ctx.Err()
			break FOR
		default:
		}

		result, err := s.Machine.Step()
		if err != nil {
			outcome = RunFaulted
			failure = err
			break FOR
		}
		if result.EndOfProgram {
			break FOR
		}

		max := s.Config.MaxInstructionExecutionCount
		if max != 0 && s.Machine.InstructionCount >= max {
			outcome = RunLimited
			failure = bf.ErrMaxInstructionExecutionCountReached
			break FOR
		}
	}

	record.DurationNanos = time.Since(started).Nanoseconds()
	record.StepsExecuted = s.Machine.InstructionCount
	record.OutputBytes = s.output.count
	record.Outcome = outcome

	if failure != nil {
		msg := failure.Error()
		record.MachineError = &msg
	}

	if s.Evaluator != nil {
		eval := s.Evaluator.Evaluate(captured.Bytes())
		record.Fidelity = &eval.Fidelity
	}

	if DEBUG {
		log.Printf("Session finished [%s] after [%d] steps", outcome, record.StepsExecuted)
	}

	return record
}

type countingWriter struct {
	sink  io.Writer
	count uint
}

func (w *countingWriter) Write(p []byte) (int, error) {
	n, err := w.sink.Write(p)
	w.count += uint(n)
	return n, err
}
