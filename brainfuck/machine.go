package brainfuck

import (
	"fmt"
	"io"
	"os"
)

var ErrMaxInstructionExecutionCountReached error = fmt.Errorf("Instruction execution count limit reached")
var ErrInputFailed error = fmt.Errorf("Failed to read byte from input source")

type MachineConfig struct {
	// MaxInstructionExecutionCount caps Run. Zero means unlimited. Step
	// itself never enforces it; a caller driving Step directly owns any
	// budget it wants.
	MaxInstructionExecutionCount uint
	MemoryConfig                 *MemoryConfig
}

type Machine struct {
	Program *Program
	// PC wraps modulo 2^64, same as the memory pointer. PC at or past the
	// instruction count is end of program, which is the sole termination
	// condition. There is no halt OP.
	PC               uint64
	Memory           *Memory
	In               io.Reader
	Out              io.Writer
	Config           *MachineConfig
	InstructionCount uint
}

type StepResult struct {
	PC           uint64
	EndOfProgram bool
}

func NewMachine(mc *MachineConfig) *Machine {
	if mc == nil {
		mc = &MachineConfig{}
	}
	return &Machine{
		Memory: NewMemoryFromConfig(mc.MemoryConfig),
		Config: mc,
		In:     os.Stdin,
		Out:    os.Stdout,
	}
}

func (m *Machine) LoadProgram(p *Program) {
	m.Program = p
	m.Reset()
}

func (m *Machine) Reset() {
	m.PC = 0
	m.InstructionCount = 0
	m.Memory.Reset()
}

// Step executes the instruction under PC and commits the next PC value. The
// returned StepResult reports either the index that just ran or end of
// program. On error nothing is committed and the Machine must not be stepped
// again.
func (m *Machine) Step() (StepResult, error) {
	if m.Program == nil || m.PC >= uint64(len(m.Program.Ops)) {
		return StepResult{EndOfProgram: true}, nil
	}

	pc := m.PC
	nextPC := m.PC + 1

	switch m.Program.Ops[pc] {
	case OP_POINTER_RIGHT:
		m.Memory.MovePointerRight()
	case OP_POINTER_LEFT:
		m.Memory.MovePointerLeft()
	case OP_INC:
		if _, err := m.Memory.IncrementAtPointer(); err != nil {
			return StepResult{}, err
		}
	case OP_DEC:
		if _, err := m.Memory.DecrementAtPointer(); err != nil {
			return StepResult{}, err
		}
	case OP_OUT:
		val, err := m.Memory.ReadAtPointer()
		if err != nil {
			return StepResult{}, err
		}
		if _, err := m.Out.Write([]byte{val}); err != nil {
			return StepResult{}, fmt.Errorf("Failed to write byte to output sink: %v", err)
		}
	case OP_IN:
		var buf [1]byte
		if _, err := io.ReadFull(m.In, buf[:]); err != nil {
			return StepResult{}, fmt.Errorf("%w: %v", ErrInputFailed, err)
		}
		if err := m.Memory.WriteAtPointer(buf[0]); err != nil {
			return StepResult{}, err
		}
	case OP_WHILE:
		val, err := m.Memory.ReadAtPointer()
		if err != nil {
			return StepResult{}, err
		}
		if val == 0 {
			nextPC = uint64(m.Program.LoopLinks[int(pc)]) + 1
		}
	case OP_WHILE_END:
		val, err := m.Memory.ReadAtPointer()
		if err != nil {
			return StepResult{}, err
		}
		if val != 0 {
			nextPC = uint64(m.Program.LoopLinks[int(pc)]) + 1
		}
	default:
		// Unreachable for any Program built by NewProgram.
		return StepResult{}, fmt.Errorf("Unknown OP [%c] at PC [%d]", byte(m.Program.Ops[pc]), pc)
	}

	m.PC = nextPC
	m.InstructionCount = m.InstructionCount + 1
	return StepResult{PC: pc}, nil
}

// Run steps the loaded program to completion. It is a convenience driver
// around Step; callers that want per-step control call Step themselves.
func (m *Machine) Run() (bool, error) {
	for {
		result, err := m.Step()
		if err != nil {
			return false, err
		}
		if result.EndOfProgram {
			return true, nil
		}
		max := m.Config.MaxInstructionExecutionCount
		if max != 0 && m.InstructionCount >= max {
			return false, ErrMaxInstructionExecutionCountReached
		}
	}
}
