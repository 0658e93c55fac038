package brainfuck

import (
	"fmt"
)

var ErrReadAccessViolation error = fmt.Errorf("Read access violation")
var ErrWriteAccessViolation error = fmt.Errorf("Write access violation")

const DEFAULT_CELL_COUNT uint = 30000

type MemoryConfig struct {
	CellCount uint
}

// Memory is the fixed-length tape. The cell count never changes after
// construction. The pointer is free-running: it wraps modulo 2^64 on
// movement and is only checked against the tape when cell contents are
// actually read or written.
type Memory struct {
	Cells         []byte
	MemoryPointer uint64
}

func NewMemory(cellCount uint) *Memory {
	return &Memory{
		Cells:         make([]byte, cellCount),
		MemoryPointer: 0,
	}
}

func NewMemoryFromConfig(mc *MemoryConfig) *Memory {
	if mc == nil || mc.CellCount == 0 {
		return NewMemory(DEFAULT_CELL_COUNT)
	}
	return NewMemory(mc.CellCount)
}

func (m *Memory) Reset() {
	for i := 0; i < len(m.Cells); i++ {
		m.Cells[i] = 0
	}
	m.MemoryPointer = 0
}

func (m *Memory) InBounds(loc uint64) bool {
	return loc < uint64(len(m.Cells))
}

func (m *Memory) Read(loc uint64) (byte, error) {
	if !m.InBounds(loc) {
		return 0, ErrReadAccessViolation
	}
	return m.Cells[loc], nil
}

func (m *Memory) ReadAtPointer() (byte, error) {
	return m.Read(m.MemoryPointer)
}

func (m *Memory) Write(loc uint64, val byte) error {
	if !m.InBounds(loc) {
		return ErrWriteAccessViolation
	}
	m.Cells[loc] = val
	return nil
}

func (m *Memory) WriteAtPointer(val byte) error {
	return m.Write(m.MemoryPointer, val)
}

// IncrementAtPointer is a read-modify-write, so an out-of-bounds pointer is
// a write violation. Cell values wrap modulo 256.
func (m *Memory) IncrementAtPointer() (byte, error) {
	if !m.InBounds(m.MemoryPointer) {
		return 0, ErrWriteAccessViolation
	}
	m.Cells[m.MemoryPointer]++
	return m.Cells[m.MemoryPointer], nil
}

func (m *Memory) DecrementAtPointer() (byte, error) {
	if !m.InBounds(m.MemoryPointer) {
		return 0, ErrWriteAccessViolation
	}
	m.Cells[m.MemoryPointer]--
	return m.Cells[m.MemoryPointer], nil
}

// Pointer movement never fails. One move past either end leaves the pointer
// outside the tape, and the next content access reports the violation.
func (m *Memory) MovePointerLeft() {
	m.MemoryPointer--
}

func (m *Memory) MovePointerRight() {
	m.MemoryPointer++
}
