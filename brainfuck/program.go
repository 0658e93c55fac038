package brainfuck

import (
	"fmt"
)

var ErrLoopEndWithoutBeginning error = fmt.Errorf("Loop end without matching beginning")
var ErrLoopBeginningWithoutEnd error = fmt.Errorf("Loop beginning without matching end")

// A Program is the loader's output: the source filtered down to the eight
// recognized OPs, plus the loop link table resolved ahead of execution.
// LoopLinks is bidirectional: LoopLinks[LoopLinks[i]] == i for every bracket
// index i, and no entry exists for any other instruction. A Program never
// mutates after construction, so it can be shared by any number of Machines.
type Program struct {
	Ops       []OP
	LoopLinks map[int]int
}

func NewProgram(source []byte) (*Program, error) {
	ops := make([]OP, 0, len(source))
	for _, bchar := range source {
		if IsValidOP(bchar) {
			ops = append(ops, OP(bchar))
		}
	}

	links := make(map[int]int)
	var pending []int
	for i, op := range ops {
		switch op {
		case OP_WHILE:
			pending = append(pending, i)
		case OP_WHILE_END:
			if len(pending) == 0 {
				return nil, ErrLoopEndWithoutBeginning
			}
			beginning := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			links[beginning] = i
			links[i] = beginning
		}
	}

	if len(pending) > 0 {
		return nil, ErrLoopBeginningWithoutEnd
	}

	return &Program{Ops: ops, LoopLinks: links}, nil
}

func (p *Program) Len() int {
	return len(p.Ops)
}

// String renders the filtered instruction sequence with none of the
// commentary from the original source.
func (p *Program) String() string {
	buf := make([]byte, len(p.Ops))
	for i, op := range p.Ops {
		buf[i] = byte(op)
	}
	return string(buf)
}
