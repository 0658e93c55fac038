package brainfuck

// The OPs for Brainfuck. The alphabet is closed: exactly eight symbols carry
// meaning, and every other byte in a source file is commentary that the
// loader strips before execution.

type OP byte

const (
	OP_POINTER_LEFT  = OP('<')
	OP_POINTER_RIGHT = OP('>')
	OP_INC           = OP('+')
	OP_DEC           = OP('-')
	OP_OUT           = OP('.')
	OP_IN            = OP(',')
	OP_WHILE         = OP('[')
	OP_WHILE_END     = OP(']')
)

var OP_SET [8]OP = [...]OP{
	OP_POINTER_LEFT,
	OP_POINTER_RIGHT,
	OP_INC,
	OP_DEC,
	OP_OUT,
	OP_IN,
	OP_WHILE,
	OP_WHILE_END,
}

func IsValidOP(bchar byte) bool {
	switch OP(bchar) {
	case OP_POINTER_LEFT, OP_POINTER_RIGHT, OP_INC, OP_DEC,
		OP_OUT, OP_IN, OP_WHILE, OP_WHILE_END:
		return true
	}
	return false
}
