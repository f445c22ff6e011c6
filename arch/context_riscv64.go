package arch

// Context is the saved register file of a suspended task on riscv64:
// the return address, the stack pointer, and the twelve callee-saved
// registers of the standard calling convention, 14 words in all.
//
// gp and tp are not part of the record; a trap layer that disturbs them
// must preserve them itself. The s11 slot exists for layout stability
// only: s11 is X27, reserved by this port for the current goroutine, and
// Swtch passes the live register through untouched.
type Context struct {
	ra uintptr
	sp uintptr

	// callee-saved
	s0  uintptr
	s1  uintptr
	s2  uintptr
	s3  uintptr
	s4  uintptr
	s5  uintptr
	s6  uintptr
	s7  uintptr
	s8  uintptr
	s9  uintptr
	s10 uintptr
	s11 uintptr // slot only; the live register is the g register
}

const (
	// NumCalleeSaved is the number of callee-saved registers in a Context.
	NumCalleeSaved = 12
	// ContextWords is the total size of a Context in machine words.
	ContextWords = 2 + NumCalleeSaved
)

// Byte offsets of the Context fields. Part of the layout ABI; swtch_riscv64.s
// and any context initializer depend on these exactly.
const (
	offRA = 0
	offSP = 8
	offS0 = 16
)
