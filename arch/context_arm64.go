package arch

// Context is the saved register file of a suspended task on arm64: the
// return address, the stack pointer, and the AAPCS64 callee-saved set minus
// x27 (the assembler scratch register) and x28, which the Go runtime
// reserves for the current goroutine; both must flow through a switch
// untouched. The frame pointer x29 is saved last.
type Context struct {
	ra uintptr
	sp uintptr

	// callee-saved
	x19 uintptr
	x20 uintptr
	x21 uintptr
	x22 uintptr
	x23 uintptr
	x24 uintptr
	x25 uintptr
	x26 uintptr
	fp  uintptr
}

const (
	// NumCalleeSaved is the number of callee-saved registers in a Context.
	NumCalleeSaved = 9
	// ContextWords is the total size of a Context in machine words.
	ContextWords = 2 + NumCalleeSaved
)

// Byte offsets of the Context fields. Part of the layout ABI; swtch_arm64.s
// and any context initializer depend on these exactly.
const (
	offRA  = 0
	offSP  = 8
	offX19 = 16
)
