package arch

// Context is the saved register file of a suspended task on amd64: the
// return address, the stack pointer, and the System V callee-saved set
// minus R14, which the Go runtime reserves for the current goroutine and
// which must flow through a switch untouched.
type Context struct {
	ra uintptr
	sp uintptr

	// callee-saved
	rbx uintptr
	rbp uintptr
	r12 uintptr
	r13 uintptr
	r15 uintptr
}

const (
	// NumCalleeSaved is the number of callee-saved registers in a Context.
	NumCalleeSaved = 5
	// ContextWords is the total size of a Context in machine words.
	ContextWords = 2 + NumCalleeSaved
)

// Byte offsets of the Context fields. Part of the layout ABI; swtch_amd64.s
// and any context initializer depend on these exactly.
const (
	offRA  = 0
	offSP  = 8
	offRBX = 16
)
