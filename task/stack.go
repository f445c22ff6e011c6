package task

import "unsafe"

// StackWords is the fixed size of a task stack, in machine words.
const StackWords = 4096

// stackCanary sits at the low end of every task stack. A task that runs its
// stack down into the canary is caught when it is next reaped.
const stackCanary = uintptr(0x55aa55aa_feedface)

// stackPool reuses released task stacks through a free list.
type stackPool struct {
	free [][]uintptr
}

func (p *stackPool) alloc() []uintptr {
	var s []uintptr
	if n := len(p.free); n > 0 {
		s = p.free[n-1]
		p.free = p.free[:n-1]
	} else {
		s = make([]uintptr, StackWords)
	}
	s[0] = stackCanary
	return s
}

func (p *stackPool) release(s []uintptr) {
	p.free = append(p.free, s)
}

// stackTop returns the 16-byte aligned top of s, the initial stack pointer
// for a fresh task.
func stackTop(s []uintptr) uintptr {
	top := uintptr(unsafe.Pointer(&s[0])) + uintptr(len(s))*unsafe.Sizeof(uintptr(0))
	return top &^ 15
}

// NewStack returns a raw task-sized stack and its 16-byte aligned top, for
// callers that seed an arch.Context directly instead of going through
// Spawn. The caller must keep the slice reachable for as long as the
// context can run.
func NewStack() ([]uintptr, uintptr) {
	s := make([]uintptr, StackWords)
	return s, stackTop(s)
}

// StackOK reports whether the task's stack canary is intact.
func (t *Task) StackOK() bool {
	return t.stack != nil && t.stack[0] == stackCanary
}
