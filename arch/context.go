package arch

// Swtch stores the caller's return address, stack pointer, and callee-saved
// registers into *old, in field order, then loads the same set from *new and
// resumes at the loaded return address. The save half completes before the
// load half begins, so a task resumed through *old later sees exactly the
// state it had at this call.
//
// Swtch performs no validation and has no failure modes. Both pointers must
// refer to valid Context memory; *new must have been seeded by Init or
// written by an earlier Swtch.
//
//go:noescape
func Swtch(old, new *Context)

// Init seeds c so that the first switch into it transfers control to pc with
// the stack pointer equal to sp. All callee-saved slots start at zero. The
// code at pc must never return: there is no frame beneath it to return to.
func (c *Context) Init(pc, sp uintptr) {
	*c = Context{ra: pc, sp: sp}
}

// PC reports the saved resumption address.
func (c *Context) PC() uintptr { return c.ra }

// SP reports the saved stack pointer.
func (c *Context) SP() uintptr { return c.sp }
