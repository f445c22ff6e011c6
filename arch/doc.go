// Package arch holds the saved execution state of a suspended task and the
// switch primitive that moves the CPU from one such state to another.
//
// A Context is a fixed-layout record of machine words: the return address at
// word 0, the stack pointer at word 1, and the architecture's callee-saved
// registers after that in a fixed order. The layout is an ABI. Code that
// seeds a fresh Context (a task allocator) and the Swtch routine must agree
// on every offset; the per-architecture offset constants and layout tests
// pin it down.
//
// A Context is owned by exactly one task. It is written when that task
// suspends, read when it resumes, and seeded once by Init before the first
// switch into it. Nothing here checks any of that: passing an uninitialized
// or aliased Context to Swtch corrupts register state with no diagnostics,
// the same as handing the hardware a bad address.
//
// Swtch never returns in the usual sense. The call completes only when some
// other task later switches back into the saved context, at which point
// execution resumes at the call site with all callee-saved registers and the
// stack pointer exactly as they were. Callers must treat every Swtch call as
// a yield point: arbitrary other tasks run in between.
//
// Switching a context to itself is a no-op: the record is written and then
// read back unchanged, and control returns to the caller immediately.
//
// Supported architectures: amd64, arm64, riscv64.
package arch
