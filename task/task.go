// Package task provides the cooperative tasking layer around arch.Swtch:
// task control blocks, stack and id pooling, a FIFO run queue, and the
// processor loop that drives it all.
//
// Everything between a task body and the switch itself runs on a fixed-size
// task stack the Go runtime knows nothing about. That whole path is nosplit
// and allocation free, and task bodies must keep to the same discipline:
// no stack growth, no allocation, and any value reachable only from a task
// stack is invisible to the garbage collector.
package task

import "greenlet/arch"

// State is the scheduling state of a task.
type State int

const (
	Free State = iota
	Runnable
	Running
	Zombie
)

func (s State) String() string {
	switch s {
	case Free:
		return "free"
	case Runnable:
		return "runnable"
	case Running:
		return "running"
	case Zombie:
		return "zombie"
	}
	return "unknown"
}

// Task is the control block of one cooperative task. It owns its Context
// exclusively: the processor writes it when the task suspends and reads it
// when the task resumes, nothing else touches it.
type Task struct {
	id    int
	name  string
	state State
	stack []uintptr
	ctx   arch.Context
	entry func()

	// run queue link
	next *Task
}

// ID reports the task's id. Ids are recycled once a task is reaped.
func (t *Task) ID() int { return t.id }

// Name reports the name given at Spawn.
func (t *Task) Name() string { return t.name }

// State reports the current scheduling state.
func (t *Task) State() State { return t.state }
