package task

import (
	"errors"
	"unsafe"

	"greenlet/arch"
)

// MaxTasks caps the number of live tasks per Processor.
const MaxTasks = 64

var (
	ErrNilEntry     = errors.New("task: nil entry function")
	ErrTooManyTasks = errors.New("task: too many live tasks")
)

// active is the processor currently inside Run. The trampoline has no
// arguments to receive, so it finds its task through here; all other state
// flows through explicit pointers.
var active *Processor

// Processor runs tasks one at a time on a single flow of control.
type Processor struct {
	lock spinlock

	// idle is the processor's own saved context. Run suspends into a task
	// through it, and every Yield and Exit resumes it.
	idle    arch.Context
	current *Task

	queue  runQueue
	ids    idAllocator
	stacks stackPool
	live   int
}

func New() *Processor {
	return &Processor{}
}

// Spawn creates a runnable task that will execute fn on its own stack. The
// entry must follow the task-stack discipline described in the package doc.
func (p *Processor) Spawn(name string, fn func()) (*Task, error) {
	if fn == nil {
		return nil, ErrNilEntry
	}
	p.lock.acquire()
	defer p.lock.release()

	if p.live >= MaxTasks {
		return nil, ErrTooManyTasks
	}
	t := &Task{
		id:    p.ids.alloc(),
		name:  name,
		entry: fn,
		stack: p.stacks.alloc(),
		state: Runnable,
	}
	t.ctx.Init(trampolinePC, stackTop(t.stack))
	p.queue.push(t)
	p.live++
	return t, nil
}

// Run drives tasks round-robin until the run queue is empty: pop a runnable
// task, switch into it, and when it yields or exits, take the next. Exited
// tasks are reaped here, on the processor's own context, after the switch
// away from their stack.
func (p *Processor) Run() {
	if active != nil && active != p {
		panic("task: Run on two processors at once")
	}
	active = p
	for {
		p.lock.acquire()
		t := p.queue.pop()
		if t == nil {
			p.lock.release()
			break
		}
		t.state = Running
		p.current = t
		p.lock.release()

		arch.Swtch(&p.idle, &t.ctx)

		p.current = nil
		if t.state == Zombie {
			p.reap(t)
		}
	}
	active = nil
}

// Yield suspends the calling task and resumes the processor, which will run
// it again after everything already queued. Calling Yield outside a task is
// a no-op.
//
//go:nosplit
func (p *Processor) Yield() {
	t := p.current
	if t == nil {
		return
	}
	p.lock.acquire()
	t.state = Runnable
	p.queue.push(t)
	p.lock.release()
	arch.Swtch(&t.ctx, &p.idle)
}

// Exit terminates the calling task and never returns. Its stack and id are
// recycled once the processor is back on its own context.
//
//go:nosplit
func (p *Processor) Exit() {
	t := p.current
	if t == nil {
		return
	}
	t.state = Zombie
	arch.Swtch(&t.ctx, &p.idle)
	panic("task: zombie resumed")
}

// Current reports the task now running, or nil between tasks.
//
//go:nosplit
func (p *Processor) Current() *Task { return p.current }

// Live reports how many tasks exist and have not been reaped.
func (p *Processor) Live() int {
	p.lock.acquire()
	defer p.lock.release()
	return p.live
}

func (p *Processor) reap(t *Task) {
	if !t.StackOK() {
		panic("task: stack overflow in " + t.name)
	}
	p.lock.acquire()
	p.stacks.release(t.stack)
	p.ids.release(t.id)
	t.stack = nil
	t.entry = nil
	t.state = Free
	p.live--
	p.lock.release()
}

// trampoline is the entry point every fresh context is seeded with. It runs
// on the task's own stack: first when the processor switches into a task
// that has never run, last when the task's entry returns.
//
//go:nosplit
func trampoline() {
	p := active
	t := p.current
	if t == nil || t.entry == nil {
		panic("task: bootstrap with no task")
	}
	t.entry()
	p.Exit()
}

// funcPC returns the entry address of fn's code.
func funcPC(fn func()) uintptr {
	return **(**uintptr)(unsafe.Pointer(&fn))
}

// EntryPC returns the code entry address of fn, for seeding an
// arch.Context directly. fn must follow the task-stack discipline and must
// never return.
func EntryPC(fn func()) uintptr {
	return funcPC(fn)
}

var trampolinePC = funcPC(trampoline)
