package task

// runQueue is a FIFO of runnable tasks linked through Task.next. push and
// pop run on the switch path, so they are nosplit and allocation free.
type runQueue struct {
	head *Task
	tail *Task
}

//go:nosplit
func (q *runQueue) push(t *Task) {
	t.next = nil
	if q.tail == nil {
		q.head = t
	} else {
		q.tail.next = t
	}
	q.tail = t
}

//go:nosplit
func (q *runQueue) pop() *Task {
	t := q.head
	if t == nil {
		return nil
	}
	q.head = t.next
	if q.head == nil {
		q.tail = nil
	}
	t.next = nil
	return t
}

//go:nosplit
func (q *runQueue) empty() bool {
	return q.head == nil
}
