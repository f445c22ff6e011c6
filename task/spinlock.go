package task

import "sync/atomic"

// spinlock guards the processor's shared state. Spinning is fine here: hold
// times are a handful of pointer writes, and the lock must be usable from
// the nosplit switch path, which rules out sync.Mutex.
type spinlock struct {
	locked uint32
}

//go:nosplit
func (l *spinlock) acquire() {
	for !atomic.CompareAndSwapUint32(&l.locked, 0, 1) {
	}
}

//go:nosplit
func (l *spinlock) release() {
	atomic.StoreUint32(&l.locked, 0)
}
