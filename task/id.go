package task

// idAllocator hands out task ids, reusing released ones before minting new
// numbers.
type idAllocator struct {
	next     int
	recycled []int
}

func (a *idAllocator) alloc() int {
	if n := len(a.recycled); n > 0 {
		id := a.recycled[n-1]
		a.recycled = a.recycled[:n-1]
		return id
	}
	id := a.next
	a.next++
	return id
}

func (a *idAllocator) release(id int) {
	if id >= a.next {
		panic("task: releasing an id that was never allocated")
	}
	for _, r := range a.recycled {
		if r == id {
			panic("task: double release of id")
		}
	}
	a.recycled = append(a.recycled, id)
}
