package scheduler

// readyItem is one entry in the ready max-heap: a node whose in-degree
// has reached zero, keyed by work estimate with an insertion sequence
// as tie-break so pop order is deterministic (spec.md §9 suggestion,
// adopted rather than leaving ties arbitrary).
type readyItem struct {
	nodeID   int
	estimate int
	seq      int
}

// readyHeap implements container/heap.Interface as a max-heap over
// estimate, min-heap over seq for ties.
type readyHeap []*readyItem

func (h readyHeap) Len() int { return len(h) }

func (h readyHeap) Less(i, j int) bool {
	if h[i].estimate != h[j].estimate {
		return h[i].estimate > h[j].estimate
	}
	return h[i].seq < h[j].seq
}

func (h readyHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *readyHeap) Push(x any) {
	*h = append(*h, x.(*readyItem))
}

func (h *readyHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
