package worldmapgen

// queueEntry is a single entry in the priority queue.
type queueEntry struct {
	index int     // index of the item in the heap
	score float64 // priority of the item in the queue
	dest  int     // destination triangle
}

// ascPriorityQueue implements heap.Interface with ascending priority
// (lowest score first). Ties break on the triangle index so traversal
// order is stable across runs with the same seed.
type ascPriorityQueue []*queueEntry

func (pq ascPriorityQueue) Len() int { return len(pq) }

func (pq ascPriorityQueue) Less(i, j int) bool {
	if pq[i].score == pq[j].score {
		return pq[i].dest < pq[j].dest
	}
	return pq[i].score < pq[j].score
}

func (pq *ascPriorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil  // avoid memory leak
	item.index = -1 // for safety
	*pq = old[0 : n-1]
	return item
}

func (pq *ascPriorityQueue) Push(x interface{}) {
	n := len(*pq)
	item := x.(*queueEntry)
	item.index = n
	*pq = append(*pq, item)
}

func (pq ascPriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index, pq[j].index = i, j
}
