// Package queue is the bounded, concurrency-safe holding area for PDOs
// awaiting a claim. Ordering is by required tier first (highest authority
// need surfaces first), then FIFO by admission sequence.
package queue

import (
	"container/heap"
	"sort"
	"sync"

	"github.com/ppiankov/occkernel/internal/model"
)

// Item is one queued PDO reference.
type Item struct {
	PdoID    string
	Tier     int
	Sequence uint64
}

// Queue is a bounded priority queue over PDO references. Emergency-tier
// admissions bypass capacity accounting (admission priority, not execution
// priority); everything else is rejected with QueueFullError at capacity,
// never silently dropped.
type Queue struct {
	mu            sync.RWMutex
	capacity      int
	emergencyTier int
	items         itemHeap
	index         map[string]*entry
	nextSequence  uint64
	removed       int
}

type entry struct {
	item    Item
	removed bool
}

// New creates a queue with the given capacity. Tiers at or above
// emergencyTier always admit.
func New(capacity, emergencyTier int) *Queue {
	return &Queue{
		capacity:      capacity,
		emergencyTier: emergencyTier,
		index:         make(map[string]*entry),
	}
}

// Admit assigns the next admission sequence to the PDO and inserts it.
// Non-emergency admissions at capacity fail with QueueFullError.
func (q *Queue) Admit(p *model.PDO) (uint64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.index) >= q.capacity && p.TierRequired < q.emergencyTier {
		return 0, &model.QueueFullError{Capacity: q.capacity}
	}

	q.nextSequence++
	e := &entry{item: Item{PdoID: p.ID, Tier: p.TierRequired, Sequence: q.nextSequence}}
	q.index[p.ID] = e
	heap.Push(&q.items, e)
	return q.nextSequence, nil
}

// Peek returns the highest-priority queued PDO without removing it.
func (q *Queue) Peek() (Item, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.compactLocked()
	if len(q.items) == 0 {
		return Item{}, false
	}
	return q.items[0].item, true
}

// Take removes a specific PDO after its claim succeeded. Returns false if
// the PDO is no longer queued.
func (q *Queue) Take(pdoID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.removeLocked(pdoID)
}

// Withdraw removes a pre-claim PDO at its originator's request. Returns
// false if the PDO is no longer queued.
func (q *Queue) Withdraw(pdoID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.removeLocked(pdoID)
}

// Len returns the number of queued PDOs.
func (q *Queue) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.index)
}

// List returns all queued items in priority order.
func (q *Queue) List() []Item {
	q.mu.RLock()
	defer q.mu.RUnlock()

	out := make([]Item, 0, len(q.index))
	for _, e := range q.items {
		if !e.removed {
			out = append(out, e.item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tier != out[j].Tier {
			return out[i].Tier > out[j].Tier
		}
		return out[i].Sequence < out[j].Sequence
	})
	return out
}

// compactThreshold caps how many removed entries may linger in the heap
// before a full rebuild.
const compactThreshold = 64

// removeLocked marks an entry removed. Removed entries below the root are
// skimmed off on Peek; once dead entries outnumber live ones past the
// threshold the heap is rebuilt so churn without peeks stays bounded.
func (q *Queue) removeLocked(pdoID string) bool {
	e, ok := q.index[pdoID]
	if !ok {
		return false
	}
	e.removed = true
	delete(q.index, pdoID)
	q.removed++
	if q.removed >= compactThreshold && q.removed > len(q.index) {
		q.rebuildLocked()
	}
	return true
}

func (q *Queue) compactLocked() {
	for len(q.items) > 0 && q.items[0].removed {
		heap.Pop(&q.items)
		q.removed--
	}
}

func (q *Queue) rebuildLocked() {
	live := make(itemHeap, 0, len(q.index))
	for _, e := range q.items {
		if !e.removed {
			live = append(live, e)
		}
	}
	q.items = live
	heap.Init(&q.items)
	q.removed = 0
}

type itemHeap []*entry

func (h itemHeap) Len() int { return len(h) }

// Less orders by tier descending, then admission sequence ascending.
func (h itemHeap) Less(i, j int) bool {
	if h[i].item.Tier != h[j].item.Tier {
		return h[i].item.Tier > h[j].item.Tier
	}
	return h[i].item.Sequence < h[j].item.Sequence
}

func (h itemHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *itemHeap) Push(x any) { *h = append(*h, x.(*entry)) }

func (h *itemHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return e
}
