package layout

// Queue is an ordered sequence of blocks consumed from the front.
type Queue struct {
	items []Block
}

// NewQueue returns a queue holding a copy of blocks.
func NewQueue(blocks []Block) *Queue {
	return &Queue{items: append([]Block(nil), blocks...)}
}

// Len returns the number of queued blocks.
func (q *Queue) Len() int { return len(q.items) }

// Peek returns the head without removing it.
func (q *Queue) Peek() (Block, bool) {
	if len(q.items) == 0 {
		return nil, false
	}
	return q.items[0], true
}

// Pop removes and returns the head.
func (q *Queue) Pop() (Block, bool) {
	b, ok := q.Peek()
	if ok {
		q.items[0] = nil
		q.items = q.items[1:]
	}
	return b, ok
}

// PushFront puts b back at the head.
func (q *Queue) PushFront(b Block) {
	q.items = append([]Block{b}, q.items...)
}
