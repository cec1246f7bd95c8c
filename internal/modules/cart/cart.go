package cart

import "sync"

// Cart holds one session's unpurchased selections. Lines keep insertion
// order (order of first add). Reads return copies so callers never alias
// live state, and ItemCount/Total are derived from the lines on every call
// rather than cached alongside them.
type Cart struct {
	mu    sync.Mutex
	lines []*LineItem
}

// New returns an empty cart.
func New() *Cart { return &Cart{} }

// AddItem merges the candidate into the cart. An existing line with the same
// id gains quantity 1 and keeps its original name/price/image — the line's
// display data is authoritative, not the candidate's. Otherwise a new line
// is appended with quantity 1.
func (c *Cart) AddItem(cand Candidate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range c.lines {
		if l.ID == cand.ID {
			l.Quantity++
			return
		}
	}
	c.lines = append(c.lines, &LineItem{
		ID:       cand.ID,
		Name:     cand.Name,
		Price:    cand.Price,
		Image:    cand.Image,
		Quantity: 1,
	})
}

// UpdateQuantity sets the line's quantity. Zero or below removes the line
// entirely. Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(id string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if quantity <= 0 {
		c.remove(id)
		return
	}
	for _, l := range c.lines {
		if l.ID == id {
			l.Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line with the given id. Unknown ids are a no-op.
func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(id)
}

func (c *Cart) remove(id string) {
	for i, l := range c.lines {
		if l.ID == id {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}

// Items returns a copy of the lines in insertion order. Mutating the cart
// afterwards cannot reach the returned slice, which makes it safe to persist
// as an order snapshot.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]LineItem, len(c.lines))
	for i, l := range c.lines {
		out[i] = *l
	}
	return out
}

// ItemCount is the sum of all line quantities.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Total is the sum of price × quantity over all lines, rounded to cents.
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	var t float64
	for _, l := range c.lines {
		t += l.Price * float64(l.Quantity)
	}
	return round2(t)
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
