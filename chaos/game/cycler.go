package game

const (
	left  = -1
	right = 1
)

// Cycler tracks whose turn it is: a seat pointer walking a ring of seats in
// the current direction.
type Cycler struct {
	size      int
	current   int
	direction int
}

func NewCycler(size int) *Cycler {
	return &Cycler{size: size, direction: right}
}

func (c *Cycler) Current() int {
	return c.current
}

func (c *Cycler) Direction() int {
	return c.direction
}

func (c *Cycler) Next() int {
	c.current = (c.current + c.direction + c.size) % c.size
	return c.current
}

func (c *Cycler) Reverse() {
	switch c.direction {
	case right:
		c.direction = left
	case left:
		c.direction = right
	}
}

// MoveTo points the turn at a seat directly; jump-ins hijack the order this
// way.
func (c *Cycler) MoveTo(seat int) {
	if 0 <= seat && seat < c.size {
		c.current = seat
	}
}
