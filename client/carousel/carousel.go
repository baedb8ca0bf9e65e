// Package carousel models the project image viewer: one image at a time
// from an ordered list, advanced by controls, arrow keys or touch swipes,
// with the index wrapping at both ends.
package carousel

// SwipeThreshold is the horizontal distance in pixels a touch must travel
// before it counts as a swipe.
const SwipeThreshold = 40

type Carousel struct {
	count    int
	index    int
	open     bool
	touchX   float64
	touching bool
}

// Open shows the carousel over an image list of the given size, starting
// from the first image.
func (c *Carousel) Open(count int) {
	if count < 0 {
		count = 0
	}

	c.count = count
	c.index = 0
	c.open = true
}

func (c *Carousel) Close() {
	c.open = false
	c.touching = false
}

func (c *Carousel) IsOpen() bool { return c.open }

func (c *Carousel) Index() int { return c.index }

func (c *Carousel) Count() int { return c.count }

func (c *Carousel) Next() {
	if !c.open || c.count == 0 {
		return
	}

	c.index = (c.index + 1) % c.count
}

func (c *Carousel) Prev() {
	if !c.open || c.count == 0 {
		return
	}

	c.index = (c.index - 1 + c.count) % c.count
}

// Select jumps straight to an image, as the thumbnail strip does.
func (c *Carousel) Select(i int) {
	if !c.open || i < 0 || i >= c.count {
		return
	}

	c.index = i
}

// Key handles keyboard navigation using DOM key names.
func (c *Carousel) Key(key string) {
	if !c.open {
		return
	}

	switch key {
	case "ArrowRight":
		c.Next()
	case "ArrowLeft":
		c.Prev()
	case "Escape":
		c.Close()
	}
}

func (c *Carousel) TouchStart(x float64) {
	if !c.open {
		return
	}

	c.touchX = x
	c.touching = true
}

// TouchEnd completes a swipe: moving left past the threshold advances,
// moving right goes back, anything shorter is ignored.
func (c *Carousel) TouchEnd(x float64) {
	if !c.touching {
		return
	}

	dx := x - c.touchX
	c.touching = false

	if dx > SwipeThreshold {
		c.Prev()
	} else if dx < -SwipeThreshold {
		c.Next()
	}
}
