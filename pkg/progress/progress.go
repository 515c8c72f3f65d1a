package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Countdown renders a spinner with the time left until a deadline
type Countdown struct {
	mu         sync.Mutex
	writer     io.Writer
	frames     []string
	frameIndex int
	message    string
	deadline   time.Time
	interval   time.Duration
	now        func() time.Time
	running    bool
	stopChan   chan struct{}
	wg         sync.WaitGroup
}

// NewCountdown creates a countdown that ends after d. message is printed
// in front of the remaining time.
func NewCountdown(message string, d time.Duration) *Countdown {
	return &Countdown{
		writer:   os.Stderr,
		frames:   []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		message:  message,
		deadline: time.Now().Add(d),
		interval: 100 * time.Millisecond,
		now:      time.Now,
	}
}

// SetWriter sets a custom writer for the countdown
func (c *Countdown) SetWriter(w io.Writer) {
	c.writer = w
}

// Start starts the animation
func (c *Countdown) Start() {
	c.mu.Lock()
	if c.running {
		c.mu.Unlock()
		return
	}
	c.running = true
	c.stopChan = make(chan struct{})
	c.mu.Unlock()

	c.wg.Add(1)
	go c.animate()
}

// Stop stops the animation and erases the line
func (c *Countdown) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	c.running = false
	close(c.stopChan)
	c.mu.Unlock()

	c.wg.Wait()
	fmt.Fprint(c.writer, "\r\033[K")
}

// Remaining returns the time left, rounded up to whole seconds.
func (c *Countdown) Remaining() time.Duration {
	left := c.deadline.Sub(c.now())
	if left <= 0 {
		return 0
	}
	return left.Truncate(time.Second) + roundUp(left)
}

func roundUp(d time.Duration) time.Duration {
	if d%time.Second == 0 {
		return 0
	}
	return time.Second
}

func (c *Countdown) render() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	frame := c.frames[c.frameIndex%len(c.frames)]
	c.frameIndex++
	return fmt.Sprintf("\r%s %s %s", frame, c.message, c.Remaining())
}

func (c *Countdown) animate() {
	defer c.wg.Done()

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopChan:
			return
		case <-ticker.C:
			fmt.Fprint(c.writer, c.render())
		}
	}
}

// WithCountdown shows a countdown on w while fn runs.
func WithCountdown(w io.Writer, message string, d time.Duration, fn func() error) error {
	countdown := NewCountdown(message, d)
	countdown.SetWriter(w)
	countdown.Start()
	err := fn()
	countdown.Stop()
	return err
}
