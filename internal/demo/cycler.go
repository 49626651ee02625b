package demo

import (
	"context"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"pixelmask.klederson.com/internal/masking"
)

// Phrases shown in demo mode.
var Phrases = []string{
	"HELLO, WORLD!",
	"PIXEL MASK",
	"0123456789",
	"GO + TEA",
	"NOISE",
	"WAVE @ 50HZ",
	"BLOCK BY BLOCK",
	"STATIC & DYNAMIC",
	"?!",
}

// ChangeMsg asks the app to show Text with Algorithm.
type ChangeMsg struct {
	Text      string
	Algorithm masking.Algorithm
}

// Sender is the part of tea.Program the cycler needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Cycler walks through Phrases and algorithms on a timer.
type Cycler struct {
	program  Sender
	interval time.Duration
	order    []int
	step     int
	cancel   context.CancelFunc
}

// NewCycler creates a cycler visiting the phrases in a random order.
func NewCycler(interval time.Duration) *Cycler {
	return &Cycler{
		interval: interval,
		order:    rand.Perm(len(Phrases)),
	}
}

// Start begins cycling. Changes are sent through p.
func (c *Cycler) Start(p Sender) error {
	c.program = p

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	go c.loop(ctx)
	return nil
}

func (c *Cycler) loop(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if c.program != nil {
				c.program.Send(c.Next())
			}
		}
	}
}

// Next advances the cycle and returns the change to apply. Every full pass
// over the phrases moves on to the next algorithm.
func (c *Cycler) Next() ChangeMsg {
	c.step++
	phrase := Phrases[c.order[c.step%len(c.order)]]
	algs := masking.Algorithms()
	alg := algs[(c.step/len(c.order))%len(algs)]
	return ChangeMsg{Text: phrase, Algorithm: alg}
}

// Stop halts the cycler.
func (c *Cycler) Stop() {
	if c.cancel != nil {
		c.cancel()
	}
}
