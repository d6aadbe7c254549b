package metrics

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultInterval is the polling period.
const DefaultInterval = 10 * time.Second

// Update reports the state of one fetch. Loading updates precede the result of the same fetch.
type Update struct {
	Kind    Kind
	Loading bool
	Points  []Point
	Err     error
}

// Sink receives updates. It is called from poller goroutines, one call at a time.
type Sink func(Update)

// Ticker is the subset of time.Ticker the poller needs.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct{ *time.Ticker }

func (t timeTicker) C() <-chan time.Time { return t.Ticker.C }

// Option configures a Poller.
type Option func(*Poller)

// WithInterval sets the polling period.
func WithInterval(interval time.Duration) Option {
	return func(p *Poller) {
		if interval > 0 {
			p.interval = interval
		}
	}
}

// WithTicker replaces how tickers are created.
func WithTicker(newTicker func(time.Duration) Ticker) Option {
	return func(p *Poller) {
		p.newTicker = newTicker
	}
}

// Poller fetches one metric kind immediately and then once per interval.
//
// At most one ticker is armed at a time. A result is delivered only while its kind is
// still selected and only if no newer result has been delivered.
type Poller struct {
	fetcher   Fetcher
	sink      Sink
	interval  time.Duration
	newTicker func(time.Duration) Ticker

	mu     sync.Mutex
	parent context.Context //nolint:containedctx // lifetime of the polling session
	kind   Kind
	cancel context.CancelFunc
	done   chan struct{}

	generation atomic.Uint64
	seq        atomic.Uint64
	armed      atomic.Int32

	deliverMu sync.Mutex
	delivered uint64
}

// NewPoller creates a stopped Poller.
func NewPoller(fetcher Fetcher, sink Sink, opts ...Option) *Poller {
	poller := &Poller{
		fetcher:  fetcher,
		sink:     sink,
		interval: DefaultInterval,
		newTicker: func(d time.Duration) Ticker {
			return timeTicker{time.NewTicker(d)}
		},
	}

	for _, opt := range opts {
		opt(poller)
	}

	return poller
}

// Start begins polling kind. Any previous session is stopped first.
func (p *Poller) Start(ctx context.Context, kind Kind) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.disarm()
	p.parent = ctx
	p.arm(kind)
}

// SetKind switches the polled kind. It is a no-op when kind is already selected
// or the poller is stopped.
func (p *Poller) SetKind(kind Kind) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel == nil || kind == p.kind {
		return
	}

	p.disarm()
	p.arm(kind)
}

// Stop cancels polling and in-flight fetches. It is safe to call repeatedly.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.disarm()
}

// Kind returns the selected kind.
func (p *Poller) Kind() Kind {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.kind
}

// Running reports whether a polling session is active.
func (p *Poller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.cancel != nil
}

// ActiveTimers returns the number of armed tickers.
func (p *Poller) ActiveTimers() int {
	return int(p.armed.Load())
}

// arm must be called with mu held.
func (p *Poller) arm(kind Kind) {
	ctx, cancel := context.WithCancel(p.parent)
	done := make(chan struct{})
	generation := p.generation.Add(1)

	p.kind = kind
	p.cancel = cancel
	p.done = done

	p.armed.Add(1)

	ticker := p.newTicker(p.interval)

	go p.loop(ctx, ticker, kind, generation, done)
}

// disarm must be called with mu held. It waits for the loop goroutine to exit;
// fetches still in flight are cancelled and their results dropped.
func (p *Poller) disarm() {
	if p.cancel == nil {
		return
	}

	p.generation.Add(1)
	p.cancel()
	<-p.done

	p.cancel = nil
	p.done = nil
}

func (p *Poller) loop(ctx context.Context, ticker Ticker, kind Kind, generation uint64, done chan struct{}) {
	defer close(done)
	defer p.armed.Add(-1)
	defer ticker.Stop()

	fetch := func() {
		go p.fetch(ctx, kind, generation, p.seq.Add(1))
	}

	fetch()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			fetch()
		}
	}
}

func (p *Poller) fetch(ctx context.Context, kind Kind, generation, seq uint64) {
	p.deliver(generation, seq, Update{Kind: kind, Loading: true})

	points, err := p.fetcher.Fetch(ctx, kind)
	if ctx.Err() != nil {
		return
	}

	if err != nil {
		p.deliver(generation, seq, Update{Kind: kind, Err: err})

		return
	}

	p.deliver(generation, seq, Update{Kind: kind, Points: points})
}

func (p *Poller) deliver(generation, seq uint64, update Update) {
	p.deliverMu.Lock()
	defer p.deliverMu.Unlock()

	if generation != p.generation.Load() {
		return
	}

	if seq < p.delivered {
		return
	}

	if !update.Loading {
		p.delivered = seq
	}

	p.sink(update)
}
