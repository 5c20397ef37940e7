package logging

import (
	"fmt"
	"sync"
	"time"

	"github.com/isabella232/dotnet-do/console"
	"github.com/isabella232/dotnet-do/metrics"
)

// Provider is the process-wide registry of category loggers. All loggers it
// creates share one elapsed-time reference, so timestamps printed by
// different categories are comparable.
type Provider struct {
	filter     Filter
	newConsole func() console.Console
	recorder   *metrics.Recorder
	now        func() time.Time

	mu      sync.Mutex
	loggers map[string]*Logger
	start   time.Time
}

// Option configures a Provider.
type Option func(*Provider)

// WithConsole overrides the backend factory used for each new Logger. The
// default probes the host platform via console.New.
func WithConsole(factory func() console.Console) Option {
	return func(p *Provider) {
		p.newConsole = factory
	}
}

// WithMetrics attaches a recorder that counts rendered lines and finished
// activities.
func WithMetrics(recorder *metrics.Recorder) Option {
	return func(p *Provider) {
		p.recorder = recorder
	}
}

// NewProvider creates a Provider using filter for level decisions. A nil
// filter logs everything below LevelNone.
func NewProvider(filter Filter, opts ...Option) *Provider {
	if filter == nil {
		filter = func(_ string, level Level) bool {
			return level != LevelNone
		}
	}
	p := &Provider{
		filter:     filter,
		newConsole: console.New,
		now:        time.Now,
		loggers:    make(map[string]*Logger),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Logger returns the logger for a category, constructing it on first use.
// Concurrent calls with the same category observe exactly one construction;
// the backend is never instantiated twice for one category.
func (p *Provider) Logger(category string) *Logger {
	p.mu.Lock()
	defer p.mu.Unlock()

	if l, ok := p.loggers[category]; ok {
		return l
	}
	l := &Logger{
		category: category,
		filter:   p.filter,
		console:  p.newConsole(),
		offset:   p.TimeOffset,
		recorder: p.recorder,
	}
	p.loggers[category] = l
	return l
}

// TimeOffset returns the time elapsed since the provider was first asked
// for it. The first call captures the reference and returns zero; whichever
// caller gets there first wins, and every later call measures against that
// same reference. The wall clock is used, so the offset is monotonic in
// practice but not guaranteed against clock adjustment.
func (p *Provider) TimeOffset() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.start.IsZero() {
		p.start = p.now()
		return 0
	}
	return p.now().Sub(p.start)
}

// Close releases the provider. It is a no-op, present so callers that
// always release their providers can do so unconditionally.
func (p *Provider) Close() error {
	return nil
}

// formatOffset renders an elapsed duration as hh:mm:ss.ff, with hundredths
// of a second in the fraction.
func formatOffset(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	h := d / time.Hour
	m := (d / time.Minute) % 60
	s := (d / time.Second) % 60
	cs := (d / (10 * time.Millisecond)) % 100
	return fmt.Sprintf("%02d:%02d:%02d.%02d", h, m, s, cs)
}
