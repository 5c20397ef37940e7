package logging

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isabella232/dotnet-do/console"
)

func TestProviderLoggerGetOrCreate(t *testing.T) {
	var constructed int
	p := NewProvider(nil, WithConsole(func() console.Console {
		constructed++
		return &fakeConsole{}
	}))

	build := p.Logger("BUILD")
	task := p.Logger("TASK")
	again := p.Logger("BUILD")

	assert.Same(t, build, again)
	assert.NotSame(t, build, task)
	// One backend per distinct category, never more.
	assert.Equal(t, 2, constructed)
}

func TestProviderLoggerConcurrent(t *testing.T) {
	var mu sync.Mutex
	constructed := 0
	p := NewProvider(nil, WithConsole(func() console.Console {
		mu.Lock()
		constructed++
		mu.Unlock()
		return &fakeConsole{}
	}))

	const workers = 32
	results := make([]*Logger, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = p.Logger("BUILD")
		}(i)
	}
	wg.Wait()

	for _, l := range results {
		assert.Same(t, results[0], l)
	}
	assert.Equal(t, 1, constructed)
}

func TestTimeOffsetFirstCallIsZero(t *testing.T) {
	p := NewProvider(nil)
	assert.Equal(t, time.Duration(0), p.TimeOffset())
}

func TestTimeOffsetNonDecreasing(t *testing.T) {
	p := NewProvider(nil)
	first := p.TimeOffset()
	second := p.TimeOffset()
	third := p.TimeOffset()

	assert.GreaterOrEqual(t, second, first)
	assert.GreaterOrEqual(t, third, second)
}

func TestTimeOffsetSharedReference(t *testing.T) {
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	current := base
	p := NewProvider(nil)
	p.now = func() time.Time { return current }

	require.Equal(t, time.Duration(0), p.TimeOffset())

	current = base.Add(1500 * time.Millisecond)
	assert.Equal(t, 1500*time.Millisecond, p.TimeOffset())

	current = base.Add(2 * time.Hour)
	assert.Equal(t, 2*time.Hour, p.TimeOffset())
}

func TestTimeOffsetConcurrentFirstAccess(t *testing.T) {
	p := NewProvider(nil)

	const workers = 16
	offsets := make([]time.Duration, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			offsets[i] = p.TimeOffset()
		}(i)
	}
	wg.Wait()

	// Exactly one caller observes zero; the rest measure against the same
	// reference and stay tiny.
	for _, off := range offsets {
		assert.GreaterOrEqual(t, off, time.Duration(0))
		assert.Less(t, off, time.Minute)
	}
}

func TestProviderClose(t *testing.T) {
	p := NewProvider(nil)
	assert.NoError(t, p.Close())
	// Close is a no-op; the provider keeps working.
	assert.NotNil(t, p.Logger("BUILD"))
}
