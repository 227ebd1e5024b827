package reconciling

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/radiology-workload-api/internal/domain"
)

// countingBuilder conta as reconstruções e devolve um livro com uma linha por chamada
type countingBuilder struct {
	calls atomic.Int32
	delay time.Duration
}

func (b *countingBuilder) Build(ctx context.Context) *Snapshot {
	n := b.calls.Add(1)
	if b.delay > 0 {
		time.Sleep(b.delay)
	}
	return &Snapshot{
		Ledger: domain.NewLedger([]domain.WorkloadEntry{{BusinessDate: day(10), RoutineCTPatients: int(n)}}),
	}
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestCache(builder LedgerBuilder, ttl time.Duration) (*LedgerCache, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)}
	cache := NewLedgerCache(builder, ttl, nil)
	cache.now = clock.Now
	return cache, clock
}

func TestLedgerCache_GetOrRebuild(t *testing.T) {
	tests := []struct {
		name       string
		run        func(cache *LedgerCache, clock *fakeClock) *Snapshot
		wantBuilds int32
		wantState  CacheState
	}{
		{
			name: "Segunda leitura dentro do TTL usa o cache",
			run: func(cache *LedgerCache, clock *fakeClock) *Snapshot {
				cache.GetOrRebuild(context.Background())
				clock.Advance(23 * time.Hour)
				return cache.GetOrRebuild(context.Background())
			},
			wantBuilds: 1,
			wantState:  CacheStateFresh,
		},
		{
			name: "Leitura após o TTL reconstrói",
			run: func(cache *LedgerCache, clock *fakeClock) *Snapshot {
				cache.GetOrRebuild(context.Background())
				clock.Advance(24 * time.Hour)
				return cache.GetOrRebuild(context.Background())
			},
			wantBuilds: 2,
			wantState:  CacheStateFresh,
		},
		{
			name: "Invalidação força reconstrução mesmo dentro do TTL",
			run: func(cache *LedgerCache, clock *fakeClock) *Snapshot {
				cache.GetOrRebuild(context.Background())
				cache.Invalidate()
				return cache.GetOrRebuild(context.Background())
			},
			wantBuilds: 2,
			wantState:  CacheStateFresh,
		},
		{
			name: "Refresh reconstrói na hora",
			run: func(cache *LedgerCache, clock *fakeClock) *Snapshot {
				cache.GetOrRebuild(context.Background())
				return cache.Refresh(context.Background())
			},
			wantBuilds: 2,
			wantState:  CacheStateFresh,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			builder := &countingBuilder{}
			cache, clock := newTestCache(builder, 24*time.Hour)

			snapshot := tt.run(cache, clock)

			require.NotNil(t, snapshot)
			assert.Equal(t, tt.wantBuilds, builder.calls.Load())
			assert.Equal(t, tt.wantState, cache.State())

			entry, ok := snapshot.Ledger.Get(day(10))
			require.True(t, ok)
			assert.Equal(t, int(tt.wantBuilds), entry.RoutineCTPatients)
		})
	}
}

func TestLedgerCache_State(t *testing.T) {
	cache, clock := newTestCache(&countingBuilder{}, time.Hour)

	assert.Equal(t, CacheStateEmpty, cache.State())
	assert.Nil(t, cache.Peek())

	cache.GetOrRebuild(context.Background())
	assert.Equal(t, CacheStateFresh, cache.State())

	clock.Advance(time.Hour)
	assert.Equal(t, CacheStateStale, cache.State())
	assert.NotNil(t, cache.Peek())

	cache.Invalidate()
	assert.Equal(t, CacheStateInvalidated, cache.State())
}

func TestLedgerCache_ConcurrentReadersShareOneBuild(t *testing.T) {
	builder := &countingBuilder{delay: 50 * time.Millisecond}
	cache, _ := newTestCache(builder, time.Hour)

	var wg sync.WaitGroup
	snapshots := make([]*Snapshot, 20)
	for i := range snapshots {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			snapshots[i] = cache.GetOrRebuild(context.Background())
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), builder.calls.Load())
	for _, snapshot := range snapshots {
		assert.Same(t, snapshots[0], snapshot)
	}
}

func TestLedgerCache_OlderVersionIsNotStored(t *testing.T) {
	cache, _ := newTestCache(&countingBuilder{}, time.Hour)

	newer := &Snapshot{Version: 2, ExpiresAt: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}
	cache.store(newer)
	cache.store(&Snapshot{Version: 1})

	assert.Same(t, newer, cache.Peek())
}

func TestLedgerCache_NilBuildBecomesEmptyLedger(t *testing.T) {
	cache, _ := newTestCache(nilBuilder{}, time.Hour)

	snapshot := cache.GetOrRebuild(context.Background())

	require.NotNil(t, snapshot)
	assert.True(t, snapshot.Ledger.IsEmpty())
}

type nilBuilder struct{}

func (nilBuilder) Build(context.Context) *Snapshot { return nil }
