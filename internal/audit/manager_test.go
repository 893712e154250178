package audit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type collectingProducer struct {
	mu      sync.Mutex
	batches [][]Entry
	closed  bool
}

func (p *collectingProducer) Send(_ context.Context, entries []Entry) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	batch := make([]Entry, len(entries))
	copy(batch, entries)
	p.batches = append(p.batches, batch)
	return nil
}

func (p *collectingProducer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	return nil
}

func (p *collectingProducer) total() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.batches {
		n += len(b)
	}
	return n
}

func TestBatchDispatchBySize(t *testing.T) {
	producer := &collectingProducer{}
	manager := NewManager(1, 2, time.Hour, producer, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	manager.Start(ctx)

	for i := 0; i < 4; i++ {
		manager.Record(ctx, Entry{ID: "e", Action: "approve_owner"})
	}

	require.Eventually(t, func() bool { return producer.total() == 4 }, time.Second, 5*time.Millisecond)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()
	manager.Shutdown(shutdownCtx)
	assert.True(t, producer.closed)
}

func TestBatchDispatchByTimeout(t *testing.T) {
	producer := &collectingProducer{}
	manager := NewManager(1, 100, 20*time.Millisecond, producer, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	manager.Start(ctx)

	manager.Record(ctx, Entry{ID: "only", Action: "delete_owner"})

	require.Eventually(t, func() bool { return producer.total() == 1 }, time.Second, 5*time.Millisecond)
}

func TestShutdownFlushesPendingBatch(t *testing.T) {
	producer := &collectingProducer{}
	manager := NewManager(2, 100, time.Hour, producer, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	manager.Start(ctx)

	for i := 0; i < 3; i++ {
		manager.Record(ctx, Entry{ID: "pending"})
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()
	manager.Shutdown(shutdownCtx)

	assert.Equal(t, 3, producer.total())
}
