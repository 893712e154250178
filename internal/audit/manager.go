package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Manager batches audit entries by size or timeout and drains the batches
// through a worker pool to the producer. Recording never blocks the request
// path longer than the input channel takes to accept.
type Manager struct {
	workerCount int
	batchSize   int
	timeout     time.Duration
	producer    Producer
	logger      *zap.Logger

	inputChan  chan Entry
	batchChan  chan []Entry
	shutdownCh chan struct{}
	once       sync.Once

	wg sync.WaitGroup
}

func NewManager(workerCount, batchSize int, timeout time.Duration, producer Producer, logger *zap.Logger) *Manager {
	return &Manager{
		workerCount: workerCount,
		batchSize:   batchSize,
		timeout:     timeout,
		producer:    producer,
		logger:      logger,
		inputChan:   make(chan Entry, workerCount*batchSize*2),
		batchChan:   make(chan []Entry, workerCount*2),
		shutdownCh:  make(chan struct{}),
	}
}

func (m *Manager) Start(ctx context.Context) {
	m.wg.Add(1)
	go m.runAggregator(ctx)

	for i := 0; i < m.workerCount; i++ {
		m.wg.Add(1)
		go m.runWorker(ctx, i)
	}
}

// Record enqueues an entry. When the pipeline cannot accept it, the entry is
// sent synchronously so no action goes unaudited.
func (m *Manager) Record(ctx context.Context, entry Entry) {
	select {
	case m.inputChan <- entry:
	case <-ctx.Done():
		m.emergencySend(entry)
	case <-m.shutdownCh:
		m.emergencySend(entry)
	}
}

func (m *Manager) Shutdown(ctx context.Context) {
	m.once.Do(func() {
		m.logger.Info("shutting down audit manager")
		close(m.shutdownCh)

		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			m.logger.Info("audit manager shutdown completed")
		case <-ctx.Done():
			m.logger.Warn("audit manager shutdown interrupted")
		}

		if err := m.producer.Close(); err != nil {
			m.logger.Error("failed to close audit producer", zap.Error(err))
		}
	})
}

func (m *Manager) runAggregator(ctx context.Context) {
	defer m.wg.Done()

	var (
		batch    []Entry
		timer    *time.Timer
		timeoutC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
		if len(batch) > 0 {
			m.dispatchBatch(batch)
		}
		close(m.batchChan)
	}()

	for {
		select {
		case entry := <-m.inputChan:
			batch = append(batch, entry)
			if len(batch) >= m.batchSize {
				m.dispatchBatch(batch)
				batch = nil
				timeoutC = nil
			} else if len(batch) == 1 {
				timer = time.NewTimer(m.timeout)
				timeoutC = timer.C
			}

		case <-timeoutC:
			m.dispatchBatch(batch)
			batch = nil
			timeoutC = nil

		case <-ctx.Done():
			return

		case <-m.shutdownCh:
			return
		}
	}
}

func (m *Manager) dispatchBatch(batch []Entry) {
	batchCopy := make([]Entry, len(batch))
	copy(batchCopy, batch)

	select {
	case m.batchChan <- batchCopy:
	default:
		// workers saturated, send directly rather than dropping
		m.sendBatch(batchCopy)
	}
}

func (m *Manager) runWorker(ctx context.Context, id int) {
	defer m.wg.Done()

	for {
		select {
		case batch, ok := <-m.batchChan:
			if !ok {
				return
			}
			m.sendBatch(batch)
		case <-ctx.Done():
			// drain whatever is already queued before exiting
			for {
				select {
				case batch, ok := <-m.batchChan:
					if !ok {
						return
					}
					m.sendBatch(batch)
				default:
					return
				}
			}
		}
	}
}

func (m *Manager) sendBatch(batch []Entry) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := m.producer.Send(ctx, batch); err != nil {
		m.logger.Error("failed to send audit batch", zap.Int("entries", len(batch)), zap.Error(err))
	}
}

func (m *Manager) emergencySend(entry Entry) {
	m.sendBatch([]Entry{entry})
}
