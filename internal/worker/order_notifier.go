package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/allmart/backoffice/internal/adapter/notify"
	"github.com/allmart/backoffice/internal/domain/model"
)

// OrderSource exposes the subset of application functionality required by the notifier.
type OrderSource interface {
	UnnotifiedOrders(ctx context.Context, limit int) ([]model.Order, error)
	MarkOrderNotified(ctx context.Context, id string) error
}

// OrderNotifier announces newly placed orders through a Sender, at least
// once. Orders that fail to deliver are retried on the next poll.
type OrderNotifier struct {
	source       OrderSource
	sender       notify.Sender
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewOrderNotifier constructs the notification worker pool.
func NewOrderNotifier(source OrderSource, sender notify.Sender, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *OrderNotifier {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &OrderNotifier{
		source:       source,
		sender:       sender,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (n *OrderNotifier) Start(ctx context.Context) {
	n.mu.Lock()
	defer n.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	n.cancel = cancel

	for i := 0; i < n.workers; i++ {
		n.wg.Add(1)
		go n.worker(runCtx)
	}

	n.wg.Add(1)
	go n.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (n *OrderNotifier) Stop() {
	n.mu.Lock()
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	n.mu.Unlock()

	n.wg.Wait()
}

func (n *OrderNotifier) dispatch(ctx context.Context) {
	defer n.wg.Done()
	defer close(n.jobs)
	ticker := time.NewTicker(n.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n.fetchAndDispatch(ctx)
		}
	}
}

func (n *OrderNotifier) fetchAndDispatch(ctx context.Context) {
	orders, err := n.source.UnnotifiedOrders(ctx, n.batchSize)
	if err != nil {
		n.logger.Error("fetch orders for notification failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case n.jobs <- order:
		}
	}
}

func (n *OrderNotifier) worker(ctx context.Context) {
	defer n.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-n.jobs:
			if !ok {
				return
			}
			n.handleOrder(ctx, order)
		}
	}
}

func (n *OrderNotifier) handleOrder(ctx context.Context, order model.Order) {
	if err := n.sender.Send(ctx, order); err != nil {
		var tooMany notify.TooManyRequestsError
		if errors.As(err, &tooMany) {
			n.logger.Warn("webhook rate limited", slog.Duration("retry_after", tooMany.RetryAfter))
			time.Sleep(tooMany.RetryAfter)
			return
		}
		n.logger.Error("order notification failed",
			slog.String("order", order.ID), slog.String("error", err.Error()))
		return
	}

	if err := n.source.MarkOrderNotified(ctx, order.ID); err != nil {
		n.logger.Error("mark order notified failed",
			slog.String("order", order.ID), slog.String("error", err.Error()))
	}
}
