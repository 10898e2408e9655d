package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/propertymanager/landlord-api/internal/api/metrics"
	"github.com/propertymanager/landlord-api/internal/core/domain"
	"github.com/propertymanager/landlord-api/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher fans queued notifications out to a fixed set of workers using
// consistent hashing on the recipient address, guaranteeing per-recipient
// delivery ordering.
type Dispatcher struct {
	workers []chan domain.NotificationRequest
	gateway ports.Dispatcher
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, gateway ports.Dispatcher, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.NotificationRequest, numWorkers),
		gateway: gateway,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.NotificationRequest, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a notification to the worker responsible for its recipient.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(req domain.NotificationRequest) {
	idx := d.shardIndex(req.To)
	d.workers[idx] <- req
	metrics.ReminderQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
}

// shardIndex maps a recipient address deterministically to a worker index.
func (d *Dispatcher) shardIndex(to string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(to))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.NotificationRequest) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case req, ok := <-ch:
			if !ok {
				return
			}
			if _, err := d.gateway.Send(ctx, req); err != nil {
				d.log.Error().Err(err).
					Str("to", req.To).
					Str("channel", string(req.Channel)).
					Int("worker_id", id).
					Msg("queued notification failed")
			}
			metrics.ReminderQueueDepth.WithLabelValues(worker).Dec()
		}
	}
}
