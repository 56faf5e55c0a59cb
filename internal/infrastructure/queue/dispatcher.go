package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/charcroft19/4hire3/internal/api/metrics"
	"github.com/charcroft19/4hire3/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

// Dispatcher routes notifications to a fixed set of workers using consistent
// hashing on the recipient id, guaranteeing per-user delivery ordering.
type Dispatcher struct {
	workers []chan ports.NotificationInput
	service ports.NotificationService
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.NotificationService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.NotificationInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.NotificationInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Publish sends a notification to the worker responsible for its recipient.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Publish(n ports.NotificationInput) {
	i := d.shardIndex(n.UserID)
	d.workers[i] <- n
	metrics.NotificationsQueueDepth.WithLabelValues(strconv.Itoa(i)).Set(float64(len(d.workers[i])))
}

// shardIndex maps a recipient id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.NotificationInput) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			metrics.NotificationsQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			if err := d.service.Deliver(ctx, n); err != nil {
				d.log.Error().Err(err).
					Str("user_id", n.UserID).
					Int("worker_id", id).
					Msg("notification delivery failed")
			}
		}
	}
}
