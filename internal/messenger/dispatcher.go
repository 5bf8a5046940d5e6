package messenger

import (
	"context"
	"log/slog"
	"time"

	"github.com/panjf2000/ants/v2"
)

// Pusher is the channel client used by the dispatcher.
type Pusher interface {
	Configured() bool
	Push(ctx context.Context, text string) error
}

// Dispatcher runs channel pushes on a bounded worker pool, detached from the
// request that produced the answer.
type Dispatcher struct {
	client  Pusher
	pool    *ants.Pool
	timeout time.Duration
	logger  *slog.Logger
}

func NewDispatcher(client Pusher, workers int, timeout time.Duration) (*Dispatcher, error) {
	if workers < 1 {
		workers = 1
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	return &Dispatcher{
		client:  client,
		pool:    pool,
		timeout: timeout,
		logger:  slog.Default().With("component", "messenger"),
	}, nil
}

// Configured reports whether the underlying channel client can push.
func (d *Dispatcher) Configured() bool {
	return d.client.Configured()
}

// Dispatch schedules a fire-and-forget push. Errors are logged, never
// returned; a full pool drops the push rather than blocking the caller.
func (d *Dispatcher) Dispatch(text string) {
	err := d.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.client.Push(ctx, text); err != nil {
			d.logger.Error("channel push failed", "err", err)
			return
		}
		d.logger.Debug("answer pushed to channel")
	})
	if err != nil {
		d.logger.Error("channel push not scheduled", "err", err)
	}
}

// Release shuts the worker pool down.
func (d *Dispatcher) Release() {
	d.pool.Release()
}
