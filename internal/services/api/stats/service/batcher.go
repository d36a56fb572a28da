package service

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"careerpath/internal/platform/logger"
	"careerpath/internal/services/api/stats/domain"
)

// ErrQueueFull is returned by Batcher.Record when the event was dropped
var ErrQueueFull = errors.New("stats: record queue full")

// BatchOptions tune a Batcher; zero values take the defaults
type BatchOptions struct {
	Size         int           // flush once this many events are buffered
	Every        time.Duration // flush at least this often
	Queue        int           // pending events before Record drops
	FlushTimeout time.Duration // per insert
}

func (o BatchOptions) withDefaults() BatchOptions {
	if o.Size <= 0 {
		o.Size = 256
	}
	if o.Every <= 0 {
		o.Every = 2 * time.Second
	}
	if o.Queue <= 0 {
		o.Queue = 4096
	}
	if o.FlushTimeout <= 0 {
		o.FlushTimeout = 5 * time.Second
	}
	return o
}

// Batcher is a Recorder that never blocks the caller; Run owns the writes
type Batcher struct {
	svc     *Svc
	opt     BatchOptions
	ch      chan domain.AnalysisEvent
	dropped atomic.Int64
}

// NewBatcher queues events for svc
func NewBatcher(svc *Svc, opt BatchOptions) *Batcher {
	if svc == nil {
		panic("stats.Batcher requires a non nil Svc")
	}
	opt = opt.withDefaults()
	return &Batcher{svc: svc, opt: opt, ch: make(chan domain.AnalysisEvent, opt.Queue)}
}

// Record stamps ev and enqueues it; a full queue drops the event
func (b *Batcher) Record(_ context.Context, ev domain.AnalysisEvent) error {
	if ev.At.IsZero() {
		ev.At = b.svc.now()
	}
	select {
	case b.ch <- ev:
		return nil
	default:
		b.dropped.Add(1)
		return ErrQueueFull
	}
}

// Dropped reports how many events Record has discarded
func (b *Batcher) Dropped() int64 { return b.dropped.Load() }

// Run flushes queued events until ctx ends, then drains what is left
func (b *Batcher) Run(ctx context.Context) error {
	log := logger.Named("stats")
	t := time.NewTicker(b.opt.Every)
	defer t.Stop()

	buf := make([]domain.AnalysisEvent, 0, b.opt.Size)
	flush := func() {
		if len(buf) == 0 {
			return
		}
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), b.opt.FlushTimeout)
		err := b.svc.RecordBatch(fctx, buf)
		cancel()
		if err != nil {
			log.Warn().Err(err).Int("events", len(buf)).Msg("flush analytics")
		}
		buf = buf[:0]
	}

	for {
		select {
		case ev := <-b.ch:
			buf = append(buf, ev)
			if len(buf) >= b.opt.Size {
				flush()
			}
		case <-t.C:
			flush()
		case <-ctx.Done():
			for {
				select {
				case ev := <-b.ch:
					buf = append(buf, ev)
				default:
					flush()
					return nil
				}
			}
		}
	}
}
