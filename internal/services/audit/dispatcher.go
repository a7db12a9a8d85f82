package audit

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/KirkDiggler/joingate/internal/common/clock"
	"github.com/sirupsen/logrus"
)

const (
	defaultQueueSize       = 100
	defaultDeliveryTimeout = 5 * time.Second
)

// Dispatcher records audit events to the log immediately and delivers them
// to a Sink in the background. Events recorded before Ready are held in a
// bounded backlog, oldest dropped first, and flushed in order once a sink is
// attached.
type Dispatcher struct {
	mu      sync.Mutex
	sink    Sink
	backlog []*Event
	closed  bool

	queueSize int
	timeout   time.Duration
	clock     clock.Clock
	log       logrus.FieldLogger

	ch        chan *Event
	done      chan struct{}
	wg        sync.WaitGroup
	dropped   atomic.Uint64
	closeOnce sync.Once
}

// New creates a dispatcher and starts its delivery worker
func New(cfg *Config) *Dispatcher {
	if cfg == nil {
		cfg = &Config{}
	}

	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	timeout := cfg.DeliveryTimeout
	if timeout <= 0 {
		timeout = defaultDeliveryTimeout
	}

	var clk clock.Clock = clock.System{}
	if cfg.Clock != nil {
		clk = cfg.Clock
	}

	var log logrus.FieldLogger = logrus.StandardLogger()
	if cfg.Logger != nil {
		log = cfg.Logger
	}

	d := &Dispatcher{
		queueSize: queueSize,
		timeout:   timeout,
		clock:     clk,
		log:       log,
		ch:        make(chan *Event, queueSize),
		done:      make(chan struct{}),
	}

	d.wg.Add(1)
	go d.run()

	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for {
		select {
		case event := <-d.ch:
			d.deliver(event)
		case <-d.done:
			for {
				select {
				case event := <-d.ch:
					d.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (d *Dispatcher) deliver(event *Event) {
	d.mu.Lock()
	sink := d.sink
	d.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := sink.Deliver(ctx, event); err != nil {
		d.log.WithFields(logrus.Fields{
			"event_type": event.Type,
			"target":     event.TargetUserID,
		}).WithError(err).Warn("audit delivery failed")
	}
}

// Record logs the event and queues it for delivery
func (d *Dispatcher) Record(_ context.Context, event *Event) {
	if event == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = d.clock.Now()
	}

	d.log.WithFields(logrus.Fields{
		"audit":      true,
		"event_type": event.Type,
		"target":     event.TargetUserID,
		"actor":      event.ActorID,
		"reason":     event.Reason,
	}).Info("audit event")

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	if d.sink == nil {
		if len(d.backlog) >= d.queueSize {
			d.backlog = d.backlog[1:]
			d.dropped.Add(1)
		}
		d.backlog = append(d.backlog, event)
		return
	}

	d.enqueue(event)
}

// enqueue must be called with mu held
func (d *Dispatcher) enqueue(event *Event) {
	select {
	case d.ch <- event:
	default:
		d.dropped.Add(1)
	}
}

// Ready attaches the sink and flushes the backlog. Only the first call has
// an effect.
func (d *Dispatcher) Ready(sink Sink) {
	if sink == nil {
		sink = Discard{}
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.sink != nil || d.closed {
		return
	}
	d.sink = sink

	for _, event := range d.backlog {
		d.enqueue(event)
	}
	d.backlog = nil
}

// Pending returns the number of events waiting for a sink
func (d *Dispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.backlog)
}

// Dropped returns how many events were discarded because a queue was full
func (d *Dispatcher) Dropped() uint64 {
	return d.dropped.Load()
}

// Close stops accepting events and waits for queued deliveries. Events still
// in the backlog because no sink was attached are discarded.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		d.mu.Unlock()

		close(d.done)
		d.wg.Wait()
	})
}
