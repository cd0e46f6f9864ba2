package audit

import (
	"sync"

	"github.com/rs/zerolog/log"
)

type Event struct {
	ActorID  *string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Writer persists a single audit event.
type Writer interface {
	Log(ev Event) error
}

type Dispatcher struct {
	writer Writer
	queue  chan Event
	done   chan struct{}
	once   sync.Once
}

func NewDispatcher(writer Writer) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.writer.Log(ev); err != nil {
			log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

// Dispatch never blocks the caller; events are dropped when the queue is full.
// A nil dispatcher discards everything.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close drains pending events and stops the worker.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.once.Do(func() {
		close(d.queue)
		<-d.done
	})
}
