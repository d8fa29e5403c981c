package audit

import (
	"log"
	"sync"
)

const (
	ActionLoaded  = "slots_loaded"
	ActionEmpty   = "slots_empty"
	ActionFailed  = "slots_failed"
	ActionStale   = "slots_stale"
	ActionSkipped = "slots_skipped"
)

type Event struct {
	Action    string
	RequestID string
	BarberID  string
	Date      string
	Count     int
	Err       error
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.Action,
			ev.RequestID,
			ev.BarberID,
			ev.Date,
			ev.Count,
			ev.Err,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Dispatch never blocks; a full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}

// Close flushes queued events. Dispatch must not be called afterwards.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() { close(d.queue) })
	<-d.done
}
