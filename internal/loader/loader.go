// Package loader keeps the time selection control of the booking form in
// step with the selected barber and date.
package loader

import (
	"context"
	"log"
	"sync"

	"github.com/BruksfildServices01/barber-slot-loader/internal/audit"
	"github.com/BruksfildServices01/barber-slot-loader/internal/domain/slots"
	"github.com/BruksfildServices01/barber-slot-loader/internal/form"
	"github.com/BruksfildServices01/barber-slot-loader/internal/httperr"
	"github.com/BruksfildServices01/barber-slot-loader/internal/notice"
	"github.com/BruksfildServices01/barber-slot-loader/internal/requestid"
)

type Fetcher interface {
	Fetch(ctx context.Context, q slots.Query) ([]slots.Slot, error)
}

type Outcome string

const (
	Skipped Outcome = "skipped"
	Loaded  Outcome = "loaded"
	Empty   Outcome = "empty"
	Failed  Outcome = "failed"
	Stale   Outcome = "stale"
)

type Loader struct {
	fetcher  Fetcher
	barber   *form.Field
	date     *form.Field
	timeSel  *form.Select
	notifier notice.Notifier
	logger   *log.Logger
	audit    *audit.Dispatcher

	mu    sync.Mutex
	token uint64

	inflight sync.WaitGroup
}

type Option func(*Loader)

func WithLogger(l *log.Logger) Option {
	return func(ld *Loader) { ld.logger = l }
}

func WithAudit(d *audit.Dispatcher) Option {
	return func(ld *Loader) { ld.audit = d }
}

func New(
	fetcher Fetcher,
	barber *form.Field,
	date *form.Field,
	timeSel *form.Select,
	notifier notice.Notifier,
	opts ...Option,
) *Loader {
	l := &Loader{
		fetcher:  fetcher,
		barber:   barber,
		date:     date,
		timeSel:  timeSel,
		notifier: notifier,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FromForm wires a loader to the barber, date and time controls of f.
func FromForm(f *form.Form, fetcher Fetcher, notifier notice.Notifier, opts ...Option) (*Loader, error) {
	barber, err := f.Field(form.KeyBarber)
	if err != nil {
		return nil, err
	}
	date, err := f.Field(form.KeyDate)
	if err != nil {
		return nil, err
	}
	timeSel, err := f.Select(form.KeyTime)
	if err != nil {
		return nil, err
	}
	return New(fetcher, barber, date, timeSel, notifier, opts...), nil
}

// Bind subscribes to barber and date changes. Each change starts one
// refresh in the background.
func (l *Loader) Bind(ctx context.Context) {
	trigger := func(string) { l.Trigger(ctx) }
	l.barber.OnChange(trigger)
	l.date.OnChange(trigger)
}

func (l *Loader) Trigger(ctx context.Context) {
	l.inflight.Add(1)
	go func() {
		defer l.inflight.Done()
		l.Refresh(ctx)
	}()
}

// Wait blocks until every triggered refresh has finished.
func (l *Loader) Wait() {
	l.inflight.Wait()
}

// Refresh reloads the time control for the current barber and date.
// Failures are reported to the user and logged, never returned.
// Notices are sent under the loader lock so a superseded refresh can
// never notify after a newer one has filled the control.
func (l *Loader) Refresh(ctx context.Context) Outcome {
	q := slots.NewQuery(l.barber.Value(), l.date.Value())

	l.mu.Lock()
	l.token++
	token := l.token
	if !q.Ready() {
		l.timeSel.Reset()
		l.mu.Unlock()
		l.record(audit.Event{Action: audit.ActionSkipped, BarberID: q.BarberID, Date: q.Date})
		return Skipped
	}
	l.mu.Unlock()

	reqID := requestid.New()
	list, err := l.fetcher.Fetch(requestid.With(ctx, reqID), q)

	ev := audit.Event{RequestID: reqID, BarberID: q.BarberID, Date: q.Date, Count: len(list), Err: err}

	l.mu.Lock()
	defer l.mu.Unlock()

	if token != l.token {
		ev.Action = audit.ActionStale
		l.record(ev)
		return Stale
	}

	switch {
	case err != nil:
		l.timeSel.Reset()
		l.logger.Printf("slots: load failed for barber=%q date=%q request=%s: %v", q.BarberID, q.Date, reqID, err)
		l.notifier.Notify(notice.LoadFailed())
		ev.Action, ev.Count = audit.ActionFailed, 0
		l.record(ev)
		return Failed

	case len(list) == 0:
		l.timeSel.Reset()
		l.notifier.Notify(notice.NoSlots())
		ev.Action, ev.Err = audit.ActionEmpty, httperr.ErrBusiness(httperr.CodeNoSlots)
		l.record(ev)
		return Empty
	}

	l.timeSel.Replace(slots.Strings(list)...)
	ev.Action = audit.ActionLoaded
	l.record(ev)
	return Loaded
}

func (l *Loader) record(ev audit.Event) {
	if l.audit != nil {
		l.audit.Dispatch(ev)
	}
}
