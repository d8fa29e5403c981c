package audit

import (
	"encoding/json"
	"io"
	"sync"
	"time"
)

// Record is one line of the diagnostics trail.
type Record struct {
	At        time.Time `json:"at"`
	Action    string    `json:"action"`
	RequestID string    `json:"request_id,omitempty"`
	BarberID  string    `json:"barber_id,omitempty"`
	Date      string    `json:"date,omitempty"`
	Count     int       `json:"count"`
	Error     string    `json:"error,omitempty"`
}

type Logger struct {
	mu  sync.Mutex
	enc *json.Encoder
	now func() time.Time
}

func New(w io.Writer) *Logger {
	return &Logger{
		enc: json.NewEncoder(w),
		now: time.Now,
	}
}

func (l *Logger) Log(
	action string,
	requestID string,
	barberID string,
	date string,
	count int,
	cause error,
) error {

	rec := Record{
		At:        l.now().UTC(),
		Action:    action,
		RequestID: requestID,
		BarberID:  barberID,
		Date:      date,
		Count:     count,
	}
	if cause != nil {
		rec.Error = cause.Error()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enc.Encode(rec)
}
