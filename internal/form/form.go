package form

import (
	"fmt"
	"sync"

	"github.com/BruksfildServices01/barber-slot-loader/internal/httperr"
)

const (
	KeyBarber = "barber"
	KeyDate   = "date"
	KeyTime   = "time"
)

// Form looks controls up by their stable key.
type Form struct {
	mu       sync.RWMutex
	controls map[string]Control
}

func New() *Form {
	return &Form{controls: map[string]Control{}}
}

// NewBooking builds the booking form with the barber, date and time controls.
func NewBooking() *Form {
	f := New()
	f.Register(NewField(KeyBarber))
	f.Register(NewField(KeyDate))
	f.Register(NewSelect(KeyTime))
	return f
}

func (f *Form) Register(c Control) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.controls[c.Key()] = c
}

func (f *Form) Lookup(key string) (Control, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	c, ok := f.controls[key]
	if !ok {
		return nil, fmt.Errorf("control %q: %w", key, httperr.ErrBusiness(httperr.CodeControlNotFound))
	}
	return c, nil
}

func (f *Form) Field(key string) (*Field, error) {
	c, err := f.Lookup(key)
	if err != nil {
		return nil, err
	}
	field, ok := c.(*Field)
	if !ok {
		return nil, fmt.Errorf("control %q is %T, not a field", key, c)
	}
	return field, nil
}

func (f *Form) Select(key string) (*Select, error) {
	c, err := f.Lookup(key)
	if err != nil {
		return nil, err
	}
	sel, ok := c.(*Select)
	if !ok {
		return nil, fmt.Errorf("control %q is %T, not a select", key, c)
	}
	return sel, nil
}
