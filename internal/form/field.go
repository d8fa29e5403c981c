package form

import "sync"

// ChangeFunc receives the new committed value of a control.
type ChangeFunc func(value string)

type Control interface {
	Key() string
	Value() string
	OnChange(fn ChangeFunc)
}

// Field is a single-valued input such as the barber selector or the date picker.
type Field struct {
	key string

	mu        sync.RWMutex
	value     string
	listeners []ChangeFunc
}

func NewField(key string) *Field {
	return &Field{key: key}
}

func (f *Field) Key() string { return f.key }

func (f *Field) Value() string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

// SetValue commits v and notifies subscribers when it differs from the
// current value. Subscribers run on the caller's goroutine.
func (f *Field) SetValue(v string) {
	f.mu.Lock()
	if f.value == v {
		f.mu.Unlock()
		return
	}
	f.value = v
	listeners := append([]ChangeFunc(nil), f.listeners...)
	f.mu.Unlock()

	for _, fn := range listeners {
		fn(v)
	}
}

func (f *Field) OnChange(fn ChangeFunc) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, fn)
}
