package form

import (
	"fmt"
	"sync"

	"github.com/BruksfildServices01/barber-slot-loader/internal/httperr"
)

const PlaceholderLabel = "Select a time"

type Option struct {
	Value string
	Label string
}

// Select is the time selection control. The placeholder option (empty
// value) is always first and is never removed.
type Select struct {
	key         string
	placeholder Option

	mu        sync.RWMutex
	options   []Option
	selected  string
	listeners []ChangeFunc
}

func NewSelect(key string) *Select {
	s := &Select{
		key:         key,
		placeholder: Option{Value: "", Label: PlaceholderLabel},
	}
	s.options = []Option{s.placeholder}
	return s
}

func (s *Select) Key() string { return s.key }

func (s *Select) Value() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

func (s *Select) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Reset drops every option except the placeholder and clears the selection.
func (s *Select) Reset() {
	s.mu.Lock()
	s.options = []Option{s.placeholder}
	changed := s.selected != ""
	s.selected = ""
	listeners := append([]ChangeFunc(nil), s.listeners...)
	s.mu.Unlock()

	if changed {
		for _, fn := range listeners {
			fn("")
		}
	}
}

// Append adds one option per value, in order, labelled with the value itself.
func (s *Select) Append(values ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range values {
		s.options = append(s.options, Option{Value: v, Label: v})
	}
}

// Replace resets the control and appends values in one step.
func (s *Select) Replace(values ...string) {
	s.Reset()
	s.Append(values...)
}

// Options returns option values, placeholder first.
func (s *Select) Options() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.options))
	for i, o := range s.options {
		out[i] = o.Value
	}
	return out
}

func (s *Select) Labels() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.options))
	for i, o := range s.options {
		out[i] = o.Label
	}
	return out
}

func (s *Select) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.options)
}

// Choose selects an existing option by value.
func (s *Select) Choose(v string) error {
	s.mu.Lock()
	found := false
	for _, o := range s.options {
		if o.Value == v {
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return fmt.Errorf("option %q: %w", v, httperr.ErrBusiness(httperr.CodeUnknownOption))
	}
	changed := s.selected != v
	s.selected = v
	listeners := append([]ChangeFunc(nil), s.listeners...)
	s.mu.Unlock()

	if changed {
		for _, fn := range listeners {
			fn(v)
		}
	}
	return nil
}
