package form

import (
	"reflect"
	"testing"

	"github.com/BruksfildServices01/barber-slot-loader/internal/httperr"
)

func TestSelectKeepsPlaceholder(t *testing.T) {
	s := NewSelect(KeyTime)
	if got := s.Options(); !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("initial options = %q", got)
	}

	s.Append("09:00", "09:30")
	if got := s.Options(); !reflect.DeepEqual(got, []string{"", "09:00", "09:30"}) {
		t.Fatalf("options = %q", got)
	}
	if got := s.Labels(); got[0] != PlaceholderLabel || got[2] != "09:30" {
		t.Fatalf("labels = %q", got)
	}

	if err := s.Choose("09:30"); err != nil {
		t.Fatalf("Choose: %v", err)
	}

	s.Replace("10:00")
	if got := s.Options(); !reflect.DeepEqual(got, []string{"", "10:00"}) {
		t.Fatalf("options after replace = %q", got)
	}
	if s.Value() != "" {
		t.Fatalf("selection must be cleared, got %q", s.Value())
	}

	s.Reset()
	if s.Len() != 1 {
		t.Fatalf("Len = %d after reset", s.Len())
	}
}

func TestSelectChooseUnknown(t *testing.T) {
	s := NewSelect(KeyTime)
	err := s.Choose("11:00")
	if !httperr.IsBusiness(err, httperr.CodeUnknownOption) {
		t.Fatalf("err = %v", err)
	}
}

func TestFieldNotifiesOnlyOnChange(t *testing.T) {
	f := NewField(KeyBarber)
	var seen []string
	f.OnChange(func(v string) { seen = append(seen, v) })

	f.SetValue("3")
	f.SetValue("3")
	f.SetValue("")

	if !reflect.DeepEqual(seen, []string{"3", ""}) {
		t.Fatalf("seen = %q", seen)
	}
	if f.Value() != "" {
		t.Fatalf("Value = %q", f.Value())
	}
}

func TestBookingFormLookup(t *testing.T) {
	f := NewBooking()

	if _, err := f.Field(KeyBarber); err != nil {
		t.Fatalf("barber: %v", err)
	}
	if _, err := f.Field(KeyDate); err != nil {
		t.Fatalf("date: %v", err)
	}
	if _, err := f.Select(KeyTime); err != nil {
		t.Fatalf("time: %v", err)
	}
	if _, err := f.Select(KeyBarber); err == nil {
		t.Fatal("barber is not a select")
	}
	if _, err := f.Lookup("service"); !httperr.IsBusiness(err, httperr.CodeControlNotFound) {
		t.Fatalf("err = %v", err)
	}
}
