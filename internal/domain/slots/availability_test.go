package slots

import (
	"reflect"
	"testing"
)

func TestAvailableKeepsGridOrder(t *testing.T) {
	grid := []string{"09:00", "10:00", "11:00", "12:00"}

	got := Available(grid, []string{"11:00", "09:00", "18:00"})
	if !reflect.DeepEqual(got, []Slot{"10:00", "12:00"}) {
		t.Fatalf("got %v", got)
	}

	if got := Available(grid, grid); got == nil || len(got) != 0 {
		t.Fatalf("fully booked = %#v, want empty non-nil", got)
	}
}
