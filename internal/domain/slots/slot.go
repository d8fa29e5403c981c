package slots

import (
	"net/url"
	"strings"
)

// Slot is a bookable time token as returned by the endpoint ("14:30").
// Its format is not interpreted here.
type Slot string

type Query struct {
	BarberID string
	Date     string // YYYY-MM-DD
}

func NewQuery(barberID, date string) Query {
	return Query{
		BarberID: strings.TrimSpace(barberID),
		Date:     strings.TrimSpace(date),
	}
}

// Ready reports whether both selections are set.
func (q Query) Ready() bool {
	return strings.TrimSpace(q.BarberID) != "" && strings.TrimSpace(q.Date) != ""
}

func (q Query) Values() url.Values {
	v := url.Values{}
	v.Set("barber_id", q.BarberID)
	v.Set("date", q.Date)
	return v
}

// Response is the wrapped contract: the list is always present, possibly empty.
type Response struct {
	Slots []Slot `json:"slots"`
}

func NewResponse(list []Slot) Response {
	if list == nil {
		list = []Slot{}
	}
	return Response{Slots: list}
}

func Strings(list []Slot) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = string(s)
	}
	return out
}
