package notice

import (
	"fmt"
	"io"
	"sync"
)

type Kind string

const (
	KindNoSlots    Kind = "no_slots"
	KindLoadFailed Kind = "load_failed"
)

const (
	MsgNoSlots    = "No available slots for this date."
	MsgLoadFailed = "Failed to load available slots."
)

type Notice struct {
	Kind    Kind
	Message string
}

func NoSlots() Notice    { return Notice{Kind: KindNoSlots, Message: MsgNoSlots} }
func LoadFailed() Notice { return Notice{Kind: KindLoadFailed, Message: MsgLoadFailed} }

// Notifier surfaces a notice to the end user. The loader calls Notify while
// holding its lock, so implementations must not refresh synchronously.
type Notifier interface {
	Notify(n Notice)
}

type Func func(n Notice)

func (f Func) Notify(n Notice) { f(n) }

// WriterNotifier prints each notice as a line to w.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func NewWriter(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

func (n *WriterNotifier) Notify(nt Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, "! %s\n", nt.Message)
}
