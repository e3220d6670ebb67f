package driver

// EventSource delivers resize notifications from the host.
type EventSource interface {
	OnResize(handler func())
}

// Scheduler runs a callback on the host's next frame signal.
type Scheduler interface {
	RequestFrame(fn func(timestamp float64))
	Cancel()
}

// ResizeNotifier is an EventSource the host fires by hand.
type ResizeNotifier struct {
	handlers []func()
}

func (n *ResizeNotifier) OnResize(handler func()) {
	if handler != nil {
		n.handlers = append(n.handlers, handler)
	}
}

// Emit calls every handler in registration order.
func (n *ResizeNotifier) Emit() {
	for _, h := range n.handlers {
		h()
	}
}
