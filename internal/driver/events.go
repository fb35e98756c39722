package driver

// Status is the lifecycle of one file inside a batch run.
type Status uint8

const (
	StatusQueued Status = iota
	StatusWorking
	StatusDone
	StatusError
)

// Event reports progress for one file of a batch operation.
type Event struct {
	Path   string
	Status Status
	// Detail is a short free-form note: "reformatted", "ok", an error text.
	Detail string
}

// Sink receives batch progress events. Implementations must tolerate
// concurrent Send calls; batch runs are parallel.
type Sink interface {
	Send(Event)
}

// ChannelSink forwards events into a channel, typically consumed by the
// progress UI. The channel must be buffered or drained promptly; Send
// blocks otherwise.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) Send(ev Event) {
	s.Ch <- ev
}

func emit(s Sink, path string, status Status, detail string) {
	if s == nil {
		return
	}
	s.Send(Event{Path: path, Status: status, Detail: detail})
}
