package pubsub

// Kind discriminates the messages a subscription delivers.
type Kind int

const (
	// KindData carries one decoded event.
	KindData Kind = iota
	// KindError carries a per-event decode failure or a stream-level error.
	// Stream-level errors are terminal; decode failures are not.
	KindError
	// KindKeepalive is an empty server batch carrying the latest replay
	// position for the topic.
	KindKeepalive
	// KindStatus forwards transport status detail, emitted before a terminal
	// error.
	KindStatus
	// KindEnd reports normal stream termination. Terminal.
	KindEnd
	// KindLastEvent reports that a bounded subscription reached its requested
	// count. No automatic re-request follows.
	KindLastEvent
)

// String returns the signal name.
func (k Kind) String() string {
	switch k {
	case KindData:
		return "data"
	case KindError:
		return "error"
	case KindKeepalive:
		return "keepalive"
	case KindStatus:
		return "status"
	case KindEnd:
		return "end"
	case KindLastEvent:
		return "lastevent"
	default:
		return "unknown"
	}
}

// Event is one decoded event: its replay position and the structured payload
// with change bitmaps resolved to field names and union wrappers collapsed.
type Event struct {
	ReplayID uint64
	EventID  string
	SchemaID string
	Payload  map[string]interface{}
}

// Keepalive is an empty server heartbeat.
type Keepalive struct {
	LatestReplayID      uint64
	PendingNumRequested int32
}

// Status carries transport status detail.
type Status struct {
	Code    string
	Message string
}

// Message is one signal on a subscription channel. Kind selects which field
// is populated.
type Message struct {
	Kind      Kind
	Event     *Event
	Err       error
	Keepalive *Keepalive
	Status    *Status
}
