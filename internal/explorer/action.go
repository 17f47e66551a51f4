package explorer

// Action is a symbolic key press. Mapping raw keys to actions is up to the
// input layer.
type Action int

const (
	ActionOther Action = iota
	ActionUp
	ActionDown
	ActionConfirm
	ActionBack
	ActionStations
	ActionSegments
	ActionQuit
)

var actionNames = [...]string{
	ActionOther:    "other",
	ActionUp:       "up",
	ActionDown:     "down",
	ActionConfirm:  "confirm",
	ActionBack:     "back",
	ActionStations: "stations",
	ActionSegments: "segments",
	ActionQuit:     "quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// RequestKind identifies a side effect the caller has to carry out.
type RequestKind int

const (
	RequestNone RequestKind = iota
	// RequestLoadInfrastructure asks for the infrastructure with ID to be
	// fetched and built. Report the outcome with InfrastructureLoaded.
	RequestLoadInfrastructure
	// RequestReloadPicker asks for the infrastructure index to be fetched.
	// Report the outcome with SummariesLoaded.
	RequestReloadPicker
)

// Request is a side effect emitted by the navigator.
type Request struct {
	Kind RequestKind
	ID   uint64 // infrastructure id for RequestLoadInfrastructure
}

// IsNone reports whether the request asks for nothing.
func (r Request) IsNone() bool {
	return r.Kind == RequestNone
}
