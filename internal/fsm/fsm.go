package fsm

// Status constants used by the exchange proposal state machine.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

// Localized display labels accepted from clients alongside the canonical
// keys. Both vocabularies normalize to the same stored value.
var displayLabels = map[string]string{
	"Ожидает":   StatusPending,
	"Принято":   StatusAccepted,
	"Отклонено": StatusDeclined,
}

// Normalize maps a caller-supplied status label to its canonical form. The
// second return value is false for labels that are not part of either
// vocabulary.
func Normalize(label string) (string, bool) {
	switch label {
	case StatusPending, StatusAccepted, StatusDeclined:
		return label, true
	}
	if canonical, ok := displayLabels[label]; ok {
		return canonical, true
	}
	return "", false
}

var transitions = map[string]map[string]struct{}{
	StatusPending: {StatusAccepted: {}, StatusDeclined: {}},
}

// CanTransition reports whether the transition table allows from -> to.
// Accepted and declined are terminal states in the table.
func CanTransition(from, to string) bool {
	next, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}

// Policy decides whether a status overwrite has to respect the transition
// table. PolicyPermissive matches the historically observed contract: any
// recognized status may replace any other, including moves out of a terminal
// state. PolicyStrict enforces the table.
type Policy int

const (
	PolicyPermissive Policy = iota
	PolicyStrict
)

func (p Policy) Allowed(from, to string) bool {
	if p == PolicyStrict {
		return CanTransition(from, to)
	}
	return true
}
