package actionitems

// DraftState tracks one action-item row and kind through its request
// lifecycle: Unrequested -> Requested -> Displayed. A row can be reset to
// Unrequested so the same draft may be requested again.
type DraftState int

const (
	StateUnrequested DraftState = iota
	StateRequested
	StateDisplayed
)

func (s DraftState) String() string {
	switch s {
	case StateRequested:
		return "requested"
	case StateDisplayed:
		return "displayed"
	default:
		return "unrequested"
	}
}

// DraftKey identifies one draft request by action-item position and kind.
type DraftKey struct {
	Item int
	Kind Kind
}
