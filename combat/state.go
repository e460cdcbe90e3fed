package combat

// State is the combat state of the character; exactly one holds at a time
type State uint8

const (
	StateUnoccupied State = iota
	StateFireTimerInProgress
	StateReloading
	StateEquipping
)

func (s State) String() string {
	switch s {
	case StateUnoccupied:
		return "Unoccupied"
	case StateFireTimerInProgress:
		return "FireTimerInProgress"
	case StateReloading:
		return "Reloading"
	case StateEquipping:
		return "Equipping"
	default:
		return "Unknown"
	}
}
