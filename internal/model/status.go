package model

// LookupState represents the state of the search entry controller
type LookupState string

const (
	// LookupStateIdle means no lookup is in flight
	LookupStateIdle LookupState = "Idle"

	// LookupStateAwaiting means a lookup has been dispatched and not yet completed
	LookupStateAwaiting LookupState = "Awaiting"
)

// String returns the string representation of LookupState
func (ls LookupState) String() string {
	return string(ls)
}

// IsActive returns true if a lookup is in flight
func (ls LookupState) IsActive() bool {
	return ls == LookupStateAwaiting
}
