package admin

import "strings"

// Acknowledgment marker written into notes by the ack_jun action.
const (
	AckMarker    = "JUN ack'd"
	AckSeparator = " // "
)

// Action names accepted by the bulk action endpoint.
const (
	ActionExport = "export"
	ActionAckJun = "ack_jun"
)

// Action describes a bulk action offered in the change-list dropdown.
type Action struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Acknowledge prepends the acknowledgment marker to notes unless it is
// already there. It reports whether notes changed.
func Acknowledge(notes string) (string, bool) {
	if strings.Contains(notes, AckMarker) {
		return notes, false
	}
	if notes == "" {
		return AckMarker, true
	}
	return AckMarker + AckSeparator + notes, true
}
