package model

// Status is the canonical task status.
type Status string

const (
	StatusNotStarted Status = "NOT_STARTED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDelayed    Status = "DELAYED"
	StatusCompleted  Status = "COMPLETED"
	// StatusUnknown marks a status text outside the source vocabulary.
	StatusUnknown Status = "UNKNOWN"
)

// Source vocabulary, compared after text normalization.
var statusVocabulary = map[string]Status{
	"SELESAI":      StatusCompleted,
	"DALAM PROSES": StatusInProgress,
	"TUNDA":        StatusDelayed,
	"BELUM MULAI":  StatusNotStarted,
}

// ParseStatus maps a normalized status string. Unrecognized text yields
// StatusUnknown and false.
func ParseStatus(normalized string) (Status, bool) {
	s, ok := statusVocabulary[normalized]
	if !ok {
		return StatusUnknown, false
	}
	return s, true
}

// KnownStatuses lists the recognized statuses in lifecycle order.
func KnownStatuses() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusDelayed, StatusCompleted}
}

// Color returns the display color for a status, empty for unknown statuses.
func (s Status) Color() string {
	switch s {
	case StatusCompleted:
		return "green"
	case StatusInProgress:
		return "orange"
	case StatusDelayed:
		return "red"
	case StatusNotStarted:
		return "grey"
	}
	return ""
}
