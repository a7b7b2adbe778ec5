package entity

// Severity classifies an in-app notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is an in-app message. Created unread; the read flag only ever
// moves false -> true.
type Notification struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Message   string   `json:"message"`
	Type      Severity `json:"type"`
	Timestamp string   `json:"timestamp"`
	Read      bool     `json:"read"`
}
