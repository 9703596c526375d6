package models

const (
	StatusGood       = "good"
	StatusBad        = "bad"
	StatusUnverified = "unverified"
)

// Envelope is the body of every mutation response.
type Envelope struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	InsertedID string `json:"insertedId,omitempty"`
}

func Good(message string) Envelope {
	return Envelope{Status: StatusGood, Message: message}
}

func Bad(message string) Envelope {
	return Envelope{Status: StatusBad, Message: message}
}
