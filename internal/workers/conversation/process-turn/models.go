package processturn

import "loan-assistant/internal/models"

// Input starts a conversation when SessionID is empty, otherwise it sends
// Text to the existing session.
type Input struct {
	SessionID string `json:"sessionId,omitempty"`
	Language  string `json:"language,omitempty"`
	Text      string `json:"text,omitempty"`
}

type Output struct {
	SessionID string           `json:"sessionId"`
	State     string           `json:"state"`
	Stage     string           `json:"stage"`
	Terminal  bool             `json:"terminal"`
	Reference string           `json:"reference,omitempty"`
	Messages  []models.Message `json:"messages"`
}
