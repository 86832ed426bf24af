// internal/models/message.go
package models

import "time"

type Speaker string

const (
	SpeakerUser Speaker = "user"
	SpeakerBot  Speaker = "bot"
)

// Agent is the role label shown next to a bot message.
type Agent string

const (
	AgentMaster       Agent = "master"
	AgentSales        Agent = "sales"
	AgentVerification Agent = "verification"
	AgentUnderwriting Agent = "underwriting"
	AgentDocument     Agent = "document"
	AgentSanction     Agent = "sanction"
)

// Message is the output of one conversation turn.
type Message struct {
	Speaker      Speaker   `json:"speaker"`
	Agent        Agent     `json:"agent,omitempty"`
	Text         string    `json:"text"`
	Suggestions  []string  `json:"suggestions,omitempty"`
	Error        bool      `json:"error,omitempty"`
	NeedsUpload  bool      `json:"needsUpload,omitempty"`
	ShowLoader   bool      `json:"showLoader,omitempty"`
	Downloadable bool      `json:"downloadable,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
}
