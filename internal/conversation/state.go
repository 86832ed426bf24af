// Package conversation drives the loan application dialogue: it interprets
// each user event according to the current state and decides the next state,
// the bot messages and their suggested replies.
package conversation

type State string

const (
	StateGreeting      State = "greeting"
	StateAskPhone      State = "ask_phone"
	StateShowProfile   State = "show_profile"
	StateAskAmount     State = "ask_amount"
	StateAskTenure     State = "ask_tenure"
	StateAskTenureCond State = "ask_tenure_cond"
	StateUploadSalary  State = "upload_salary"
	StateConfirm       State = "confirm"
	StateCreditCheck   State = "credit_check"
	StateSanctionReady State = "sanction_ready"
	StateRejected      State = "rejected"
	StateSanctioned    State = "sanctioned"
)

// States lists every state in conversation order.
var States = []State{
	StateGreeting,
	StateAskPhone,
	StateShowProfile,
	StateAskAmount,
	StateAskTenure,
	StateAskTenureCond,
	StateUploadSalary,
	StateConfirm,
	StateCreditCheck,
	StateSanctionReady,
	StateRejected,
	StateSanctioned,
}

// IsTerminal reports whether no further input can change the state.
func (s State) IsTerminal() bool {
	return s == StateRejected || s == StateSanctioned
}

func (s State) Valid() bool {
	for _, known := range States {
		if s == known {
			return true
		}
	}
	return false
}

// Stage groups states into the four progress stages shown to the user.
func (s State) Stage() string {
	switch s {
	case StateShowProfile, StateUploadSalary:
		return "verification"
	case StateCreditCheck, StateSanctionReady:
		return "underwriting"
	case StateSanctioned:
		return "sanction"
	default:
		return "conversation"
	}
}
