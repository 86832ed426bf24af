package conversation

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"loan-assistant/internal/customer"
	"loan-assistant/internal/document"
	"loan-assistant/internal/i18n"
	"loan-assistant/internal/loan/eligibility"
	"loan-assistant/internal/loan/emi"
	"loan-assistant/internal/models"
)

func (m *Machine) onGreeting(t *Turn, ev Event) {
	lang := m.lang(t)
	name := strings.TrimSpace(ev.Text)
	if name == "" {
		t.emit(0, StateGreeting, m.bot(lang, models.AgentMaster, i18n.KeyEmptyName, nil))
		return
	}

	t.Session.UserName = name
	t.Session.State = string(StateAskPhone)

	msg := m.bot(lang, models.AgentMaster, i18n.KeyAskPhone, i18n.Params{"name": name})
	msg.Suggestions = append([]string(nil), m.opts.PhoneSuggestions...)
	t.emit(0, StateAskPhone, msg)
}

func (m *Machine) onPhone(t *Turn, ev Event) {
	lang := m.lang(t)

	if ev.Lookup == nil {
		if _, ok := ParsePhone(ev.Text); !ok {
			t.emit(0, StateAskPhone, m.bot(lang, models.AgentMaster, i18n.KeyInvalidPhone, nil))
			return
		}
		// A number was found but nobody looked it up.
		t.emit(0, StateAskPhone, m.bot(lang, models.AgentMaster, i18n.KeyTryLater, nil))
		return
	}

	lookup := ev.Lookup
	switch {
	case errors.Is(lookup.Err, customer.ErrNotFound):
		msg := m.bot(lang, models.AgentVerification, i18n.KeyPhoneNotFound, nil)
		msg.Error = true
		t.emit(0, StateAskPhone, msg)
		return
	case lookup.Err != nil || lookup.Customer == nil:
		msg := m.bot(lang, models.AgentMaster, i18n.KeyTryLater, nil)
		msg.Error = true
		t.emit(0, StateAskPhone, msg)
		return
	}

	profile := *lookup.Customer
	t.Session.Customer = &profile
	t.Session.State = string(StateAskAmount)

	t.emit(0, StateShowProfile, m.bot(lang, models.AgentVerification, i18n.KeyPhoneVerified, i18n.Params{
		"name":  profile.Name,
		"score": profile.CreditScore,
		"limit": i18n.FormatINR(profile.PreApprovedLimit),
	}))

	offer := m.bot(lang, models.AgentSales, i18n.KeyAskAmount, i18n.Params{
		"name":   profile.FirstName(),
		"amount": i18n.FormatINR(profile.PreApprovedLimit),
	})
	offer.Suggestions = m.amountSuggestions(profile.PreApprovedLimit)
	t.emit(m.opts.Delays.FollowUp, StateAskAmount, offer)
}

func (m *Machine) amountSuggestions(limit int64) []string {
	out := make([]string, 0, len(m.opts.AmountSuggestions)+1)
	for _, amount := range m.opts.AmountSuggestions {
		out = append(out, "₹"+i18n.FormatINR(amount))
	}
	return append(out, "₹"+i18n.FormatINR(limit))
}

func (m *Machine) onAmount(t *Turn, ev Event) {
	lang := m.lang(t)

	amount, ok := ParseAmount(ev.Text)
	if ok {
		ok = repayable(amount, t.Session.InterestRate)
	}
	if !ok || t.Session.Customer == nil {
		t.emit(0, StateAskAmount, m.bot(lang, models.AgentSales, i18n.KeyInvalidAmount, nil))
		return
	}

	result := eligibility.Evaluate(*t.Session.Customer, amount)
	t.Eligibility = &result
	t.Session.LoanAmount = amount

	switch result.Status {
	case eligibility.StatusDeclined:
		m.reject(t, models.AgentUnderwriting, i18n.KeyApplicationDecl, m.text(lang, rejectionKey(result.Reason), result.Params))

	case eligibility.StatusConditional:
		t.Session.Conditional = true
		t.Session.State = string(StateAskTenureCond)
		msg := m.bot(lang, models.AgentSales, i18n.KeyConditionalOffer, i18n.Params{
			"amount": i18n.FormatINR(amount),
			"status": m.text(lang, i18n.KeyNeedsVerify, nil),
		})
		msg.Suggestions = m.tenureSuggestions(lang)
		t.emit(0, StateAskTenureCond, msg)

	default:
		t.Session.Conditional = false
		t.Session.State = string(StateAskTenure)
		msg := m.bot(lang, models.AgentSales, i18n.KeyInstantOffer, i18n.Params{
			"amount":   i18n.FormatINR(amount),
			"status":   m.text(lang, i18n.KeyInstantApproval, nil),
			"previews": m.previews(lang, amount, t.Session.InterestRate),
		})
		msg.Suggestions = m.tenureSuggestions(lang)
		t.emit(0, StateAskTenure, msg)
	}
}

// repayable reports whether whole-rupee installments can repay amount at
// every tenure from 1 to emi.MaxTenure months. Longer tenures, accepted only
// while bounds are off, are checked when the tenure is chosen.
func repayable(amount int64, rate float64) bool {
	for months := 1; months <= emi.MaxTenure; months++ {
		if _, err := emi.Calculate(amount, rate, months); errors.Is(err, emi.ErrDegenerate) {
			return false
		}
	}
	return true
}

func (m *Machine) previews(lang i18n.Language, amount int64, rate float64) string {
	lines := make([]string, 0, len(emi.PreviewTenures))
	for _, months := range emi.PreviewTenures {
		installment, err := emi.Calculate(amount, rate, months)
		if err != nil {
			continue
		}
		lines = append(lines, m.text(lang, i18n.KeyPreviewLine, i18n.Params{
			"months": months,
			"emi":    i18n.FormatINR(installment),
		}))
	}
	return strings.Join(lines, "\n")
}

func (m *Machine) onTenure(t *Turn, ev Event) {
	lang := m.lang(t)
	state := State(t.Session.State)

	months, ok := ParseTenure(ev.Text)
	if !ok || t.Session.Customer == nil {
		m.repromptTenure(t, state, i18n.KeyChooseTenure, nil)
		return
	}
	if m.opts.EnforceTenureBounds && !emi.InTenureBounds(months) {
		m.repromptTenure(t, state, i18n.KeyTenureBounds, tenureBounds)
		return
	}

	// Amounts were checked for 1..emi.MaxTenure, so a failure here means the
	// tenure lies outside the range the calculator widget offers.
	installment, err := emi.Calculate(t.Session.LoanAmount, t.Session.InterestRate, months)
	if err != nil {
		m.repromptTenure(t, state, i18n.KeyTenureBounds, tenureBounds)
		return
	}

	profile := t.Session.Customer
	ratio := emi.Ratio(profile.TotalExistingEMI, installment, profile.MonthlySalary)

	t.Session.Tenure = months
	t.Session.EMI = installment
	t.Session.EMIRatio = ratio

	next, nextKey, button := StateConfirm, i18n.KeySummaryConfirm, i18n.KeyProceed
	if t.Session.Conditional {
		next, nextKey, button = StateUploadSalary, i18n.KeySummaryUpload, i18n.KeyUploadButton
	}
	t.Session.State = string(next)

	msg := m.bot(lang, models.AgentSales, i18n.KeyLoanSummary, i18n.Params{
		"amount": i18n.FormatINR(t.Session.LoanAmount),
		"tenure": months,
		"emi":    i18n.FormatINR(installment),
		"ratio":  formatRatio(ratio),
		"next":   m.text(lang, nextKey, nil),
	})
	msg.Suggestions = []string{m.text(lang, button, nil)}
	msg.NeedsUpload = next == StateUploadSalary
	t.emit(0, next, msg)
}

var tenureBounds = i18n.Params{"min": emi.MinTenure, "max": emi.MaxTenure}

func (m *Machine) repromptTenure(t *Turn, state State, key i18n.Key, params i18n.Params) {
	lang := m.lang(t)
	msg := m.bot(lang, models.AgentSales, key, params)
	msg.Suggestions = m.tenureSuggestions(lang)
	t.emit(0, state, msg)
}

func (m *Machine) onUploadText(t *Turn, _ Event) {
	msg := m.bot(m.lang(t), models.AgentVerification, i18n.KeyUploadPrompt, nil)
	msg.NeedsUpload = true
	msg.Suggestions = []string{m.text(m.lang(t), i18n.KeyUploadButton, nil)}
	t.emit(0, StateUploadSalary, msg)
}

func (m *Machine) onDocument(t *Turn, ev Event) {
	lang := m.lang(t)
	outcome := ev.Document
	if outcome == nil {
		m.onUploadText(t, ev)
		return
	}

	if outcome.Violation != nil {
		m.uploadError(t, m.text(lang, violationKey(outcome.Violation), nil))
		return
	}
	if outcome.Err != nil || outcome.Result == nil {
		m.uploadError(t, m.text(lang, i18n.KeyExtractionFailed, i18n.Params{"errors": errorText(outcome.Err)}))
		return
	}
	if !outcome.Result.Success || outcome.Result.Record == nil {
		m.uploadError(t, m.text(lang, i18n.KeyExtractionFailed, i18n.Params{
			"errors": strings.Join(outcome.Result.Errors, "\n"),
		}))
		return
	}

	profile := t.Session.Customer
	if profile == nil {
		m.fallback(t)
		return
	}
	slip := outcome.Result.Record
	if m.opts.ReconcileSalary && !withinTolerance(slip.Salary, profile.MonthlySalary, m.opts.SalaryTolerance) {
		m.uploadError(t, m.text(lang, i18n.KeySalaryMismatch, i18n.Params{
			"extracted": i18n.FormatINR(slip.Salary),
			"expected":  i18n.FormatINR(profile.MonthlySalary),
		}))
		return
	}

	t.Session.SalaryVerified = true
	t.emit(m.opts.Delays.DocumentVerify, StateCreditCheck, m.bot(lang, models.AgentVerification, i18n.KeyDocumentVerified, i18n.Params{
		"salary": i18n.FormatINR(profile.MonthlySalary),
	}))
	m.creditCheck(t, m.opts.Delays.DocumentToCredit)
}

func (m *Machine) uploadError(t *Turn, text string) {
	t.emit(0, StateUploadSalary, models.Message{
		Speaker:     models.SpeakerBot,
		Agent:       models.AgentVerification,
		Text:        text,
		Error:       true,
		NeedsUpload: true,
		Suggestions: []string{m.text(m.lang(t), i18n.KeyUploadButton, nil)},
	})
}

func (m *Machine) onConfirm(t *Turn, ev Event) {
	if IsAffirmative(ev.Text, m.lang(t)) {
		m.creditCheck(t, 0)
		return
	}
	if m.opts.RepromptOnConfirm {
		msg := m.bot(m.lang(t), models.AgentMaster, i18n.KeyConfirmReprompt, nil)
		msg.Suggestions = []string{m.text(m.lang(t), i18n.KeyProceed, nil)}
		t.emit(0, StateConfirm, msg)
	}
}

// creditCheck announces the check after the given delay, then reports its
// outcome after Delays.CreditCheck.
func (m *Machine) creditCheck(t *Turn, after time.Duration) {
	lang := m.lang(t)
	profile := t.Session.Customer
	if profile == nil {
		m.fallback(t)
		return
	}

	loader := m.bot(lang, models.AgentUnderwriting, i18n.KeyCheckingCredit, nil)
	loader.ShowLoader = true
	t.emit(after, StateCreditCheck, loader)

	decision := eligibility.CreditCheck(*profile, t.Session.EMI)
	t.Credit = &decision
	t.Session.EMIRatio = decision.Ratio

	if !decision.Approved {
		key := i18n.KeyRejectionScore
		if decision.Reason == eligibility.ReasonEMIRatio {
			key = i18n.KeyRejectionEMIRatio
		}
		t.Session.State = string(StateRejected)
		msg := m.bot(lang, models.AgentUnderwriting, i18n.KeyCreditDeclined, i18n.Params{"reason": m.text(lang, key, nil)})
		msg.Error = true
		msg.Suggestions = []string{m.text(lang, i18n.KeyContactSupport, nil), m.text(lang, i18n.KeyTryAnother, nil)}
		t.emit(m.opts.Delays.CreditCheck, StateRejected, msg)
		return
	}

	t.Session.State = string(StateSanctionReady)
	msg := m.bot(lang, models.AgentUnderwriting, i18n.KeyCreditApproved, i18n.Params{
		"score": profile.CreditScore,
		"ratio": formatRatio(decision.Ratio),
	})
	msg.Suggestions = []string{m.text(lang, i18n.KeyGenerateLetter, nil)}
	t.emit(m.opts.Delays.CreditCheck, StateSanctionReady, msg)
}

func (m *Machine) onSanction(t *Turn, ev Event) {
	lang := m.lang(t)
	profile := t.Session.Customer
	if profile == nil {
		m.fallback(t)
		return
	}

	loader := m.bot(lang, models.AgentDocument, i18n.KeyGeneratingLetter, nil)
	loader.ShowLoader = true
	t.emit(0, StateSanctionReady, loader)

	reference := Reference(m.opts.ReferencePrefix, ev.At.UnixMilli())
	s := &t.Session
	s.Reference = reference
	s.State = string(StateSanctioned)

	t.Sanction = &models.Sanction{
		Reference:    reference,
		SessionID:    s.ID,
		CustomerID:   profile.CustomerID,
		CustomerName: profile.Name,
		Mobile:       profile.Mobile,
		Email:        profile.Email,
		Amount:       s.LoanAmount,
		Tenure:       s.Tenure,
		InterestRate: s.InterestRate,
		EMI:          s.EMI,
		TotalPayment: s.TotalPayment(),
		IssuedAt:     ev.At,
	}

	msg := m.bot(lang, models.AgentSanction, i18n.KeySanctioned, i18n.Params{
		"name":      strings.ToUpper(profile.Name),
		"reference": reference,
		"amount":    i18n.FormatINR(s.LoanAmount),
		"tenure":    s.Tenure,
		"emi":       i18n.FormatINR(s.EMI),
		"total":     i18n.FormatINR(s.TotalPayment()),
	})
	msg.Downloadable = true
	msg.Suggestions = []string{m.text(lang, i18n.KeyDownloadPDF, nil), m.text(lang, i18n.KeyESign, nil)}
	t.emit(m.opts.Delays.Sanction, StateSanctioned, msg)
}

func (m *Machine) reject(t *Turn, agent models.Agent, key i18n.Key, reason string) {
	lang := m.lang(t)
	t.Session.State = string(StateRejected)
	msg := m.bot(lang, agent, key, i18n.Params{"reason": reason})
	msg.Error = true
	msg.Suggestions = []string{m.text(lang, i18n.KeyContactSupport, nil), m.text(lang, i18n.KeyTryAnother, nil)}
	t.emit(0, StateRejected, msg)
}

// Reference builds a sanction reference from the last eight digits of a
// millisecond timestamp.
func Reference(prefix string, unixMilli int64) string {
	if unixMilli < 0 {
		unixMilli = -unixMilli
	}
	return fmt.Sprintf("%s-%08d", prefix, unixMilli%100000000)
}

func rejectionKey(reason eligibility.Reason) i18n.Key {
	switch reason {
	case eligibility.ReasonAge:
		return i18n.KeyRejectionAge
	case eligibility.ReasonSalary:
		return i18n.KeyRejectionSalary
	case eligibility.ReasonCredit:
		return i18n.KeyRejectionCredit
	case eligibility.ReasonEMIRatio:
		return i18n.KeyRejectionEMIRatio
	default:
		return i18n.KeyRejectionExcess
	}
}

func violationKey(err error) i18n.Key {
	switch {
	case errors.Is(err, document.ErrFileTooLarge):
		return i18n.KeyFileSizeError
	case errors.Is(err, document.ErrEmptyFile):
		return i18n.KeyFileEmpty
	default:
		return i18n.KeyFileTypeError
	}
}

func withinTolerance(extracted, expected int64, tolerance float64) bool {
	if expected <= 0 {
		return false
	}
	diff := math.Abs(float64(extracted-expected)) / float64(expected)
	return diff <= tolerance
}

func formatRatio(ratio float64) string {
	if math.IsInf(ratio, 0) || math.IsNaN(ratio) {
		return "-"
	}
	return i18n.FormatRatio(ratio)
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
