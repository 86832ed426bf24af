package notifysanction

import (
	"context"
	"fmt"
	"html"
	"strings"

	"loan-assistant/internal/common/aws"
	"loan-assistant/internal/common/errors"
	"loan-assistant/internal/common/logger"
	"loan-assistant/internal/common/validation"
	"loan-assistant/internal/i18n"
)

type Service struct {
	config    *Config
	sms       SMSSender
	email     EmailSender
	localizer i18n.Localizer
	logger    logger.Logger
}

func NewService(deps ServiceDependencies, config *Config) *Service {
	if deps.Localizer == nil {
		deps.Localizer = i18n.NewCatalog()
	}
	return &Service{
		config:    config,
		sms:       deps.SMS,
		email:     deps.Email,
		localizer: deps.Localizer,
		logger:    deps.Logger,
	}
}

// Execute sends the sanction notice over every enabled channel. A channel
// without a sender, or email without an address, is skipped.
func (s *Service) Execute(ctx context.Context, input *Input) (*Output, error) {
	if err := validateInput(input); err != nil {
		return nil, errors.NewInvalidLoanInputError(err.Error())
	}

	lang, _ := i18n.ParseLanguage(input.Language)
	params := i18n.Params{
		"name":      input.CustomerName,
		"reference": input.Reference,
		"amount":    i18n.FormatINR(input.Amount),
		"emi":       i18n.FormatINR(input.EMI),
		"tenure":    input.Tenure,
		"total":     i18n.FormatINR(input.EMI * int64(input.Tenure)),
	}
	notice := s.localizer.Translate(i18n.KeySanctionNotice, lang, params)

	output := &Output{}

	if s.config.SMSEnabled && s.sms != nil {
		id, err := s.sms.SendSMS(ctx, input.Mobile, notice)
		if err != nil {
			return nil, errors.NewNotificationSendFailedError("sms", err)
		}
		output.SMSSent, output.SMSMessageID = true, id
	}

	if s.config.EmailEnabled && s.email != nil && input.Email != "" {
		id, err := s.email.SendEmail(ctx, aws.Email{
			To:      input.Email,
			Subject: s.localizer.Translate(i18n.KeySanctionSubject, lang, params),
			Text:    notice,
			HTML:    noticeHTML(s.localizer.Translate(i18n.KeySanctioned, lang, params)),
		})
		if err != nil {
			return nil, errors.NewNotificationSendFailedError("email", err)
		}
		output.EmailSent, output.EmailMessageID = true, id
	}

	s.logger.Info("Sanction notice sent", map[string]interface{}{
		"reference": input.Reference,
		"smsSent":   output.SMSSent,
		"emailSent": output.EmailSent,
	})
	return output, nil
}

func validateInput(input *Input) error {
	if strings.TrimSpace(input.Reference) == "" {
		return fmt.Errorf("reference is required")
	}
	if !validation.ValidateMobile(input.Mobile) {
		return fmt.Errorf("invalid mobile: %s", input.Mobile)
	}
	if input.Amount <= 0 || input.Tenure <= 0 || input.EMI <= 0 {
		return fmt.Errorf("amount, tenure and emi must be positive")
	}
	if input.Email != "" && !validation.ValidateEmail(input.Email) {
		return fmt.Errorf("invalid email: %s", input.Email)
	}
	return nil
}

func noticeHTML(text string) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(line))
		b.WriteString("</p>")
	}
	b.WriteString("</body></html>")
	return b.String()
}
