package notifysanction

import (
	"context"

	"loan-assistant/internal/common/aws"
	"loan-assistant/internal/common/logger"
	"loan-assistant/internal/i18n"
)

type Input struct {
	Reference    string `json:"reference"`
	CustomerName string `json:"customerName"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email,omitempty"`
	Amount       int64  `json:"amount"`
	Tenure       int    `json:"tenure"`
	EMI          int64  `json:"emi"`
	Language     string `json:"language,omitempty"`
}

type Output struct {
	SMSSent        bool   `json:"smsSent"`
	EmailSent      bool   `json:"emailSent"`
	SMSMessageID   string `json:"smsMessageId,omitempty"`
	EmailMessageID string `json:"emailMessageId,omitempty"`
}

// SMSSender is satisfied by *aws.SNSClient.
type SMSSender interface {
	SendSMS(ctx context.Context, mobile, message string) (string, error)
}

// EmailSender is satisfied by *aws.SESClient.
type EmailSender interface {
	SendEmail(ctx context.Context, email aws.Email) (string, error)
}

type ServiceDependencies struct {
	SMS       SMSSender
	Email     EmailSender
	Localizer i18n.Localizer
	Logger    logger.Logger
}
