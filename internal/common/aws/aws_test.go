package aws

import (
	"context"
	"errors"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSNS struct {
	input *sns.PublishInput
	err   error
}

func (f *fakeSNS) Publish(_ context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = in
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: awssdk.String("sms-1")}, nil
}

type fakeSES struct {
	input *ses.SendEmailInput
}

func (f *fakeSES) SendEmail(_ context.Context, in *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = in
	return &ses.SendEmailOutput{MessageId: awssdk.String("mail-1")}, nil
}

func TestE164(t *testing.T) {
	assert.Equal(t, "+919876543210", E164("9876543210"))
	assert.Equal(t, "+919876543210", E164("919876543210"))
	assert.Equal(t, "+919876543210", E164(" +919876543210 "))
	assert.Equal(t, "+919123456789", E164("9123456789"))
}

func TestSendSMS(t *testing.T) {
	api := &fakeSNS{}
	client := NewSNSClientWithAPI(api, "TATACP")

	id, err := client.SendSMS(context.Background(), "9876543212", "Loan sanctioned")
	require.NoError(t, err)

	assert.Equal(t, "sms-1", id)
	assert.Equal(t, "+919876543212", awssdk.ToString(api.input.PhoneNumber))
	assert.Equal(t, "Loan sanctioned", awssdk.ToString(api.input.Message))
	assert.Equal(t, "TATACP", awssdk.ToString(api.input.MessageAttributes["AWS.SNS.SMS.SenderID"].StringValue))
	assert.Equal(t, "Transactional", awssdk.ToString(api.input.MessageAttributes["AWS.SNS.SMS.SMSType"].StringValue))
}

func TestSendSMS_NoSenderID(t *testing.T) {
	api := &fakeSNS{}
	_, err := NewSNSClientWithAPI(api, "").SendSMS(context.Background(), "9876543212", "hi")
	require.NoError(t, err)

	_, ok := api.input.MessageAttributes["AWS.SNS.SMS.SenderID"]
	assert.False(t, ok)
}

func TestSendSMS_Error(t *testing.T) {
	api := &fakeSNS{err: errors.New("throttled")}
	_, err := NewSNSClientWithAPI(api, "").SendSMS(context.Background(), "9876543212", "hi")
	assert.EqualError(t, err, "throttled")
}

func TestSendEmail(t *testing.T) {
	api := &fakeSES{}
	client := NewSESClientWithAPI(api, "loans@example.com")

	id, err := client.SendEmail(context.Background(), Email{
		To:      "amit@example.com",
		Subject: "Sanction letter",
		Text:    "Your loan is sanctioned",
	})
	require.NoError(t, err)

	assert.Equal(t, "mail-1", id)
	assert.Equal(t, "loans@example.com", awssdk.ToString(api.input.Source))
	assert.Equal(t, []string{"amit@example.com"}, api.input.Destination.ToAddresses)
	assert.Equal(t, "Sanction letter", awssdk.ToString(api.input.Message.Subject.Data))
	assert.Nil(t, api.input.Message.Body.Html)
}
