package notify

import (
	"context"
	"fmt"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// TwilioSender dispatches one-time codes as SMS messages.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
	log    *zap.Logger
}

func NewTwilioSender(accountSID, authToken, from string, log *zap.Logger) (*TwilioSender, error) {
	if accountSID == "" || authToken == "" || from == "" {
		return nil, fmt.Errorf("missing Twilio credentials")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioSender{
		client: client,
		from:   from,
		log:    log.With(zap.String("sender", "twilio")),
	}, nil
}

func (s *TwilioSender) Send(ctx context.Context, phone, code string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(s.from)
	params.SetTo(phone)
	params.SetBody(fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code))

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.log.Error("Failed to send SMS", zap.Error(err), zap.String("phone", phone))
		return fmt.Errorf("send SMS to %s: %w", phone, err)
	}

	if resp.Sid != nil {
		s.log.Info("SMS dispatched", zap.String("sid", *resp.Sid))
	}
	return nil
}
