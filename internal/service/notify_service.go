package service

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

func SendEmailWithSendGrid(toEmailAddress, toName, subject, plainTextContent, htmlContent string) error {
	sendgridAPIKey := os.Getenv("SENDGRID_API_KEY")
	if sendgridAPIKey == "" {
		log.Warn().Msg("SENDGRID_API_KEY is not set, email will not be sent")
		return fmt.Errorf("SENDGRID_API_KEY is not set")
	}

	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		log.Warn().Msg("SENDGRID_FROM_EMAIL is not set, email will not be sent")
		return fmt.Errorf("SENDGRID_FROM_EMAIL is not set")
	}

	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "Consultorio"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmailAddress)

	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(sendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		log.Error().Err(err).Str("to", toEmailAddress).Msg("sendgrid send failed")
		return fmt.Errorf("sending email through SendGrid failed: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		log.Info().Str("to", toEmailAddress).Str("subject", subject).Int("status", response.StatusCode).Msg("email sent")
		return nil
	}

	log.Error().Str("to", toEmailAddress).Int("status", response.StatusCode).Str("body", response.Body).Msg("sendgrid returned non-success status")
	return fmt.Errorf("SendGrid returned non-success status %d: %s", response.StatusCode, response.Body)
}

func SendSMS(toNumber, messageBody string) error {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	fromNumber := os.Getenv("TWILIO_FROM_NUMBER")

	if accountSid == "" || authToken == "" || fromNumber == "" {
		log.Warn().Msg("Twilio credentials (SID, token or from number) are not configured, SMS will not be sent")
		return fmt.Errorf("twilio credentials are not fully configured")
	}

	if !strings.HasPrefix(toNumber, "+") {
		log.Warn().Str("to", toNumber).Msg("destination number is not in E.164 format, SMS may fail")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   accountSid,
		Password:   authToken,
		AccountSid: accountSid,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(fromNumber)
	params.SetBody(messageBody)

	resp, err := client.Api.CreateMessage(params)
	if err != nil {
		log.Error().Err(err).Str("to", toNumber).Msg("twilio send failed")
		return fmt.Errorf("sending SMS failed: %w", err)
	}

	if resp != nil && resp.Sid != nil {
		log.Info().Str("to", toNumber).Str("sid", *resp.Sid).Msg("sms sent")
	}
	return nil
}
