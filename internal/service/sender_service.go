package service

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"consultorio/internal/entities"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusUpcoming  = "coming up"
)

// SenderService composes and dispatches appointment notifications. Every
// send is optional: appointments without contact details are skipped, and
// transport failures are logged without affecting the booking itself.
type SenderService struct {
}

func NewSenderService() *SenderService {
	return &SenderService{}
}

func (s *SenderService) SendAppointmentEmail(appt entities.Appointment, doctor entities.Doctor, status string) {
	if appt.Email == "" {
		return
	}

	emailData := entities.AppointmentEmailData{
		PatientName:   fmt.Sprintf("%s %s", appt.First, appt.Last),
		DoctorName:    fmt.Sprintf("Dr. %s %s", doctor.First, doctor.Last),
		Kind:          appt.Kind,
		TimeFormatted: appt.DateTime.Format("02 Jan 2006 3:04 pm"),
		CurrentYear:   time.Now().Year(),
		Status:        status,
	}

	emailSubject := fmt.Sprintf("Your appointment with %s is %s", emailData.DoctorName, status)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nYour appointment is %s.\n\n"+
			"Appointment details:\n"+
			"Doctor: %s\n"+
			"Kind: %s\n"+
			"Time: %s\n\n"+
			"Thank you for booking with Consultorio.\n\n"+
			"Consultorio. All rights reserved.",
		emailData.PatientName, status, emailData.DoctorName, emailData.Kind, emailData.TimeFormatted,
	)
	htmlBody := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your appointment is <strong>%s</strong>.</p>"+
			"<ul><li>Doctor: %s</li><li>Kind: %s</li><li>Time: %s</li></ul>"+
			"<p>Thank you for booking with Consultorio.</p><p>&copy; %d Consultorio</p>",
		emailData.PatientName, status, emailData.DoctorName, emailData.Kind, emailData.TimeFormatted, emailData.CurrentYear,
	)

	go func(toEmail, toName, subject, plainBody, htmlBodyContent string) {
		if err := SendEmailWithSendGrid(toEmail, toName, subject, plainBody, htmlBodyContent); err != nil {
			log.Error().Err(err).Str("appointment_id", appt.ID).Msg("appointment email failed")
		}
	}(appt.Email, emailData.PatientName, emailSubject, plainTextBody, htmlBody)
}

func (s *SenderService) SendAppointmentSMS(appt entities.Appointment, doctor entities.Doctor, status string) {
	if appt.Phone == "" {
		return
	}

	smsMessage := fmt.Sprintf("Consultorio: your appointment with Dr. %s %s on %s is %s. More details in your email.",
		doctor.First, doctor.Last,
		appt.DateTime.Format("02/01 3:04 pm"),
		status,
	)

	if err := SendSMS(appt.Phone, smsMessage); err != nil {
		log.Error().Err(err).Str("appointment_id", appt.ID).Str("to", appt.Phone).Msg("appointment sms failed")
	}
}
