// services/reminder_service.go
package services

import (
	"fmt"
	"os"
	"time"

	"github.com/BrianEstime1/hvac-backend/models"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReminderService texts customers the day before their scheduled
// appointment. It is started only when Twilio credentials are configured.
type ReminderService struct {
	db     *gorm.DB
	log    *zap.Logger
	client *twilio.RestClient
	from   string
}

func NewReminderService(db *gorm.DB, log *zap.Logger) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db:   db,
		log:  log,
		from: os.Getenv("TWILIO_PHONE_NUMBER"),
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler runs the reminder pass every day at 8 AM.
func (s *ReminderService) StartScheduler() *cron.Cron {
	c := cron.New()

	c.AddFunc("0 8 * * *", func() {
		s.SendDailyReminders()
	})

	c.Start()
	s.log.Info("reminder scheduler started")
	return c
}

// SendDailyReminders texts every customer with a scheduled appointment
// tomorrow and logs each attempt.
func (s *ReminderService) SendDailyReminders() {
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	var appointments []models.Appointment
	if err := s.db.Preload("Customer").
		Where("appointment_date = ? AND status = ?", tomorrow, "scheduled").
		Find(&appointments).Error; err != nil {
		s.log.Error("failed to fetch tomorrow's appointments", zap.Error(err))
		return
	}

	s.log.Info("processing appointment reminders",
		zap.String("date", tomorrow),
		zap.Int("count", len(appointments)),
	)

	for _, apt := range appointments {
		if apt.Customer == nil {
			continue
		}
		s.sendReminder(apt, *apt.Customer)
	}
}

func (s *ReminderService) sendReminder(apt models.Appointment, customer models.Customer) {
	message := fmt.Sprintf(
		"Hi %s, this is a reminder of your %s appointment tomorrow (%s) at %s.",
		customer.Name, apt.ServiceType, apt.AppointmentDate, apt.AppointmentTime,
	)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(customer.Phone)
	params.SetFrom(s.from)
	params.SetBody(message)

	status := "sent"
	errorMsg := ""

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		s.log.Warn("failed to send reminder",
			zap.String("phone", customer.Phone),
			zap.Error(err),
		)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		s.log.Info("reminder sent",
			zap.String("phone", customer.Phone),
			zap.String("sid", *resp.Sid),
		)
	}

	reminderLog := models.ReminderLog{
		AppointmentID: apt.ID,
		CustomerID:    customer.ID,
		Message:       message,
		Status:        status,
		ErrorMessage:  errorMsg,
		SentAt:        time.Now(),
	}
	if err := s.db.Create(&reminderLog).Error; err != nil {
		s.log.Error("failed to log reminder",
			zap.String("appointment_id", apt.ID.String()),
			zap.Error(err),
		)
	}
}
