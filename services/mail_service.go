package services

import (
	"errors"
	"fmt"
	"strings"

	"dealer-app/config"
	"dealer-app/models"

	"gopkg.in/gomail.v2"
)

var ErrMailNotConfigured = errors.New("SMTP is not configured")

type MailService struct{}

func NewMailService() *MailService {
	return &MailService{}
}

// NeedsFollowUp reports whether a customer should appear in the reminder:
// contract closed, follow-ups not opted out, and at least one follow-up
// milestone still unchecked.
func NeedsFollowUp(c models.Customer) bool {
	if c.DealInfo.NoFollowUp {
		return false
	}
	if !c.DealInfo.Statuses.Contract.Checked {
		return false
	}
	return !c.DealInfo.Statuses.FollowUp1.Checked || !c.DealInfo.Statuses.FollowUp2.Checked
}

// SendFollowUpReminders mails the list of customers with pending follow-ups
// to the given recipients and returns how many customers were included.
func (s *MailService) SendFollowUpReminders(customers []models.Customer, toEmails []string) (int, error) {
	if config.SMTPHost == "" {
		return 0, ErrMailNotConfigured
	}

	pending := []models.Customer{}
	for _, c := range customers {
		if NeedsFollowUp(c) {
			pending = append(pending, c)
		}
	}
	if len(pending) == 0 {
		return 0, nil
	}

	var rows strings.Builder
	for _, c := range pending {
		rows.WriteString(fmt.Sprintf("<li><strong>%s</strong> (%s) contract %s, sales rep %s</li>",
			c.Name, c.ID, c.DealInfo.Statuses.Contract.Date, c.SalesRep))
	}

	subject := fmt.Sprintf("📋 %d customers pending follow-up", len(pending))
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Follow-up reminders</h3>
				<ul>%s</ul>
				<p>This is an auto-generated email. Please do not reply to this email or its recipients.</p>
			</body>
		</html>
	`, rows.String())

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.MailSender)
	msg.SetHeader("To", toEmails...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		fmt.Println("❌ Failed to send reminder email:", err)
		return 0, err
	}

	fmt.Println("✅ Reminder email sent to:", toEmails)
	return len(pending), nil
}
