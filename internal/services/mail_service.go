package services

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

type MailService struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	Enabled  bool
}

func NewMailService() *MailService {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASS")
	from := os.Getenv("SMTP_FROM")

	enabled := host != "" && port != "" && user != "" && pass != "" && from != ""
	if !enabled {
		log.Println("MailService disabled: missing SMTP environment variables")
	}

	return &MailService{
		Host:     host,
		Port:     port,
		Username: user,
		Password: pass,
		From:     from,
		Enabled:  enabled,
	}
}

func (s *MailService) sendAsync(to []string, subject string, body string) {
	if !s.Enabled {
		return
	}

	go func() {
		auth := smtp.PlainAuth("", s.Username, s.Password, s.Host)
		addr := fmt.Sprintf("%s:%s", s.Host, s.Port)

		mime := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
		msg := []byte(fmt.Sprintf("To: %s\r\n"+
			"From: SkillPath <%s>\r\n"+
			"Subject: %s\r\n"+
			"%s\r\n%s", strings.Join(to, ","), s.From, subject, mime, body))

		if err := smtp.SendMail(addr, auth, s.From, to, msg); err != nil {
			log.Printf("failed to send email to %v: %v", to, err)
		} else {
			log.Printf("email sent to %v: %s", to, subject)
		}
	}()
}

// SendPasswordResetEmail delivers a reset code. Body is inline HTML; the
// only dynamic value is the code itself.
func (s *MailService) SendPasswordResetEmail(email, code string) {
	body := fmt.Sprintf(`<p>You requested a password reset for your SkillPath account.</p>
<p>Your reset code is: <strong>%s</strong></p>
<p>If you did not request this, you can ignore this email.</p>`, code)
	s.sendAsync([]string{email}, "SkillPath password reset", body)
}

// SendWelcomeEmail greets a new account.
func (s *MailService) SendWelcomeEmail(email, username string) {
	body := fmt.Sprintf(`<p>Hi %s, welcome to SkillPath!</p>
<p>Head to the roadmap page to pick your preferences and start learning.</p>`, username)
	s.sendAsync([]string{email}, "Welcome to SkillPath", body)
}
