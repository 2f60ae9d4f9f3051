package services

import (
	"fmt"
	"html"
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
			"From: Loop <%s>\r\n"+
			"Subject: %s\r\n"+
			"%s\r\n%s", strings.Join(to, ","), s.From, subject, mime, body))

		if err := smtp.SendMail(addr, auth, s.From, to, msg); err != nil {
			log.Printf("Failed to send email to %v: %v", to, err)
		}
	}()
}

// SendCommentNotification mails the author of a suggestion when someone
// comments on it. Best effort: failures are logged and never surfaced.
func (s *MailService) SendCommentNotification(to, commenterName, postTitle, commentContent, postLink string) {
	subject := fmt.Sprintf("%s commented on your suggestion", commenterName)
	body := fmt.Sprintf(`<p><strong>%s</strong> commented on <strong>%s</strong>:</p>
<blockquote>%s</blockquote>
<p><a href="%s">View the discussion</a></p>`,
		html.EscapeString(commenterName),
		html.EscapeString(postTitle),
		html.EscapeString(commentContent),
		postLink)

	s.sendAsync([]string{to}, subject, body)
}
