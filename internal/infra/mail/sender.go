package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type welcomeEmailData struct {
	Name string
}

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<html>
<body>
	<h2>Welcome aboard, {{.Name}}!</h2>
	<p>Your account has been set up and our team will reach out shortly.</p>
</body>
</html>
`))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendClientWelcome emails a freshly converted client.
func (s *EmailSender) SendClientWelcome(to, name string) error {
	var body bytes.Buffer
	if err := welcomeTemplate.Execute(&body, welcomeEmailData{Name: name}); err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Welcome, %s!", name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email over SMTP: %w", err)
	}

	return nil
}
