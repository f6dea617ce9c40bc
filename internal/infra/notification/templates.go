package notification

import (
	"bytes"
	"html/template"
	"strings"

	"booking/internal/domain/entity"
	"booking/internal/errors"
)

const (
	welcomeSubject       = "Welcome to the Booking family!"
	passwordResetSubject = "Your password reset token (valid for only 10 minutes)"
)

var (
	welcomeTemplate = template.Must(template.New("welcome").Parse(
		`<p>Hi {{.FirstName}},</p>
<p>Welcome to Booking, we're glad to have you on board.</p>
<p>Upload a profile photo and review your account here: <a href="{{.URL}}">{{.URL}}</a></p>`))

	passwordResetTemplate = template.Must(template.New("passwordReset").Parse(
		`<p>Hi {{.FirstName}},</p>
<p>Forgot your password? Submit a PATCH request with your new password and passwordConfirm to:</p>
<p><a href="{{.URL}}">{{.URL}}</a></p>
<p>If you didn't forget your password, please ignore this email.</p>`))
)

type mailData struct {
	FirstName string
	URL       string
}

// mail is a rendered message ready for a transport.
type mail struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

func renderMail(tmpl *template.Template, subject string, account *entity.Account, url string) (*mail, error) {
	data := mailData{FirstName: firstName(account.Name), URL: url}

	var html bytes.Buffer
	if err := tmpl.Execute(&html, data); err != nil {
		return nil, errors.Wrapf(err, "render %s mail", tmpl.Name())
	}

	return &mail{
		To:      account.Email,
		Subject: subject,
		HTML:    html.String(),
		Text:    "Hi " + data.FirstName + ",\n\n" + url + "\n",
	}, nil
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "there"
	}

	return fields[0]
}
