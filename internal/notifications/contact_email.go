package notifications

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"enersite-backend/internal/models"
)

const contactNotificationTemplate = `<!DOCTYPE html>
<html>
<body>
  <h3>New contact form submission</h3>
  <p><strong>Name:</strong> {{.FirstName}} {{.LastName}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Phone:</strong> {{deref .Phone}}</p>
  <p><strong>Company:</strong> {{deref .Company}}</p>
  <p><strong>Solution of interest:</strong> {{deref .SolutionInterest}}</p>
  <p><strong>Submission ID:</strong> {{.ID}}</p>
  <p><strong>Project details:</strong><br/>{{deref .ProjectDetails}}</p>
</body>
</html>`

var contactNotificationTmpl = template.Must(template.New("contact_notification").
	Funcs(template.FuncMap{"deref": deref}).
	Parse(contactNotificationTemplate))

func deref(v *string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return "-"
	}
	return *v
}

func buildContactNotificationHTML(sub models.ContactSubmission) (string, error) {
	var buf bytes.Buffer
	if err := contactNotificationTmpl.Execute(&buf, sub); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ContactMailer sends new contact submissions to the sales inbox. Replies
// go straight to the person who filled in the form.
type ContactMailer struct {
	client *BrevoClient
	inbox  string
}

func NewContactMailer(client *BrevoClient, inbox string) *ContactMailer {
	if client == nil || strings.TrimSpace(inbox) == "" {
		return nil
	}
	return &ContactMailer{client: client, inbox: strings.TrimSpace(inbox)}
}

func (m *ContactMailer) SendContactNotification(ctx context.Context, sub models.ContactSubmission) (string, error) {
	if m == nil {
		return "", errors.New("contact mailer is nil")
	}
	htmlBody, err := buildContactNotificationHTML(sub)
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(sub.FirstName + " " + sub.LastName)
	subject := fmt.Sprintf("New enquiry from %s", name)
	if sub.Company != nil && *sub.Company != "" {
		subject += " (" + *sub.Company + ")"
	}
	return m.client.send(ctx, message{
		To:      recipient{Email: m.inbox},
		ReplyTo: &recipient{Email: sub.Email, Name: name},
		Subject: subject,
		HTML:    htmlBody,
		Tags:    []string{"contact-form"},
	})
}
