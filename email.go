package main

import (
	"fmt"
	"log"
	"net/mail"
	"net/url"
	"os"

	"github.com/eunoia-events/site/submissions"
	"github.com/eunoia-events/site/utils"
	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/mailer"
)

const (
	senderName    = "Eunoia Events"
	senderAddress = "hello@eunoiaevents.com"
)

// configurePocketBaseSMTP configures PocketBase's SMTP settings for SendGrid
func configurePocketBaseSMTP(app core.App) {
	smtpPassword := os.Getenv(utils.EnvSMTPPassword)
	if smtpPassword == "" {
		log.Println("[SMTP] No SMTP_PASSWORD configured, skipping SMTP setup")
		return
	}

	settings := app.Settings()

	if settings.SMTP.Enabled && settings.SMTP.Host == "smtp.sendgrid.net" && settings.Meta.SenderAddress == senderAddress {
		log.Println("[SMTP] Already configured correctly")
		return
	}

	settings.SMTP.Enabled = true
	settings.SMTP.Host = "smtp.sendgrid.net"
	settings.SMTP.Port = 587
	settings.SMTP.Username = "apikey"
	settings.SMTP.Password = smtpPassword
	settings.SMTP.TLS = false

	settings.Meta.SenderName = senderName
	settings.Meta.SenderAddress = senderAddress

	if err := app.Save(settings); err != nil {
		log.Printf("[SMTP] Failed to save settings: %v", err)
	} else {
		log.Println("[SMTP] Settings saved successfully")
	}
}

// wrapEmailHTML wraps content in the site's email template.
func wrapEmailHTML(content string) string {
	return `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; line-height: 1.4; color: #202020; font-size: 16px; margin: 0; padding: 0; background: #ffffff;">

    <div style="text-align: center; max-width: 640px; margin: auto; padding: 24px;">
        <h1 style="font-size: 24px; letter-spacing: 2px; margin: 12px 0;">EUNOIA EVENTS</h1>
    </div>

    <div style="max-width: 640px; margin: auto; padding: 24px; background: #f8f8f8;">
        <div style="background: #ffffff; padding: 24px; border-radius: 8px;">
` + content + `
        </div>
    </div>

    <div style="max-width: 640px; margin: auto; padding: 16px; text-align: center;">
        <p style="font-size: 12px; color: #777;">Eunoia Events &mdash; Highfive Building, Lipa City, Batangas</p>
    </div>

</body>
</html>`
}

// sendSubmissionConfirmation emails the submitter that their request was
// received. Best effort: failures are logged, never surfaced to the form.
func sendSubmissionConfirmation(app core.App, sub submissions.Submission) {
	if os.Getenv(utils.EnvSMTPPassword) == "" || sub.Email == "" {
		return
	}

	subject := "We received your message"
	intro := "Thanks for getting in touch. We've received your message and will get back to you soon."
	if sub.IsEvent() {
		subject = "We received your event request"
		intro = fmt.Sprintf("Thanks for reaching out about your %s. We've received your request and will contact you soon to start planning.", sub.EventType)
	}

	content := fmt.Sprintf(`
            <p style="color: #4a4a4a; font-size: 16px; margin: 0 0 16px 0;">Hi %s,</p>
            <p style="color: #4a4a4a; font-size: 16px; margin: 0 0 16px 0;">%s</p>
            <p style="color: #9a9a9a; font-size: 14px; margin: 24px 0 0 0;">The Eunoia Events team</p>
`, sub.Name, intro)

	msg := &mailer.Message{
		From:    mail.Address{Address: app.Settings().Meta.SenderAddress, Name: app.Settings().Meta.SenderName},
		To:      []mail.Address{{Address: sub.Email, Name: sub.Name}},
		Subject: subject,
		HTML:    wrapEmailHTML(content),
	}

	if err := app.NewMailClient().Send(msg); err != nil {
		log.Printf("[Email] Failed to send confirmation to %s: %v", sub.Email, err)
	}
}

// composeURL builds a Gmail web compose link pre-filled for replying to a
// submission. The dashboard opens it in a new tab, so sending (or not)
// stays entirely in the operator's mail client.
func composeURL(sub submissions.Submission) string {
	subject := "Re: your inquiry with Eunoia Events"
	if sub.IsEvent() && sub.EventType != "" {
		subject = fmt.Sprintf("Re: your %s inquiry with Eunoia Events", sub.EventType)
	}

	body := fmt.Sprintf("Hi %s,\n\nThanks for reaching out to Eunoia Events.\n\n", sub.Name)

	v := url.Values{}
	v.Set("view", "cm")
	v.Set("fs", "1")
	v.Set("to", sub.Email)
	v.Set("su", subject)
	v.Set("body", body)

	return "https://mail.google.com/mail/?" + v.Encode()
}
