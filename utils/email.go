package utils

import (
	"bytes"
	"cinema_api/config"
	"html/template"
	"io"
	"log"

	"gopkg.in/gomail.v2"
)

type TicketConfirmationData struct {
	CustomerName string
	TicketCode   string
	MovieTitle   string
	StartsAt     string
	NumSeats     int
}

var ticketTemplate = template.Must(template.New("ticket").Parse(`<p>Hi {{.CustomerName}},</p>
<p>Your ticket <b>{{.TicketCode}}</b> for <b>{{.MovieTitle}}</b> on {{.StartsAt}} is confirmed ({{.NumSeats}} seat(s)).</p>
<p>Show the attached QR code at the entrance.</p>`))

func MailEnabled() bool {
	return config.Config("SMTP_HOST") != ""
}

func BuildTicketMessage(from, to string, data TicketConfirmationData) (*gomail.Message, error) {
	var body bytes.Buffer
	if err := ticketTemplate.Execute(&body, data); err != nil {
		return nil, err
	}
	qr, err := GenerateQRCode(data.TicketCode, TicketQRSize)
	if err != nil {
		return nil, err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Ticket confirmation "+data.TicketCode)
	m.SetBody("text/html", body.String())
	filename := data.TicketCode + ".png"
	m.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(qr)
		return err
	}))
	return m, nil
}

// SendTicketConfirmationEmail sends asynchronously; failures are only logged.
func SendTicketConfirmationEmail(to string, data TicketConfirmationData) {
	if !MailEnabled() {
		return
	}
	go func() {
		m, err := BuildTicketMessage(config.ConfigDefault("SMTP_FROM", "no-reply@cinema.local"), to, data)
		if err != nil {
			log.Printf("build ticket email %s: %v", data.TicketCode, err)
			return
		}
		d := gomail.NewDialer(
			config.Config("SMTP_HOST"),
			config.ConfigInt("SMTP_PORT", 587),
			config.Config("SMTP_USER"),
			config.Config("SMTP_PASSWORD"),
		)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("send ticket email %s: %v", data.TicketCode, err)
		}
	}()
}
