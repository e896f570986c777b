package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html/template"
	"net/smtp"
	"os"
	"strconv"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// BookingReceiptData feeds the receipt email template.
type BookingReceiptData struct {
	BookingID      string
	ServiceTitle   string
	CustomerName   string
	TravelDate     string
	NumberOfPeople int
	TotalAmount    float64
	PaymentMethod  string
	QRCode         template.URL
}

// SendBookingReceiptEmail renders and sends the HTML receipt. The caller
// decides whether a failure matters; booking creation treats it as
// best-effort.
func SendBookingReceiptEmail(to string, data BookingReceiptData) error {
	qrBytes, err := GenerateQRCode(data.BookingID, 300)
	if err == nil {
		data.QRCode = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes))
	} else {
		GetLogger().Warn("receipt QR generation failed: " + err.Error())
	}

	tmpl, err := template.ParseFiles("templates/booking_receipt.html")
	if err != nil {
		return fmt.Errorf("load receipt template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("render receipt template: %w", err)
	}

	host := os.Getenv("SMTP_HOST")
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your Hargeisa Vibes booking #"+data.BookingID)
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(host, port, username, password)
	return d.DialAndSend(m)
}

// ReceiptMailer adapts the SMTP sender to the lifecycle manager.
type ReceiptMailer struct{}

func (ReceiptMailer) SendReceipt(to string, data BookingReceiptData) error {
	return SendBookingReceiptEmail(to, data)
}

// SendPasswordResetEmail sends the plaintext reset link.
func SendPasswordResetEmail(to, token string) error {
	host := os.Getenv("SMTP_HOST")
	port := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", os.Getenv("APP_URL"), token)

	e := email.NewEmail()
	e.From = from
	e.To = []string{to}
	e.Subject = "Reset your Hargeisa Vibes password"
	e.Text = []byte("We received a request to reset your password.\n\n" +
		"Open the link below to choose a new one. The link expires in 1 hour.\n\n" +
		resetLink + "\n\nIf you did not request this, you can ignore this email.")

	return e.Send(host+":"+port, smtp.PlainAuth("", username, password, host))
}
