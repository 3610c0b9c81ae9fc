package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/ramzanpremierleague18-max/rpl-tournament/models"
)

// Notifier dispatches the verification email. Implementations are
// best-effort: a failed send never blocks the status transition.
type Notifier interface {
	SendVerified(reg *models.Registration) error
}

// SMTPNotifier sends through a plain SMTP account (gmail by default).
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPNotifier(host string, port int, user, pass string) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
	}
}

func (n *SMTPNotifier) SendVerified(reg *models.Registration) error {
	body := fmt.Sprintf(`Hi %s,

✔ Payment confirmed
✔ Player details verified
✔ You are officially selected for the tournament

Selected team will contact you shortly with match schedules and further updates.

Play well and all the best! 🏏🔥

Regards,
Noor ali & RPL Management Team`, reg.PlayerName)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.from, "RPL Management")
	m.SetHeader("To", reg.PlayerEmail)
	m.SetHeader("Subject", "RPL Registration Verified")
	m.SetBody("text/plain", body)

	return n.dialer.DialAndSend(m)
}
