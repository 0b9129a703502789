package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// Link builds a wa.me deep link with a prefilled message. It is plain
// URL construction, there is no WhatsApp API call anywhere.
func Link(phone, message string) string {
	u := url.URL{
		Scheme: "https",
		Host:   "wa.me",
		Path:   "/" + digitsOnly(phone),
	}

	q := url.Values{}
	q.Set("text", message)
	u.RawQuery = q.Encode()

	return u.String()
}

// ReminderMessage is the "notify next client" template.
func ReminderMessage(clientName, serviceName, date, startTime string) string {
	hhmm := startTime
	if len(hhmm) >= 5 {
		hhmm = hhmm[:5]
	}

	return fmt.Sprintf(
		"Olá %s! Lembrete do seu horário: %s em %s às %s. Até já!",
		clientName, serviceName, date, hhmm,
	)
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
