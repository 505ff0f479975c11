package config

import (
	"net/http"
	"strings"
	"time"
)

const (
	TicketCookie = "ticket"
	TicketHeader = "X-Session-Ticket"
)

type Cookies struct {
	Domain   string
	Secure   bool
	SameSite http.SameSite
}

func NewCookies(c *Config) *Cookies {
	return &Cookies{
		Domain:   c.Domain,
		Secure:   c.Production(),
		SameSite: c.HttpCookieSameSite(),
	}
}

func (c *Cookies) SetTicket(w http.ResponseWriter, token string, expires time.Time) {
	w.Header().Set(TicketHeader, token)
	http.SetCookie(w, &http.Cookie{
		Name:     TicketCookie,
		Path:     "/",
		Value:    token,
		Expires:  expires,
		HttpOnly: true,
		Domain:   c.Domain,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
}

func (c *Cookies) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     TicketCookie,
		Path:     "/",
		Value:    "delete",
		MaxAge:   -1,
		HttpOnly: true,
		Domain:   c.Domain,
		Secure:   c.Secure,
		SameSite: c.SameSite,
	})
}

// TicketFromRequest looks for a ticket in the Authorization bearer header,
// then the X-Session-Ticket header, then the ticket cookie.
func TicketFromRequest(r *http.Request) (string, bool) {
	if auth := r.Header.Get("Authorization"); auth != "" {
		if token, ok := strings.CutPrefix(auth, "Bearer "); ok && token != "" {
			return token, true
		}
	}
	if token := r.Header.Get(TicketHeader); token != "" {
		return token, true
	}
	if cookie, err := r.Cookie(TicketCookie); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}
	return "", false
}
