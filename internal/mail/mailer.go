// Package mail sends project share-invitation emails over SMTP.
package mail

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/emersion/go-message/mail"

	"github.com/pdash/portfolio-dashboard/internal/model"
)

// Mailer composes and sends share invitations. An unconfigured mailer
// (empty username) logs and skips sends instead of failing, so local
// development works without SMTP credentials.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	appURL   string
}

// New creates a Mailer from SMTP settings and the public app URL used
// to build project links.
func New(host string, port int, username, password, from, appURL string) *Mailer {
	if from == "" {
		from = username
	}
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		appURL:   appURL,
	}
}

// Configured reports whether SMTP credentials are present.
func (m *Mailer) Configured() bool {
	return m.username != "" && m.password != ""
}

// SendShareInvitation emails a collaboration invitation for the named
// project. Returns nil without sending when the mailer is unconfigured.
func (m *Mailer) SendShareInvitation(inv model.ShareInvitation, projectName string) error {
	if !m.Configured() {
		slog.Warn("mail not configured, skipping invitation send",
			"to", inv.Email, "project", inv.ProjectID)
		return nil
	}

	msg, err := m.composeInvitation(inv, projectName)
	if err != nil {
		return fmt.Errorf("composing invitation: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := smtp.SendMail(addr, auth, m.from, []string{inv.Email}, msg); err != nil {
		return fmt.Errorf("sending invitation to %s: %w", inv.Email, err)
	}
	return nil
}

// composeInvitation builds the MIME message body for an invitation.
func (m *Mailer) composeInvitation(inv model.ShareInvitation, projectName string) ([]byte, error) {
	var buf bytes.Buffer

	var h mail.Header
	h.SetDate(time.Now())
	h.SetAddressList("From", []*mail.Address{{Name: "Project Dashboard", Address: m.from}})
	h.SetAddressList("To", []*mail.Address{{Address: inv.Email}})
	h.SetSubject(fmt.Sprintf("You've been invited to collaborate on %s", projectName))

	w, err := mail.CreateSingleInlineWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("creating message writer: %w", err)
	}

	roleText := "view"
	if inv.Role == model.InviteRoleEditor {
		roleText = "edit and view"
	}
	inviter := inv.Inviter
	if inviter == "" {
		inviter = "A team member"
	}

	body := fmt.Sprintf("Hello,\n\n%s has invited you to %s the project:\n\n  %s\n\n",
		inviter, roleText, projectName)
	if inv.Message != "" {
		body += fmt.Sprintf("Message: %s\n\n", inv.Message)
	}
	body += fmt.Sprintf("You can access the project here:\n\n  %s/dashboard/projects/%s\n",
		m.appURL, inv.ProjectID)

	if _, err := io.WriteString(w, body); err != nil {
		w.Close()
		return nil, fmt.Errorf("writing message body: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing message writer: %w", err)
	}

	return buf.Bytes(), nil
}
