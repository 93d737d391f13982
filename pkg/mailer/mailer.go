package mailer

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"net/smtp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Mailer delivers markdown reports by mail, rendered to HTML so tables stay
// readable.
type Mailer struct {
	host string
	port int

	username string
	password string

	from string

	markdown goldmark.Markdown

	send sendFunc
}

type sendFunc func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error

type Option func(*Mailer)

func WithCredentials(username, password string) Option {
	return func(m *Mailer) {
		m.username = username
		m.password = password
	}
}

func WithSendFunc(send sendFunc) Option {
	return func(m *Mailer) {
		m.send = send
	}
}

func New(host string, port int, from string, options ...Option) (*Mailer, error) {
	if host == "" {
		return nil, errors.New("missing mail host")
	}

	if from == "" {
		return nil, errors.New("missing sender address")
	}

	m := &Mailer{
		host: host,
		port: port,

		from: from,

		markdown: goldmark.New(
			goldmark.WithExtensions(extension.Table),
		),

		send: smtp.SendMail,
	}

	for _, option := range options {
		option(m)
	}

	if m.port == 0 {
		m.port = 587
	}

	return m, nil
}

func (m *Mailer) Send(to, subject, report string) error {
	var body bytes.Buffer

	if err := m.markdown.Convert([]byte(report), &body); err != nil {
		return err
	}

	var msg strings.Builder

	msg.WriteString("From: " + m.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	var auth smtp.Auth

	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	return m.send(addr, auth, m.from, []string{to}, []byte(msg.String()))
}
