package services

import (
	"net/mail"
	"net/url"
	"strings"

	"github.com/vendora/vendora-backend/internal/platform/apierr"
)

func validEmail(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func validURI(s string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

type fieldErrors []apierr.FieldError

func (fe *fieldErrors) add(field, message string) {
	*fe = append(*fe, apierr.FieldError{Field: field, Message: message})
}
