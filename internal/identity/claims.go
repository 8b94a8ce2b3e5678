// Package identity exposes the caller's identity-provider subject and
// profile claims. Tokens are verified by middleware before these helpers
// run.
package identity

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the optional profile data carried by a session token. Every
// field may be empty.
type Claims struct {
	FirstName      string
	LastName       string
	EmailAddresses []string
	ImageURL       string
}

// FullName joins first and last name, trimmed. Empty when both are absent.
func (c Claims) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName))
}

// PrimaryEmail returns the first non-empty email address.
func (c Claims) PrimaryEmail() string {
	for _, e := range c.EmailAddresses {
		if e = strings.TrimSpace(e); e != "" {
			return e
		}
	}
	return ""
}

// ParseClaims reads profile claims from a token's claim map. Both
// snake_case and camelCase keys are accepted. Email addresses may be plain
// strings or objects with an email_address field.
func ParseClaims(m jwt.MapClaims) Claims {
	c := Claims{
		FirstName: stringClaim(m, "first_name", "firstName", "given_name"),
		LastName:  stringClaim(m, "last_name", "lastName", "family_name"),
		ImageURL:  stringClaim(m, "image_url", "imageUrl", "picture"),
	}

	for _, key := range []string{"email_addresses", "emailAddresses"} {
		if list, ok := m[key].([]interface{}); ok {
			c.EmailAddresses = append(c.EmailAddresses, emailList(list)...)
		}
	}
	if email := stringClaim(m, "email"); email != "" {
		c.EmailAddresses = append(c.EmailAddresses, email)
	}
	return c
}

func stringClaim(m jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func emailList(list []interface{}) []string {
	out := make([]string, 0, len(list))
	for _, item := range list {
		switch v := item.(type) {
		case string:
			out = append(out, v)
		case map[string]interface{}:
			for _, k := range []string{"email_address", "emailAddress"} {
				if s, ok := v[k].(string); ok && s != "" {
					out = append(out, s)
					break
				}
			}
		}
	}
	return out
}
