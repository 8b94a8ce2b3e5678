package identity

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestParseClaimsSnakeCase(t *testing.T) {
	c := ParseClaims(jwt.MapClaims{
		"first_name":      "Ada",
		"last_name":       "Lovelace",
		"image_url":       "https://img.test/ada.png",
		"email_addresses": []interface{}{"ada@example.com", "ada@work.test"},
	})

	assert.Equal(t, "Ada Lovelace", c.FullName())
	assert.Equal(t, "ada@example.com", c.PrimaryEmail())
	assert.Equal(t, "https://img.test/ada.png", c.ImageURL)
}

func TestParseClaimsCamelCaseObjects(t *testing.T) {
	c := ParseClaims(jwt.MapClaims{
		"firstName": "Grace",
		"emailAddresses": []interface{}{
			map[string]interface{}{"emailAddress": "grace@example.com"},
		},
	})

	assert.Equal(t, "Grace", c.FullName())
	assert.Equal(t, "grace@example.com", c.PrimaryEmail())
}

func TestParseClaimsSingleEmail(t *testing.T) {
	c := ParseClaims(jwt.MapClaims{"email": "solo@example.com"})
	assert.Equal(t, "solo@example.com", c.PrimaryEmail())
}

func TestParseClaimsToleratesWrongShapes(t *testing.T) {
	c := ParseClaims(jwt.MapClaims{
		"first_name":      42,
		"email_addresses": "not-a-list",
		"image_url":       nil,
	})

	assert.Empty(t, c.FullName())
	assert.Empty(t, c.PrimaryEmail())
	assert.Empty(t, c.ImageURL)
}

func TestPrimaryEmailSkipsBlank(t *testing.T) {
	c := Claims{EmailAddresses: []string{"  ", "b@example.com"}}
	assert.Equal(t, "b@example.com", c.PrimaryEmail())
}
