package identity

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated caller.
type Identity struct {
	// ExternalID is the identity provider's stable subject.
	ExternalID string
	Claims     Claims
}

// FromContext extracts the caller from the verified JWT in context locals.
func FromContext(c *fiber.Ctx) (Identity, error) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return Identity{}, errors.New("invalid token in context")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Identity{}, errors.New("missing sub claim")
	}

	return Identity{ExternalID: sub, Claims: ParseClaims(claims)}, nil
}

// GetExternalID extracts only the subject.
func GetExternalID(c *fiber.Ctx) (string, error) {
	id, err := FromContext(c)
	if err != nil {
		return "", err
	}
	return id.ExternalID, nil
}
