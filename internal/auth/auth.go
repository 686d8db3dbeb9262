package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/basicauth"
)

// DefaultRealm is announced in the basic auth challenge.
const DefaultRealm = "AI Cruise Bot Admin"

// Credentials are the configured admin username and password.
type Credentials struct {
	Username string
	Password string
}

// UnauthorizedResponse is the body of a rejected admin request.
type UnauthorizedResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Middleware gates admin routes behind HTTP basic auth.
// When either configured value is empty every request is rejected.
func Middleware(creds Credentials, realm string) fiber.Handler {
	if realm == "" {
		realm = DefaultRealm
	}
	return basicauth.New(basicauth.Config{
		Realm:        realm,
		Authorizer:   NewAuthorizer(creds),
		Unauthorized: unauthorized(realm),
	})
}

// NewAuthorizer returns a basic auth check that compares both values in constant time.
func NewAuthorizer(creds Credentials) func(username, password string) bool {
	return func(username, password string) bool {
		if creds.Username == "" || creds.Password == "" {
			return false
		}
		userOK := subtle.ConstantTimeCompare([]byte(username), []byte(creds.Username))
		passOK := subtle.ConstantTimeCompare([]byte(password), []byte(creds.Password))
		return userOK&passOK == 1
	}
}

func unauthorized(realm string) fiber.Handler {
	challenge := fmt.Sprintf("Basic realm=%q", realm)
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderWWWAuthenticate, challenge)
		return c.Status(fiber.StatusUnauthorized).JSON(UnauthorizedResponse{
			Code:    fiber.StatusUnauthorized,
			Message: "Incorrect username or password",
		})
	}
}
