package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	ClientIDLocal  = "clientID"
	ClientIDHeader = "X-Client-ID"
)

// EnsureClientID tags every request with a client id, taken from the X-Client-ID
// header or the clientId query parameter and generated when neither is present.
func EnsureClientID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(ClientIDLocal) != nil {
			return c.Next()
		}

		clientID := c.Get(ClientIDHeader)
		if clientID == "" {
			clientID = c.Query("clientId")
		}
		if clientID == "" {
			clientID = uuid.New().String()
		}

		c.Locals(ClientIDLocal, clientID)
		c.Set(ClientIDHeader, clientID)
		return c.Next()
	}
}
