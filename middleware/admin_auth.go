package middleware

import (
	"encoding/base64"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ramzanpremierleague18-max/rpl-tournament/services"
)

// AdminAuth gates administrative routes. A valid session cookie wins;
// otherwise a single static Basic credential pair is accepted so API
// clients can skip interactive login. The 401 body never says which
// check failed.
func AdminAuth(sessions *services.SessionStore, adminUser, adminPass string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sessions.IsValid(c.Cookies(services.SessionCookie)) {
			return c.Next()
		}

		if user, pass, ok := parseBasic(c.Get("Authorization")); ok {
			if user == adminUser && pass == adminPass {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "auth_required",
		})
	}
}

func parseBasic(header string) (user, pass string, ok bool) {
	const prefix = "Basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", "", false
	}
	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return "", "", false
	}
	idx := strings.IndexByte(string(decoded), ':')
	if idx < 0 {
		return "", "", false
	}
	return string(decoded[:idx]), string(decoded[idx+1:]), true
}
