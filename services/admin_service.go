package services

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the cookie carrying the admin session token.
const SessionCookie = "admin_token"

// AdminService handles admin login, logout and session status.
type AdminService struct {
	Sessions *SessionStore
	User     string
	Pass     string
}

func NewAdminService(sessions *SessionStore, user, pass string) *AdminService {
	return &AdminService{Sessions: sessions, User: user, Pass: pass}
}

type loginRequest struct {
	User string `json:"user"`
	Pass string `json:"pass"`
}

// Login checks the configured credential pair and issues a session cookie.
func (s *AdminService) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing_credentials"})
	}
	if req.User == "" || req.Pass == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing_credentials"})
	}

	if req.User != s.User || req.Pass != s.Pass {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid_credentials"})
	}

	token, expires, err := s.Sessions.Create(req.User)
	if err != nil {
		log.Printf("[ADMIN] session create failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "login_failed"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"ok": true, "expires": expires.UnixMilli()})
}

// Logout revokes the presented session and clears the cookie.
func (s *AdminService) Logout(c *fiber.Ctx) error {
	if tok := c.Cookies(SessionCookie); tok != "" {
		s.Sessions.Revoke(tok)
	}
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
	})
	return c.JSON(fiber.Map{"ok": true})
}

// Status reports whether the caller holds a live session. Never fails.
func (s *AdminService) Status(c *fiber.Ctx) error {
	loggedIn := s.Sessions.IsValid(c.Cookies(SessionCookie))
	return c.JSON(fiber.Map{"ok": true, "loggedIn": loggedIn})
}
