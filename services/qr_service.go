package services

import (
	"encoding/base64"
	"log"
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"
)

const qrFallbackImage = "/images/qr-default.jpg"

// QRService renders the fixed UPI payment identifier as a scannable code.
// Stateless; both endpoints stay reachable without authentication.
type QRService struct {
	UPI    string
	Amount string
}

func NewQRService(upi, amount string) *QRService {
	return &QRService{UPI: strings.TrimSpace(upi), Amount: amount}
}

func (s *QRService) paymentURI() string {
	v := url.Values{}
	v.Set("pa", s.UPI)
	v.Set("am", s.Amount)
	v.Set("tn", "RPL Registration")
	v.Set("cu", "INR")
	return "upi://pay?" + v.Encode()
}

// DataURL responds with a data: URL for the QR PNG as plain text, or the
// static fallback image path when no UPI is configured.
func (s *QRService) DataURL(c *fiber.Ctx) error {
	if s.UPI == "" {
		return c.SendString(qrFallbackImage)
	}
	png, err := qrcode.Encode(s.paymentURI(), qrcode.Medium, 800)
	if err != nil {
		log.Printf("[QR] generation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString(qrFallbackImage)
	}
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.SendString("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
}

// PNG responds with the raw QR image bytes.
func (s *QRService) PNG(c *fiber.Ctx) error {
	if s.UPI == "" {
		return c.Status(fiber.StatusBadRequest).SendString("UPI not configured")
	}
	png, err := qrcode.Encode(s.paymentURI(), qrcode.Medium, 800)
	if err != nil {
		log.Printf("[QR] png failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("QR generation failed")
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
