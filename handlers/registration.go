package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ramzanpremierleague18-max/rpl-tournament/services"
)

// SetupRegistrationRoutes registers the public intake surface.
func SetupRegistrationRoutes(app *fiber.App, regService *services.RegistrationService, qrService *services.QRService) {
	app.Post("/save-registration", regService.SaveRegistration)

	// Payment QR stays reachable without authentication
	app.Get("/qr", qrService.DataURL)
	app.Get("/qr.png", qrService.PNG)
}
