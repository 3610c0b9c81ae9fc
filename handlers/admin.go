package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ramzanpremierleague18-max/rpl-tournament/middleware"
	"github.com/ramzanpremierleague18-max/rpl-tournament/services"
)

// SetupAdminRoutes registers login/status plus the gated review surface.
func SetupAdminRoutes(app *fiber.App, adminService *services.AdminService, regService *services.RegistrationService) {
	// 🔓 Reachable without a session
	app.Post("/admin/login", adminService.Login)
	app.Get("/admin/status", adminService.Status)

	// 🔐 Gated per route; a group mounted at "/" would also swallow the
	// public static frontend and turn unknown paths into 401s
	auth := middleware.AdminAuth(adminService.Sessions, adminService.User, adminService.Pass)

	app.Post("/admin/logout", auth, adminService.Logout)

	app.Get("/registrations", auth, regService.ListRegistrations)
	app.Post("/admin/verify/:id", auth, regService.Verify)
	app.Post("/admin/reject/:id", auth, regService.Reject)
	app.Post("/admin/delete/:id", auth, regService.Delete)

	// Bound assets are served only to admins
	app.Get("/uploads/:filename", auth, regService.ServeUpload)
}
