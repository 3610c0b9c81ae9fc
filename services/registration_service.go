package services

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/ramzanpremierleague18-max/rpl-tournament/models"
	"github.com/ramzanpremierleague18-max/rpl-tournament/store"
	"github.com/ramzanpremierleague18-max/rpl-tournament/uploads"
)

// RegistrationService owns the registration lifecycle: intake, the
// pending→verified|rejected transitions, and cascading cleanup on delete.
type RegistrationService struct {
	Store          store.RegistrationStore
	Binder         uploads.Binder
	Notifier       Notifier // nil when mail is not configured
	MaxUploadBytes int64

	validate *validator.Validate
}

func NewRegistrationService(st store.RegistrationStore, binder uploads.Binder, notifier Notifier, maxUploadBytes int64) *RegistrationService {
	return &RegistrationService{
		Store:          st,
		Binder:         binder,
		Notifier:       notifier,
		MaxUploadBytes: maxUploadBytes,
		validate:       validator.New(),
	}
}

type submitRequest struct {
	PlayerName   string `validate:"required"`
	PlayerMobile string `validate:"required"`
	PlayerEmail  string `validate:"required"`
	PlayerRole   string `validate:"required"`
}

var submitFieldNames = map[string]string{
	"PlayerName":   "playerName",
	"PlayerMobile": "playerMobile",
	"PlayerEmail":  "playerEmail",
	"PlayerRole":   "playerRole",
}

// SaveRegistration handles POST /save-registration: multipart form intake.
// All validation happens before any record is persisted.
func (s *RegistrationService) SaveRegistration(c *fiber.Ctx) error {
	req := submitRequest{
		PlayerName:   strings.TrimSpace(c.FormValue("playerName")),
		PlayerMobile: strings.TrimSpace(c.FormValue("playerMobile")),
		PlayerEmail:  strings.TrimSpace(c.FormValue("playerEmail")),
		PlayerRole:   strings.TrimSpace(c.FormValue("playerRole")),
	}

	if err := s.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, submitFieldNames[fe.StructField()])
			}
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "missing required fields: " + strings.Join(missing, ", "),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid form"})
	}

	paymentFile, err := c.FormFile("payment_screenshot")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "payment_screenshot and passport_photo required",
		})
	}
	passportFile, err := c.FormFile("passport_photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "payment_screenshot and passport_photo required",
		})
	}

	for _, f := range []*multipart.FileHeader{paymentFile, passportFile} {
		if f.Size > s.MaxUploadBytes {
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(fiber.Map{
				"error": "upload too large",
			})
		}
	}

	paymentPath, err := s.Binder.Bind("payment_screenshot", paymentFile)
	if err != nil {
		log.Printf("[REG] payment screenshot bind failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "save_failed"})
	}
	passportPath, err := s.Binder.Bind("passport_photo", passportFile)
	if err != nil {
		log.Printf("[REG] passport photo bind failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "save_failed"})
	}

	reg := models.Registration{
		PlayerName:        req.PlayerName,
		PlayerMobile:      req.PlayerMobile,
		PlayerEmail:       req.PlayerEmail,
		PlayerRole:        req.PlayerRole,
		TeamName:          optionalForm(c, "teamName"),
		JerseyNumber:      optionalForm(c, "jerseyNumber"),
		JerseySize:        optionalForm(c, "jerseySize"),
		Category:          optionalForm(c, "category"),
		PassportPhoto:     passportPath,
		PaymentScreenshot: paymentPath,
		PaymentStatus:     models.PaymentPending,
	}

	if err := s.Store.Insert(&reg); err != nil {
		// bound files stay behind; the upload reaper collects them
		log.Printf("[REG] insert failed for %s: %v", reg.PlayerName, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "save_failed"})
	}

	log.Printf("[REG] saved id=%d name=%s", reg.ID, reg.PlayerName)
	return c.JSON(fiber.Map{"ok": true, "id": reg.ID})
}

// ListRegistrations handles GET /registrations: full list, newest first.
func (s *RegistrationService) ListRegistrations(c *fiber.Ctx) error {
	regs, err := s.Store.ListAll()
	if err != nil {
		log.Printf("[REG] list failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "db_failed"})
	}
	return c.JSON(regs)
}

// Verify handles POST /admin/verify/:id. The status transition and the
// notification are two independent steps: once the store persisted the
// change the operation succeeded, whatever the mailer does afterwards.
func (s *RegistrationService) Verify(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := s.Store.UpdateStatus(id, models.PaymentVerified); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found"})
		}
		log.Printf("[REG] verify %d failed: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "verify_failed"})
	}

	reg, err := s.Store.GetByID(id)
	if err != nil {
		// deleted between update and re-read; the transition still happened
		log.Printf("[REG] verify %d re-read failed: %v", id, err)
		return c.JSON(fiber.Map{"ok": true, "email": "skipped"})
	}

	if s.Notifier == nil || reg.PlayerEmail == "" {
		return c.JSON(fiber.Map{"ok": true, "email": "skipped"})
	}
	if err := s.Notifier.SendVerified(reg); err != nil {
		log.Printf("[REG] email failed (non-fatal) for %s: %v", reg.PlayerEmail, err)
		return c.JSON(fiber.Map{"ok": true, "email": "failed", "error": err.Error()})
	}
	log.Printf("[REG] email sent to %s", reg.PlayerEmail)
	return c.JSON(fiber.Map{"ok": true, "email": "sent"})
}

// Reject handles POST /admin/reject/:id. No notification goes out.
func (s *RegistrationService) Reject(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := s.Store.UpdateStatus(id, models.PaymentRejected); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found"})
		}
		log.Printf("[REG] reject %d failed: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "reject_failed"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// Delete handles POST /admin/delete/:id. Bound assets are removed
// best-effort, one by one; a file that won't delete never blocks the
// record deletion.
func (s *RegistrationService) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	reg, err := s.Store.GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found"})
		}
		log.Printf("[REG] delete %d lookup failed: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "delete_failed"})
	}

	for _, p := range reg.AssetPaths() {
		if err := s.Binder.Remove(p); err != nil {
			log.Printf("[REG] asset remove failed for %s: %v", p, err)
		}
	}

	if err := s.Store.Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not_found"})
		}
		log.Printf("[REG] delete %d failed: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "delete_failed"})
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ServeUpload handles GET /uploads/:filename (admin-gated). Resolution is
// basename-only so stored data can never point outside the upload store.
func (s *RegistrationService) ServeUpload(c *fiber.Ctx) error {
	filename := c.Params("filename")

	rc, err := s.Binder.Open(filename)
	if err != nil {
		if errors.Is(err, uploads.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).SendString("Not found")
		}
		log.Printf("[REG] upload open failed for %s: %v", filename, err)
		return c.Status(fiber.StatusInternalServerError).SendString("read failed")
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		log.Printf("[REG] upload read failed for %s: %v", filename, err)
		return c.Status(fiber.StatusInternalServerError).SendString("read failed")
	}

	if ext := filepath.Ext(filename); ext != "" {
		c.Type(strings.TrimPrefix(ext, "."))
	}
	return c.Send(data)
}

func parseID(c *fiber.Ctx) (uint, bool) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func optionalForm(c *fiber.Ctx, key string) *string {
	v := strings.TrimSpace(c.FormValue(key))
	if v == "" {
		return nil
	}
	return &v
}
