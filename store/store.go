package store

import (
	"errors"

	"github.com/ramzanpremierleague18-max/rpl-tournament/models"
)

// ErrNotFound is returned when no registration exists for the given id.
var ErrNotFound = errors.New("registration not found")

// RegistrationStore is the durable keyed store for registration records.
type RegistrationStore interface {
	// Insert persists a new record and assigns its id and creation time.
	Insert(reg *models.Registration) error
	// GetByID is a point lookup; ErrNotFound if absent.
	GetByID(id uint) (*models.Registration, error)
	// ListAll returns every record, newest first (id descending).
	ListAll() ([]models.Registration, error)
	// UpdateStatus sets payment_status on the record; ErrNotFound if absent.
	UpdateStatus(id uint, status models.PaymentStatus) error
	// Delete removes the record; ErrNotFound if absent.
	Delete(id uint) error
}
