package models

import "time"

// PaymentStatus is the review state of a registration's payment proof.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentVerified PaymentStatus = "verified"
	PaymentRejected PaymentStatus = "rejected"
)

// Registration is a player's tournament signup.
// Required player fields are set once at creation and never mutated;
// only PaymentStatus changes afterwards, by explicit admin action.
type Registration struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	PlayerName   string `gorm:"not null" json:"playerName"`
	PlayerMobile string `gorm:"not null" json:"playerMobile"`
	PlayerEmail  string `gorm:"not null" json:"playerEmail"`
	PlayerRole   string `gorm:"not null" json:"playerRole"`

	// Optional attributes — nil means the form never supplied them
	TeamName     *string `json:"teamName,omitempty"`
	JerseyNumber *string `json:"jerseyNumber,omitempty"`
	JerseySize   *string `json:"jerseySize,omitempty"`
	Category     *string `json:"category,omitempty"`
	Screenshot   *string `json:"screenshot,omitempty"`
	Aadhaar      *string `json:"aadhaar,omitempty"`

	// Bound upload references, e.g. "/uploads/passport_photo-...-.jpg"
	PassportPhoto     string `gorm:"column:passport_photo;not null" json:"passport_photo"`
	PaymentScreenshot string `gorm:"column:payment_screenshot;not null" json:"payment_screenshot"`

	PaymentStatus PaymentStatus `gorm:"column:payment_status;type:varchar(16);default:'pending'" json:"payment_status"`
	CreatedAt     time.Time     `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Registration) TableName() string {
	return "registrations"
}

// AssetPaths returns every upload reference bound to the record,
// in deletion order for cascading cleanup.
func (r *Registration) AssetPaths() []string {
	var paths []string
	add := func(p string) {
		if p != "" {
			paths = append(paths, p)
		}
	}
	add(r.PaymentScreenshot)
	add(r.PassportPhoto)
	if r.Screenshot != nil {
		add(*r.Screenshot)
	}
	if r.Aadhaar != nil {
		add(*r.Aadhaar)
	}
	return paths
}
