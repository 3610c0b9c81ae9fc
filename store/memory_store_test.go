package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ramzanpremierleague18-max/rpl-tournament/models"
)

func newReg(name string) *models.Registration {
	return &models.Registration{
		PlayerName:        name,
		PlayerMobile:      "9999999999",
		PlayerEmail:       name + "@x.com",
		PlayerRole:        "batsman",
		PassportPhoto:     "/uploads/passport_photo-1.jpg",
		PaymentScreenshot: "/uploads/payment_screenshot-1.png",
		PaymentStatus:     models.PaymentPending,
	}
}

func TestMemoryStoreInsertAssignsIncreasingIDs(t *testing.T) {
	s := NewMemoryStore()

	a, b := newReg("a"), newReg("b")
	require.NoError(t, s.Insert(a))
	require.NoError(t, s.Insert(b))

	assert.Equal(t, uint(1), a.ID)
	assert.Equal(t, uint(2), b.ID)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, s.Insert(newReg(name)))
	}

	regs, err := s.ListAll()
	require.NoError(t, err)
	require.Len(t, regs, 3)
	assert.Equal(t, uint(3), regs[0].ID)
	assert.Equal(t, uint(1), regs[2].ID)
}

func TestMemoryStoreGetByIDUnknown(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.GetByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreUpdateStatus(t *testing.T) {
	s := NewMemoryStore()
	reg := newReg("a")
	require.NoError(t, s.Insert(reg))

	require.NoError(t, s.UpdateStatus(reg.ID, models.PaymentVerified))
	got, err := s.GetByID(reg.ID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentVerified, got.PaymentStatus)

	assert.ErrorIs(t, s.UpdateStatus(99, models.PaymentVerified), ErrNotFound)
}

func TestMemoryStoreDelete(t *testing.T) {
	s := NewMemoryStore()
	reg := newReg("a")
	require.NoError(t, s.Insert(reg))

	require.NoError(t, s.Delete(reg.ID))
	_, err := s.GetByID(reg.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(reg.ID), ErrNotFound)
}
