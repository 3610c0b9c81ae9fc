package store

import (
	"sort"
	"sync"
	"time"

	"github.com/ramzanpremierleague18-max/rpl-tournament/models"
)

// MemoryStore is an in-memory RegistrationStore with the same observable
// semantics as GormStore (autoincrement ids, newest-first listing).
// Used by tests and as a collaborator stand-in; not durable.
type MemoryStore struct {
	mu     sync.Mutex
	nextID uint
	regs   map[uint]models.Registration
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		regs:   make(map[uint]models.Registration),
	}
}

func (s *MemoryStore) Insert(reg *models.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg.ID = s.nextID
	s.nextID++
	if reg.CreatedAt.IsZero() {
		reg.CreatedAt = time.Now()
	}
	if reg.PaymentStatus == "" {
		reg.PaymentStatus = models.PaymentPending
	}
	s.regs[reg.ID] = *reg
	return nil
}

func (s *MemoryStore) GetByID(id uint) (*models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg, ok := s.regs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &reg, nil
}

func (s *MemoryStore) ListAll() ([]models.Registration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	regs := make([]models.Registration, 0, len(s.regs))
	for _, reg := range s.regs {
		regs = append(regs, reg)
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i].ID > regs[j].ID })
	return regs, nil
}

func (s *MemoryStore) UpdateStatus(id uint, status models.PaymentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reg, ok := s.regs[id]
	if !ok {
		return ErrNotFound
	}
	reg.PaymentStatus = status
	s.regs[id] = reg
	return nil
}

func (s *MemoryStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.regs[id]; !ok {
		return ErrNotFound
	}
	delete(s.regs, id)
	return nil
}
