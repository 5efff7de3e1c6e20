package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"home_estimate/internal/domain/catalog"
	"home_estimate/internal/domain/entities"
	"home_estimate/internal/usecase/interfaces"
)

var oregon = entities.Location{Country: "US", State: "OR", City: "Portland", PostalCode: "97201", Street: "1 Main St"}

// memSessions is an in-memory ISessionRepository. Snapshots are copied through
// JSON so callers never share maps with the stored version.
type memSessions struct {
	mu        sync.Mutex
	data      map[string][]byte
	conflicts int
	saves     int
}

var _ interfaces.ISessionRepository = (*memSessions)(nil)

func newMemSessions() *memSessions {
	return &memSessions{data: map[string][]byte{}}
}

func (m *memSessions) Create(_ context.Context, s entities.Session) (entities.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s.Version = 1
	b, err := json.Marshal(s)
	if err != nil {
		return entities.Session{}, err
	}
	m.data[s.ID] = b
	return s, nil
}

func (m *memSessions) GetByID(_ context.Context, id string) (entities.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.get(id)
}

func (m *memSessions) get(id string) (entities.Session, error) {
	b, ok := m.data[id]
	if !ok {
		return entities.Session{}, nil
	}
	var s entities.Session
	err := json.Unmarshal(b, &s)
	return s, err
}

func (m *memSessions) Save(_ context.Context, s entities.Session) (entities.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.conflicts > 0 {
		m.conflicts--
		return entities.Session{}, interfaces.ErrVersionConflict
	}
	stored, err := m.get(s.ID)
	if err != nil {
		return entities.Session{}, err
	}
	if stored.Version != s.Version {
		return entities.Session{}, interfaces.ErrVersionConflict
	}
	s.Version++
	b, err := json.Marshal(s)
	if err != nil {
		return entities.Session{}, err
	}
	m.data[s.ID] = b
	m.saves++
	return s, nil
}

// edit changes the stored snapshot directly, bumping its version the way a
// concurrent request would.
func (m *memSessions) edit(t *testing.T, id string, fn func(s *entities.Session)) {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := m.get(id)
	if err != nil || s.ID == "" {
		t.Fatalf("session %q not stored: %v", id, err)
	}
	s.EnsureMaps()
	fn(&s)
	s.Version++
	b, _ := json.Marshal(s)
	m.data[id] = b
}

func (m *memSessions) snapshot(t *testing.T, id string) entities.Session {
	t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	s, err := m.get(id)
	if err != nil || s.ID == "" {
		t.Fatalf("session %q not stored: %v", id, err)
	}
	s.EnsureMaps()
	return s
}

// seedSession stores a session in Oregon (no sales tax) with the given
// services selected at their minimum quantity.
func seedSession(t *testing.T, repo *memSessions, ids ...entities.ServiceID) string {
	t.Helper()
	ix := catalog.Default()
	s := entities.NewSession("sess-1", time.Date(2026, 10, 15, 8, 5, 0, 0, time.UTC))
	s.Location = oregon
	for _, id := range ids {
		svc, ok := ix.Service(id)
		if !ok {
			t.Fatalf("unknown fixture service %s", id)
		}
		s.Selection[id] = entities.SelectionEntry{ServiceID: id, Quantity: svc.MinQuantity}
	}
	if _, err := repo.Create(context.Background(), s); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return s.ID
}

func priced(labor, material float64, lines ...entities.MaterialLine) *entities.CalculationResult {
	if lines == nil {
		lines = []entities.MaterialLine{}
	}
	return &entities.CalculationResult{LaborCost: labor, MaterialCost: material, MaterialLines: lines}
}

func hardwareGroups() map[string][]entities.FinishingMaterialOption {
	return map[string][]entities.FinishingMaterialOption{
		"handles": {
			{ExternalID: "h-brass", Name: "Brass handle", CostPerUnit: 6, UnitOfMeasurement: "each"},
			{ExternalID: "h-steel", Name: "Steel handle", CostPerUnit: 4, UnitOfMeasurement: "each"},
		},
		"hinges": {
			{ExternalID: "g-soft", Name: "Soft-close hinge", CostPerUnit: 3, UnitOfMeasurement: "each"},
		},
	}
}
