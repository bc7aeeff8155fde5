package catalog

import (
	"context"
	"errors"
	"testing"
)

type mockProductRepo struct {
	data map[int]*Product
}

func (m *mockProductRepo) Create(_ context.Context, p *Product) error {
	m.data[p.ID] = p
	return nil
}
func (m *mockProductRepo) GetByID(_ context.Context, id int) (*Product, error) {
	if p, ok := m.data[id]; ok {
		return p, nil
	}
	return nil, ErrNotFound
}
func (m *mockProductRepo) GetActive(_ context.Context, id int) (*Product, error) {
	if p, ok := m.data[id]; ok && p.Active {
		return p, nil
	}
	return nil, ErrNotFound
}
func (m *mockProductRepo) List(_ context.Context, limit, offset int) ([]*Product, int, error) {
	var out []*Product
	for _, p := range m.data {
		out = append(out, p)
	}
	return out, len(out), nil
}
func (m *mockProductRepo) SetActive(_ context.Context, id int, active bool) error {
	p, ok := m.data[id]
	if !ok {
		return ErrNotFound
	}
	p.Active = active
	return nil
}

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func newTestService() (*Service, *mockProductRepo) {
	repo := &mockProductRepo{data: make(map[int]*Product)}
	return NewService(repo), repo
}

func TestService_Create(t *testing.T) {
	svc, repo := newTestService()
	p := &Product{ID: 1, Name: "Test Product", PriceAdmin: floatPtr(199.99), Active: true}
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.data[1]; !ok {
		t.Error("expected product to be persisted")
	}
}

func TestService_Create_MissingName(t *testing.T) {
	svc, _ := newTestService()
	if err := svc.Create(context.Background(), &Product{ID: 1}); err == nil {
		t.Error("expected error for missing name")
	}
}

func TestService_Create_NegativePrice(t *testing.T) {
	svc, _ := newTestService()
	p := &Product{ID: 1, Name: "X", PriceAdmin: floatPtr(-1)}
	if err := svc.Create(context.Background(), p); err == nil {
		t.Error("expected error for negative price")
	}
}

func TestService_GetActive(t *testing.T) {
	svc, repo := newTestService()
	repo.data[1] = &Product{ID: 1, Name: "Active", Active: true}
	repo.data[2] = &Product{ID: 2, Name: "Retired", Active: false}

	if _, err := svc.GetActive(context.Background(), 1); err != nil {
		t.Errorf("active product lookup failed: %v", err)
	}
	if _, err := svc.GetActive(context.Background(), 2); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for inactive product, got %v", err)
	}
	if _, err := svc.GetActive(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing product, got %v", err)
	}
}

func TestService_Deactivate(t *testing.T) {
	svc, repo := newTestService()
	repo.data[1] = &Product{ID: 1, Name: "X", Active: true}

	if err := svc.Deactivate(context.Background(), 1); err != nil {
		t.Fatalf("Deactivate error: %v", err)
	}
	if repo.data[1].Active {
		t.Error("expected product to be inactive")
	}
	if err := svc.Deactivate(context.Background(), 42); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestProduct_DisplayName(t *testing.T) {
	p := &Product{Name: "Collagen Sheet"}
	if p.DisplayName() != "Collagen Sheet" {
		t.Errorf("unexpected display name %q", p.DisplayName())
	}
	p.Size = strPtr("2x2")
	if p.DisplayName() != "Collagen Sheet 2x2" {
		t.Errorf("unexpected display name %q", p.DisplayName())
	}
}
