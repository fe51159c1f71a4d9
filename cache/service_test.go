package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockService for testing GetOrFetch.
type mockService struct {
	values  map[string]any
	tags    map[string][]string
	pending []string
	stale   bool
	setErr  error
	gets    int
	sets    int
	closed  bool
	cleared bool
}

func newMockService() *mockService {
	return &mockService{values: map[string]any{}, tags: map[string][]string{}}
}

func (m *mockService) Get(_ context.Context, ns Namespace, key string) (any, bool) {
	m.gets++
	v, ok := m.values[string(ns)+"|"+key]
	return v, ok
}

func (m *mockService) Set(_ context.Context, ns Namespace, key string, value any, tags ...string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.sets++
	m.values[string(ns)+"|"+key] = value
	m.tags[string(ns)+"|"+key] = tags
	return nil
}

// Snapshot remembers tags for the next SetIfFresh; the mock is not used concurrently.
func (m *mockService) Snapshot(tags ...string) Snapshot {
	m.pending = tags
	return Snapshot{}
}

func (m *mockService) SetIfFresh(ctx context.Context, ns Namespace, key string, value any, _ Snapshot) (bool, error) {
	if m.stale {
		return false, nil
	}
	if err := m.Set(ctx, ns, key, value, m.pending...); err != nil {
		return false, err
	}
	return true, nil
}

func (m *mockService) Delete(_ context.Context, ns Namespace, key string) {
	delete(m.values, string(ns)+"|"+key)
}

func (m *mockService) InvalidatePattern(context.Context, string) int { return 0 }
func (m *mockService) InvalidateTags(context.Context, ...string) int { return 0 }
func (m *mockService) InvalidateEntity(context.Context, string) int { return 0 }
func (m *mockService) ClearAll(context.Context) { m.cleared = true }
func (m *mockService) Stats() map[Namespace]Stats { return nil }
func (m *mockService) Close() error {
	m.closed = true
	return nil
}

var _ Service = (*mockService)(nil)

func TestGetOrFetch_NilInterfaceHit(t *testing.T) {
	mock := newMockService()
	mock.values["entity|test-key"] = nil

	type SomeInterface interface {
		DoSomething() string
	}

	result, err := GetOrFetch[SomeInterface](context.Background(), mock, NamespaceEntity, "test-key", nil, func(ctx context.Context) (SomeInterface, error) {
		t.Fatal("fetch must not run on a hit")
		return nil, nil
	})

	if err != nil {
		t.Errorf("expected no error but got: %v", err)
	}
	if result != nil {
		t.Errorf("expected nil result but got: %v", result)
	}
}

func TestGetOrFetch_NilPointerHit(t *testing.T) {
	mock := newMockService()
	mock.values["entity|test-key"] = (*string)(nil)

	result, err := GetOrFetch[*string](context.Background(), mock, NamespaceEntity, "test-key", nil, func(ctx context.Context) (*string, error) {
		return nil, errors.New("not called")
	})

	if err != nil {
		t.Errorf("expected no error but got: %v", err)
	}
	if result != nil {
		t.Errorf("expected nil result but got: %v", result)
	}
}

func TestGetOrFetch_TypeAssertionFailure(t *testing.T) {
	mock := newMockService()
	mock.values["entity|test-key"] = "wrong-type"

	result, err := GetOrFetch[int](context.Background(), mock, NamespaceEntity, "test-key", nil, func(ctx context.Context) (int, error) {
		return 42, nil
	})

	if !errors.Is(err, ErrInvalidResultType) {
		t.Errorf("expected ErrInvalidResultType but got: %v", err)
	}
	if result != 0 {
		t.Errorf("expected zero value (0) but got: %v", result)
	}
}

func TestGetOrFetch_MissStoresResult(t *testing.T) {
	mock := newMockService()
	calls := 0

	fetch := func(ctx context.Context) (string, error) {
		calls++
		return "test-value", nil
	}

	for i := 0; i < 3; i++ {
		result, err := GetOrFetch(context.Background(), mock, NamespacePagination, "k", []string{"pessoas"}, fetch)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result != "test-value" {
			t.Errorf("expected 'test-value' but got: '%s'", result)
		}
	}

	if calls != 1 {
		t.Errorf("expected fetch to run once, ran %d times", calls)
	}
	if got := mock.tags["pagination|k"]; len(got) != 1 || got[0] != "pessoas" {
		t.Errorf("expected tags [pessoas], got %v", got)
	}
}

func TestGetOrFetch_FetchErrorIsNotCached(t *testing.T) {
	mock := newMockService()
	wantErr := errors.New("record store unavailable")

	_, err := GetOrFetch(context.Background(), mock, NamespaceEntity, "k", nil, func(ctx context.Context) (int, error) {
		return 0, wantErr
	})

	if !errors.Is(err, wantErr) {
		t.Errorf("expected %v, got %v", wantErr, err)
	}
	if mock.sets != 0 {
		t.Errorf("expected no cache writes, got %d", mock.sets)
	}
}

func TestGetOrFetch_SetError(t *testing.T) {
	mock := newMockService()
	mock.setErr = ErrUnknownNamespace

	_, err := GetOrFetch(context.Background(), mock, Namespace("other"), "k", nil, func(ctx context.Context) (int, error) {
		return 1, nil
	})

	if !errors.Is(err, ErrUnknownNamespace) {
		t.Errorf("expected ErrUnknownNamespace, got %v", err)
	}
}

func TestConfig_DefaultsAndValidate(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Entity.TTL != 300*time.Second || cfg.Pagination.TTL != 120*time.Second {
		t.Errorf("unexpected default TTLs: entity=%v pagination=%v", cfg.Entity.TTL, cfg.Pagination.TTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	cfg.Pagination.TTL = 0
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for zero TTL")
	}
}

func TestNewService(t *testing.T) {
	svc, err := NewService(DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer svc.Close()

	ctx := context.Background()
	key := GenerateKey("pessoa", map[string]any{"id": 1})

	got, err := GetOrFetch(ctx, svc, NamespaceEntity, key, []string{"pessoas"}, func(ctx context.Context) (string, error) {
		return "Ana", nil
	})
	if err != nil || got != "Ana" {
		t.Fatalf("GetOrFetch() = %q, %v", got, err)
	}

	if removed := svc.InvalidateEntity(ctx, "pessoas"); removed != 1 {
		t.Errorf("expected 1 invalidated entry, got %d", removed)
	}
	if _, ok := svc.Get(ctx, NamespaceEntity, key); ok {
		t.Error("expected entry to be invalidated")
	}

	bad := DefaultConfig()
	bad.Entity.Capacity = 0
	if svc, err := NewService(bad); err == nil || svc != nil {
		t.Errorf("expected nil service and error, got %v, %v", svc, err)
	}
}

func TestGetOrFetch_StaleResultIsReturnedButNotStored(t *testing.T) {
	mock := newMockService()
	mock.stale = true

	result, err := GetOrFetch(context.Background(), mock, NamespaceEntity, "k", []string{"planos"}, func(ctx context.Context) (string, error) {
		return "old", nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "old" {
		t.Errorf("expected the fetched value to be returned, got %q", result)
	}
	if mock.sets != 0 {
		t.Errorf("expected no cache writes, got %d", mock.sets)
	}
}
