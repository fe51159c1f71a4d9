package store

import (
	"context"
	"slices"
)

// ListPlanos returns every plano in insertion order.
func (s *Store) ListPlanos(context.Context) []Plano {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.db.Planos)
}

// GetPlano returns the plano with id.
func (s *Store) GetPlano(_ context.Context, id int) (Plano, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.planoLocked(id)
}

func (s *Store) planoLocked(id int) (Plano, error) {
	i := slices.IndexFunc(s.db.Planos, func(p Plano) bool { return p.ID == id })
	if i < 0 {
		return Plano{}, notFound(CollectionPlanos, id)
	}
	return s.db.Planos[i], nil
}

// PlanosPorValorCredito returns the planos whose credit lies within [min, max].
// A nil bound is open.
func (s *Store) PlanosPorValorCredito(_ context.Context, minValor, maxValor *float64) []Plano {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.db.Planos, func(p Plano) bool {
		return within(p.ValorCredito, minValor, maxValor)
	})
}

// PlanosPorParcelas returns the planos whose installment count lies within
// [min, max]. A nil bound is open.
func (s *Store) PlanosPorParcelas(_ context.Context, minParcelas, maxParcelas *int) []Plano {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.db.Planos, func(p Plano) bool {
		return within(p.Parcelas, minParcelas, maxParcelas)
	})
}

func within[N int | float64](v N, lo, hi *N) bool {
	if lo != nil && v < *lo {
		return false
	}
	if hi != nil && v > *hi {
		return false
	}
	return true
}

// CreatePlano validates in and appends a new plano.
func (s *Store) CreatePlano(ctx context.Context, in PlanoInput) (Plano, error) {
	if err := in.Validate(); err != nil {
		return Plano{}, invalid(err)
	}

	s.mu.Lock()
	plano := Plano{
		ID:                nextID(s.db.Planos, func(p Plano) int { return p.ID }),
		Nome:              in.Nome,
		ValorCredito:      in.ValorCredito,
		Parcelas:          in.Parcelas,
		TaxaAdmPercentual: in.TaxaAdmPercentual,
	}
	s.db.Planos = append(s.db.Planos, plano)
	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Change{Collection: CollectionPlanos, Op: OpCreate, ID: plano.ID})
	return plano, nil
}

// UpdatePlano applies the non-nil fields of patch to the plano with id.
func (s *Store) UpdatePlano(ctx context.Context, id int, patch PlanoPatch) (Plano, error) {
	if err := patch.Validate(); err != nil {
		return Plano{}, invalid(err)
	}

	s.mu.Lock()
	i := slices.IndexFunc(s.db.Planos, func(p Plano) bool { return p.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return Plano{}, notFound(CollectionPlanos, id)
	}
	patch.apply(&s.db.Planos[i])
	plano := s.db.Planos[i]
	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Change{Collection: CollectionPlanos, Op: OpUpdate, ID: id})
	return plano, nil
}

// DeletePlano removes the plano with id.
func (s *Store) DeletePlano(ctx context.Context, id int) error {
	s.mu.Lock()
	before := len(s.db.Planos)
	s.db.Planos = slices.DeleteFunc(s.db.Planos, func(p Plano) bool { return p.ID == id })
	if len(s.db.Planos) == before {
		s.mu.Unlock()
		return notFound(CollectionPlanos, id)
	}
	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Change{Collection: CollectionPlanos, Op: OpDelete, ID: id})
	return nil
}
