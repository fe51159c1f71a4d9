package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
)

// ListPlanosContratados returns every contract in insertion order.
func (s *Store) ListPlanosContratados(context.Context) []PlanoContratado {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.db.PlanosContratados)
}

// GetPlanoContratado returns the contract with id.
func (s *Store) GetPlanoContratado(_ context.Context, id int) (PlanoContratado, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.contratoIndex(id)
	if i < 0 {
		return PlanoContratado{}, notFound(CollectionPlanosContratados, id)
	}
	return s.db.PlanosContratados[i], nil
}

// PlanosContratadosPorStatus returns the contracts with status, compared
// case-insensitively.
func (s *Store) PlanosContratadosPorStatus(_ context.Context, status string) []PlanoContratado {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.db.PlanosContratados, func(pc PlanoContratado) bool {
		return strings.EqualFold(pc.Status, status)
	})
}

// PlanosContratadosPorPessoa returns the contracts of a pessoa.
func (s *Store) PlanosContratadosPorPessoa(_ context.Context, pessoaID int) []PlanoContratado {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.db.PlanosContratados, func(pc PlanoContratado) bool { return pc.PessoaID == pessoaID })
}

// PlanosContratadosPorPlano returns the contracts of a plano.
func (s *Store) PlanosContratadosPorPlano(_ context.Context, planoID int) []PlanoContratado {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filter(s.db.PlanosContratados, func(pc PlanoContratado) bool { return pc.PlanoID == planoID })
}

// ContratarPlano creates an active contract with no paid installments. The pessoa
// and the plano must exist.
func (s *Store) ContratarPlano(ctx context.Context, in ContratoInput) (PlanoContratado, error) {
	if err := in.Validate(); err != nil {
		return PlanoContratado{}, invalid(err)
	}

	s.mu.Lock()
	if !slices.ContainsFunc(s.db.Pessoas, func(p Pessoa) bool { return p.ID == in.PessoaID }) {
		s.mu.Unlock()
		return PlanoContratado{}, invalid(fmt.Errorf("pessoa %d does not exist", in.PessoaID))
	}
	if _, err := s.planoLocked(in.PlanoID); err != nil {
		s.mu.Unlock()
		return PlanoContratado{}, invalid(fmt.Errorf("plano %d does not exist", in.PlanoID))
	}

	contrato := PlanoContratado{
		ID:              nextID(s.db.PlanosContratados, func(pc PlanoContratado) int { return pc.ID }),
		PessoaID:        in.PessoaID,
		PlanoID:         in.PlanoID,
		DataContratacao: in.DataContratacao,
		Status:          StatusAtivo,
		ParcelasPagas:   0,
	}
	s.db.PlanosContratados = append(s.db.PlanosContratados, contrato)
	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Change{Collection: CollectionPlanosContratados, Op: OpCreate, ID: contrato.ID})
	return contrato, nil
}

// AtualizarStatus sets the status of a contract. The status is stored lower-cased.
func (s *Store) AtualizarStatus(ctx context.Context, id int, status string) (PlanoContratado, error) {
	normalized, err := NormalizeStatus(status)
	if err != nil {
		return PlanoContratado{}, invalid(err)
	}
	return s.updateContrato(ctx, id, func(pc *PlanoContratado) {
		pc.Status = normalized
	})
}

// PagarParcela records one paid installment. The contract becomes quitado once
// every installment of its plano is paid.
func (s *Store) PagarParcela(ctx context.Context, id int) (PlanoContratado, error) {
	return s.updateContrato(ctx, id, func(pc *PlanoContratado) {
		pc.ParcelasPagas++
		if plano, err := s.planoLocked(pc.PlanoID); err == nil && pc.ParcelasPagas >= plano.Parcelas {
			pc.Status = StatusQuitado
		}
	})
}

// CancelarPlano removes the contract with id.
func (s *Store) CancelarPlano(ctx context.Context, id int) error {
	s.mu.Lock()
	before := len(s.db.PlanosContratados)
	s.db.PlanosContratados = slices.DeleteFunc(s.db.PlanosContratados, func(pc PlanoContratado) bool { return pc.ID == id })
	if len(s.db.PlanosContratados) == before {
		s.mu.Unlock()
		return notFound(CollectionPlanosContratados, id)
	}
	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Change{Collection: CollectionPlanosContratados, Op: OpDelete, ID: id})
	return nil
}

func (s *Store) updateContrato(ctx context.Context, id int, mutate func(*PlanoContratado)) (PlanoContratado, error) {
	s.mu.Lock()
	i := s.contratoIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return PlanoContratado{}, notFound(CollectionPlanosContratados, id)
	}
	mutate(&s.db.PlanosContratados[i])
	contrato := s.db.PlanosContratados[i]
	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Change{Collection: CollectionPlanosContratados, Op: OpUpdate, ID: id})
	return contrato, nil
}

func (s *Store) contratoIndex(id int) int {
	return slices.IndexFunc(s.db.PlanosContratados, func(pc PlanoContratado) bool { return pc.ID == id })
}
