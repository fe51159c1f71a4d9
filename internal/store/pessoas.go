package store

import (
	"context"
	"slices"
)

// ListPessoas returns every pessoa in insertion order.
func (s *Store) ListPessoas(context.Context) []Pessoa {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.db.Pessoas)
}

// GetPessoa returns the pessoa with id.
func (s *Store) GetPessoa(_ context.Context, id int) (Pessoa, error) {
	return s.findPessoa(CollectionPessoas, id, func(p Pessoa) bool { return p.ID == id })
}

// PessoaPorCPF returns the pessoa with the exact cpf.
func (s *Store) PessoaPorCPF(_ context.Context, cpf string) (Pessoa, error) {
	return s.findPessoa(CollectionPessoas, 0, func(p Pessoa) bool { return p.CPF == cpf })
}

// PessoaPorEmail returns the pessoa with the exact email.
func (s *Store) PessoaPorEmail(_ context.Context, email string) (Pessoa, error) {
	return s.findPessoa(CollectionPessoas, 0, func(p Pessoa) bool { return p.Email == email })
}

func (s *Store) findPessoa(collection string, id int, match func(Pessoa) bool) (Pessoa, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := slices.IndexFunc(s.db.Pessoas, match)
	if i < 0 {
		return Pessoa{}, notFound(collection, id)
	}
	return s.db.Pessoas[i], nil
}

// CreatePessoa validates in and appends a new pessoa.
func (s *Store) CreatePessoa(ctx context.Context, in PessoaInput) (Pessoa, error) {
	if err := in.Validate(); err != nil {
		return Pessoa{}, invalid(err)
	}

	s.mu.Lock()
	pessoa := Pessoa{
		ID:       nextID(s.db.Pessoas, func(p Pessoa) int { return p.ID }),
		Nome:     in.Nome,
		CPF:      in.CPF,
		Email:    in.Email,
		Telefone: in.Telefone,
	}
	s.db.Pessoas = append(s.db.Pessoas, pessoa)
	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Change{Collection: CollectionPessoas, Op: OpCreate, ID: pessoa.ID})
	return pessoa, nil
}

// UpdatePessoa applies the non-nil fields of patch to the pessoa with id.
func (s *Store) UpdatePessoa(ctx context.Context, id int, patch PessoaPatch) (Pessoa, error) {
	if err := patch.Validate(); err != nil {
		return Pessoa{}, invalid(err)
	}

	s.mu.Lock()
	i := slices.IndexFunc(s.db.Pessoas, func(p Pessoa) bool { return p.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return Pessoa{}, notFound(CollectionPessoas, id)
	}
	patch.apply(&s.db.Pessoas[i])
	pessoa := s.db.Pessoas[i]
	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Change{Collection: CollectionPessoas, Op: OpUpdate, ID: id})
	return pessoa, nil
}

// DeletePessoa removes the pessoa with id. Contracts referencing it are kept.
func (s *Store) DeletePessoa(ctx context.Context, id int) error {
	s.mu.Lock()
	before := len(s.db.Pessoas)
	s.db.Pessoas = slices.DeleteFunc(s.db.Pessoas, func(p Pessoa) bool { return p.ID == id })
	if len(s.db.Pessoas) == before {
		s.mu.Unlock()
		return notFound(CollectionPessoas, id)
	}
	s.persist(ctx)
	s.mu.Unlock()

	s.notify(Change{Collection: CollectionPessoas, Op: OpDelete, ID: id})
	return nil
}
