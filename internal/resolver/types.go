package resolver

import (
	"context"

	"github.com/ViniciusKumagai/desafio-tech-pill/internal/graph/model"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/store"
)

// Relations and computed fields read the store directly, so a cached parent
// always gets current relations.

func (r *pessoaResolver) PlanosContratados(ctx context.Context, obj *store.Pessoa) ([]store.PlanoContratado, error) {
	return r.store.PlanosContratadosPorPessoa(ctx, obj.ID), nil
}

func (r *planoResolver) PlanosContratados(ctx context.Context, obj *store.Plano) ([]store.PlanoContratado, error) {
	return r.store.PlanosContratadosPorPlano(ctx, obj.ID), nil
}

func (r *planoContratadoResolver) Pessoa(ctx context.Context, obj *store.PlanoContratado) (*store.Pessoa, error) {
	return found(r.store.GetPessoa(ctx, obj.PessoaID))
}

func (r *planoContratadoResolver) Plano(ctx context.Context, obj *store.PlanoContratado) (*store.Plano, error) {
	return found(r.store.GetPlano(ctx, obj.PlanoID))
}

func (r *planoContratadoResolver) Status(_ context.Context, obj *store.PlanoContratado) (model.StatusPlano, error) {
	return model.StatusPlano(obj.Status), nil
}

func (r *planoContratadoResolver) ParcelasRestantes(ctx context.Context, obj *store.PlanoContratado) (int, error) {
	p, ok := r.plano(ctx, obj)
	if !ok {
		return 0, nil
	}
	return p.Parcelas - obj.ParcelasPagas, nil
}

func (r *planoContratadoResolver) ValorParcela(ctx context.Context, obj *store.PlanoContratado) (float64, error) {
	p, ok := r.plano(ctx, obj)
	if !ok {
		return 0, nil
	}
	return p.ValorParcela(), nil
}

func (r *planoContratadoResolver) ProgressoPagamento(ctx context.Context, obj *store.PlanoContratado) (float64, error) {
	p, ok := r.plano(ctx, obj)
	if !ok || p.Parcelas <= 0 {
		return 0, nil
	}
	return float64(obj.ParcelasPagas) / float64(p.Parcelas) * 100, nil
}

// plano looks up the plano of a contract. Computed fields of contracts whose
// plano no longer exists resolve to 0.
func (r *planoContratadoResolver) plano(ctx context.Context, obj *store.PlanoContratado) (store.Plano, bool) {
	p, err := r.store.GetPlano(ctx, obj.PlanoID)
	return p, err == nil
}
