package resolver

import (
	"context"

	"github.com/ViniciusKumagai/desafio-tech-pill/internal/graph/model"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/store"
)

// Every write invalidates its collection. Writes that find no record resolve to
// null or false.

func (r *mutationResolver) CriarPessoa(ctx context.Context, input store.PessoaInput) (*store.Pessoa, error) {
	return invalidating(r.Resolver, ctx, TagPessoas, nil, func(ctx context.Context) (*store.Pessoa, error) {
		return created(r.store.CreatePessoa(ctx, input))
	})
}

func (r *mutationResolver) AtualizarPessoa(ctx context.Context, id int, input store.PessoaPatch) (*store.Pessoa, error) {
	return invalidating(r.Resolver, ctx, TagPessoas, nil, func(ctx context.Context) (*store.Pessoa, error) {
		return created(r.store.UpdatePessoa(ctx, id, input))
	})
}

func (r *mutationResolver) DeletarPessoa(ctx context.Context, id int) (bool, error) {
	return invalidating(r.Resolver, ctx, TagPessoas, false, func(ctx context.Context) (bool, error) {
		return deleted(r.store.DeletePessoa(ctx, id))
	})
}

func (r *mutationResolver) CriarPlano(ctx context.Context, input store.PlanoInput) (*store.Plano, error) {
	return invalidating(r.Resolver, ctx, TagPlanos, nil, func(ctx context.Context) (*store.Plano, error) {
		return created(r.store.CreatePlano(ctx, input))
	})
}

func (r *mutationResolver) AtualizarPlano(ctx context.Context, id int, input store.PlanoPatch) (*store.Plano, error) {
	return invalidating(r.Resolver, ctx, TagPlanos, nil, func(ctx context.Context) (*store.Plano, error) {
		return created(r.store.UpdatePlano(ctx, id, input))
	})
}

func (r *mutationResolver) DeletarPlano(ctx context.Context, id int) (bool, error) {
	return invalidating(r.Resolver, ctx, TagPlanos, false, func(ctx context.Context) (bool, error) {
		return deleted(r.store.DeletePlano(ctx, id))
	})
}

func (r *mutationResolver) ContratarPlano(ctx context.Context, input store.ContratoInput) (*store.PlanoContratado, error) {
	return invalidating(r.Resolver, ctx, TagPlanosContratados, nil, func(ctx context.Context) (*store.PlanoContratado, error) {
		return created(r.store.ContratarPlano(ctx, input))
	})
}

func (r *mutationResolver) AtualizarStatusPlano(ctx context.Context, id int, status model.StatusPlano) (*store.PlanoContratado, error) {
	return invalidating(r.Resolver, ctx, TagPlanosContratados, nil, func(ctx context.Context) (*store.PlanoContratado, error) {
		return created(r.store.AtualizarStatus(ctx, id, status.String()))
	})
}

func (r *mutationResolver) PagarParcela(ctx context.Context, id int) (*store.PlanoContratado, error) {
	return invalidating(r.Resolver, ctx, TagPlanosContratados, nil, func(ctx context.Context) (*store.PlanoContratado, error) {
		return created(r.store.PagarParcela(ctx, id))
	})
}

func (r *mutationResolver) CancelarPlano(ctx context.Context, id int) (bool, error) {
	return invalidating(r.Resolver, ctx, TagPlanosContratados, false, func(ctx context.Context) (bool, error) {
		return deleted(r.store.CancelarPlano(ctx, id))
	})
}

func deleted(err error) (bool, error) {
	if err != nil {
		return false, err
	}
	return true, nil
}
