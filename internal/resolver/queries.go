package resolver

import (
	"context"

	"github.com/ViniciusKumagai/desafio-tech-pill/cache"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/graph/model"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/store"
	"github.com/ViniciusKumagai/desafio-tech-pill/pagination"
)

var (
	pessoasTags   = []string{TagPessoas}
	planosTags    = []string{TagPlanos}
	contratosTags = []string{TagPlanosContratados}
)

func (r *queryResolver) Pessoas(ctx context.Context) ([]store.Pessoa, error) {
	return cached(r.Resolver, ctx, "pessoas", cache.NamespaceEntity, pessoasTags, nil,
		func(ctx context.Context) ([]store.Pessoa, error) {
			return r.store.ListPessoas(ctx), nil
		})
}

func (r *queryResolver) Pessoa(ctx context.Context, id int) (*store.Pessoa, error) {
	return cached(r.Resolver, ctx, "pessoa", cache.NamespaceEntity, pessoasTags, args{"id": id},
		func(ctx context.Context) (*store.Pessoa, error) {
			return found(r.store.GetPessoa(ctx, id))
		})
}

func (r *queryResolver) PessoaPorCpf(ctx context.Context, cpf string) (*store.Pessoa, error) {
	return cached(r.Resolver, ctx, "pessoaPorCpf", cache.NamespaceEntity, pessoasTags, args{"cpf": cpf},
		func(ctx context.Context) (*store.Pessoa, error) {
			return found(r.store.PessoaPorCPF(ctx, cpf))
		})
}

func (r *queryResolver) PessoaPorEmail(ctx context.Context, email string) (*store.Pessoa, error) {
	return cached(r.Resolver, ctx, "pessoaPorEmail", cache.NamespaceEntity, pessoasTags, args{"email": email},
		func(ctx context.Context) (*store.Pessoa, error) {
			return found(r.store.PessoaPorEmail(ctx, email))
		})
}

func (r *queryResolver) Planos(ctx context.Context) ([]store.Plano, error) {
	return cached(r.Resolver, ctx, "planos", cache.NamespaceEntity, planosTags, nil,
		func(ctx context.Context) ([]store.Plano, error) {
			return r.store.ListPlanos(ctx), nil
		})
}

func (r *queryResolver) Plano(ctx context.Context, id int) (*store.Plano, error) {
	return cached(r.Resolver, ctx, "plano", cache.NamespaceEntity, planosTags, args{"id": id},
		func(ctx context.Context) (*store.Plano, error) {
			return found(r.store.GetPlano(ctx, id))
		})
}

func (r *queryResolver) PlanosPorValorCredito(ctx context.Context, minValor, maxValor *float64) ([]store.Plano, error) {
	return cached(r.Resolver, ctx, "planosPorValorCredito", cache.NamespaceEntity, planosTags, bounds(minValor, maxValor),
		func(ctx context.Context) ([]store.Plano, error) {
			return r.store.PlanosPorValorCredito(ctx, minValor, maxValor), nil
		})
}

func (r *queryResolver) PlanosPorParcelas(ctx context.Context, minParcelas, maxParcelas *int) ([]store.Plano, error) {
	return cached(r.Resolver, ctx, "planosPorParcelas", cache.NamespaceEntity, planosTags, bounds(minParcelas, maxParcelas),
		func(ctx context.Context) ([]store.Plano, error) {
			return r.store.PlanosPorParcelas(ctx, minParcelas, maxParcelas), nil
		})
}

func (r *queryResolver) PlanosContratados(ctx context.Context) ([]store.PlanoContratado, error) {
	return cached(r.Resolver, ctx, "planosContratados", cache.NamespaceEntity, contratosTags, nil,
		func(ctx context.Context) ([]store.PlanoContratado, error) {
			return r.store.ListPlanosContratados(ctx), nil
		})
}

func (r *queryResolver) PlanoContratado(ctx context.Context, id int) (*store.PlanoContratado, error) {
	return cached(r.Resolver, ctx, "planoContratado", cache.NamespaceEntity, contratosTags, args{"id": id},
		func(ctx context.Context) (*store.PlanoContratado, error) {
			return found(r.store.GetPlanoContratado(ctx, id))
		})
}

func (r *queryResolver) PlanosContratadosPorStatus(ctx context.Context, status model.StatusPlano) ([]store.PlanoContratado, error) {
	return cached(r.Resolver, ctx, "planosContratadosPorStatus", cache.NamespaceEntity, contratosTags, args{"status": status.String()},
		func(ctx context.Context) ([]store.PlanoContratado, error) {
			return r.store.PlanosContratadosPorStatus(ctx, status.String()), nil
		})
}

func (r *queryResolver) PlanosContratadosPorPessoa(ctx context.Context, pessoaID int) ([]store.PlanoContratado, error) {
	return cached(r.Resolver, ctx, "planosContratadosPorPessoa", cache.NamespaceEntity, contratosTags, args{"pessoaId": pessoaID},
		func(ctx context.Context) ([]store.PlanoContratado, error) {
			return r.store.PlanosContratadosPorPessoa(ctx, pessoaID), nil
		})
}

func (r *queryResolver) PlanosContratadosPorPlano(ctx context.Context, planoID int) ([]store.PlanoContratado, error) {
	return cached(r.Resolver, ctx, "planosContratadosPorPlano", cache.NamespaceEntity, contratosTags, args{"planoId": planoID},
		func(ctx context.Context) ([]store.PlanoContratado, error) {
			return r.store.PlanosContratadosPorPlano(ctx, planoID), nil
		})
}

func (r *queryResolver) EstatisticasGerais(ctx context.Context) (*store.Estatisticas, error) {
	return cached(r.Resolver, ctx, "estatisticasGerais", cache.NamespaceEntity, []string{TagEstatisticas}, nil,
		func(ctx context.Context) (*store.Estatisticas, error) {
			e := r.store.EstatisticasGerais(ctx)
			return &e, nil
		})
}

func (r *queryResolver) PessoasPaginadas(ctx context.Context, req *pagination.Request) (*pagination.Page[store.Pessoa], error) {
	return cached(r.Resolver, ctx, "pessoasPaginadas", cache.NamespacePagination, pessoasTags, pageArgs(req),
		func(ctx context.Context) (*pagination.Page[store.Pessoa], error) {
			return paginate(r.paginator, r.store.ListPessoas(ctx), req)
		})
}

func (r *queryResolver) PlanosPaginados(ctx context.Context, req *pagination.Request) (*pagination.Page[store.Plano], error) {
	return cached(r.Resolver, ctx, "planosPaginados", cache.NamespacePagination, planosTags, pageArgs(req),
		func(ctx context.Context) (*pagination.Page[store.Plano], error) {
			return paginate(r.paginator, r.store.ListPlanos(ctx), req)
		})
}

func (r *queryResolver) PlanosContratadosPaginados(ctx context.Context, req *pagination.Request) (*pagination.Page[store.PlanoContratado], error) {
	return cached(r.Resolver, ctx, "planosContratadosPaginados", cache.NamespacePagination, contratosTags, pageArgs(req),
		func(ctx context.Context) (*pagination.Page[store.PlanoContratado], error) {
			return paginate(r.paginator, r.store.ListPlanosContratados(ctx), req)
		})
}

func paginate[T any](p pagination.Paginator, items []T, req *pagination.Request) (*pagination.Page[T], error) {
	var in pagination.Request
	if req != nil {
		in = *req
	}
	return created(pagination.Apply(p, items, in))
}

// bounds keys a range query by the bounds that were given.
func bounds[N int | float64](lo, hi *N) args {
	a := args{}
	if lo != nil {
		a["min"] = *lo
	}
	if hi != nil {
		a["max"] = *hi
	}
	return a
}

func pageArgs(req *pagination.Request) args {
	if req == nil {
		return nil
	}
	return args{"pagination": req}
}
