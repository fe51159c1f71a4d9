package graph

import (
	"context"

	"github.com/ViniciusKumagai/desafio-tech-pill/internal/graph/model"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/store"
	"github.com/ViniciusKumagai/desafio-tech-pill/pagination"
)

// Config binds the schema to its resolvers.
type Config struct {
	Resolvers ResolverRoot
}

// ResolverRoot exposes one resolver per object type with resolved fields.
type ResolverRoot interface {
	Query() QueryResolver
	Mutation() MutationResolver
	Pessoa() PessoaResolver
	Plano() PlanoResolver
	PlanoContratado() PlanoContratadoResolver
}

type QueryResolver interface {
	Pessoas(ctx context.Context) ([]store.Pessoa, error)
	Pessoa(ctx context.Context, id int) (*store.Pessoa, error)
	PessoaPorCpf(ctx context.Context, cpf string) (*store.Pessoa, error)
	PessoaPorEmail(ctx context.Context, email string) (*store.Pessoa, error)
	Planos(ctx context.Context) ([]store.Plano, error)
	Plano(ctx context.Context, id int) (*store.Plano, error)
	PlanosPorValorCredito(ctx context.Context, min *float64, max *float64) ([]store.Plano, error)
	PlanosPorParcelas(ctx context.Context, min *int, max *int) ([]store.Plano, error)
	PlanosContratados(ctx context.Context) ([]store.PlanoContratado, error)
	PlanoContratado(ctx context.Context, id int) (*store.PlanoContratado, error)
	PlanosContratadosPorStatus(ctx context.Context, status model.StatusPlano) ([]store.PlanoContratado, error)
	PlanosContratadosPorPessoa(ctx context.Context, pessoaID int) ([]store.PlanoContratado, error)
	PlanosContratadosPorPlano(ctx context.Context, planoID int) ([]store.PlanoContratado, error)
	EstatisticasGerais(ctx context.Context) (*store.Estatisticas, error)
	PessoasPaginadas(ctx context.Context, pagination *pagination.Request) (*pagination.Page[store.Pessoa], error)
	PlanosPaginados(ctx context.Context, pagination *pagination.Request) (*pagination.Page[store.Plano], error)
	PlanosContratadosPaginados(ctx context.Context, pagination *pagination.Request) (*pagination.Page[store.PlanoContratado], error)
}

type MutationResolver interface {
	CriarPessoa(ctx context.Context, input store.PessoaInput) (*store.Pessoa, error)
	AtualizarPessoa(ctx context.Context, id int, input store.PessoaPatch) (*store.Pessoa, error)
	DeletarPessoa(ctx context.Context, id int) (bool, error)
	CriarPlano(ctx context.Context, input store.PlanoInput) (*store.Plano, error)
	AtualizarPlano(ctx context.Context, id int, input store.PlanoPatch) (*store.Plano, error)
	DeletarPlano(ctx context.Context, id int) (bool, error)
	ContratarPlano(ctx context.Context, input store.ContratoInput) (*store.PlanoContratado, error)
	AtualizarStatusPlano(ctx context.Context, id int, status model.StatusPlano) (*store.PlanoContratado, error)
	PagarParcela(ctx context.Context, id int) (*store.PlanoContratado, error)
	CancelarPlano(ctx context.Context, id int) (bool, error)
}

type PessoaResolver interface {
	PlanosContratados(ctx context.Context, obj *store.Pessoa) ([]store.PlanoContratado, error)
}

type PlanoResolver interface {
	PlanosContratados(ctx context.Context, obj *store.Plano) ([]store.PlanoContratado, error)
}

type PlanoContratadoResolver interface {
	Pessoa(ctx context.Context, obj *store.PlanoContratado) (*store.Pessoa, error)
	Plano(ctx context.Context, obj *store.PlanoContratado) (*store.Plano, error)
	Status(ctx context.Context, obj *store.PlanoContratado) (model.StatusPlano, error)
	ParcelasRestantes(ctx context.Context, obj *store.PlanoContratado) (int, error)
	ValorParcela(ctx context.Context, obj *store.PlanoContratado) (float64, error)
	ProgressoPagamento(ctx context.Context, obj *store.PlanoContratado) (float64, error)
}
