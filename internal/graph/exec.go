// Package graph serves schema.graphqls on the gqlgen runtime.
//
// The executable schema binds the schema types to the store models and calls the
// resolvers declared in resolvers.go for every field that is not a plain struct
// field. Request parsing, validation, variable coercion and transports are
// gqlgen's; this package only walks the validated selection sets.
package graph

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"strconv"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/ViniciusKumagai/desafio-tech-pill/internal/graph/model"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/store"
	"github.com/ViniciusKumagai/desafio-tech-pill/pagination"
)

//go:embed schema.graphqls
var sourceData string

var parsedSchema = gqlparser.MustLoadSchema(&ast.Source{Name: "schema.graphqls", Input: sourceData})

// NewExecutableSchema creates an ExecutableSchema from cfg.
func NewExecutableSchema(cfg Config) graphql.ExecutableSchema {
	return &executableSchema{schema: parsedSchema, resolvers: cfg.Resolvers}
}

type executableSchema struct {
	schema    *ast.Schema
	resolvers ResolverRoot
}

func (e *executableSchema) Schema() *ast.Schema {
	return e.schema
}

// Complexity keeps gqlgen's default cost of one per field plus its children.
func (e *executableSchema) Complexity(_ context.Context, _, _ string, _ int, _ map[string]any) (int, bool) {
	return 0, false
}

func (e *executableSchema) Exec(ctx context.Context) graphql.ResponseHandler {
	opCtx := graphql.GetOperationContext(ctx)
	ec := &executionContext{OperationContext: opCtx, schema: e.schema, resolvers: e.resolvers}

	var dispatch func(context.Context, graphql.CollectedField) graphql.Marshaler
	var implementors []string
	switch opCtx.Operation.Operation {
	case ast.Query:
		dispatch, implementors = ec.queryField, queryImplementors
	case ast.Mutation:
		dispatch, implementors = ec.mutationField, mutationImplementors
	default:
		return graphql.OneShot(graphql.ErrorResponse(ctx, "unsupported GraphQL operation"))
	}

	first := true
	return func(ctx context.Context) *graphql.Response {
		if !first {
			return nil
		}
		first = false

		data := ec.root(ctx, opCtx.Operation.SelectionSet, implementors, dispatch)
		var buf bytes.Buffer
		data.MarshalGQL(&buf)
		return &graphql.Response{Data: buf.Bytes()}
	}
}

type executionContext struct {
	*graphql.OperationContext
	schema    *ast.Schema
	resolvers ResolverRoot
}

var (
	queryImplementors           = []string{"Query"}
	mutationImplementors        = []string{"Mutation"}
	pessoaImplementors          = []string{"Pessoa"}
	planoImplementors           = []string{"Plano"}
	planoContratadoImplementors = []string{"PlanoContratado"}
	estatisticasImplementors    = []string{"EstatisticasGerais"}
	pageInfoImplementors        = []string{"PageInfo"}
)

// root resolves the top-level fields in document order, which keeps mutations
// sequential.
func (ec *executionContext) root(ctx context.Context, sel ast.SelectionSet, implementors []string, dispatch func(context.Context, graphql.CollectedField) graphql.Marshaler) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, implementors)
	ctx = graphql.WithFieldContext(ctx, &graphql.FieldContext{Object: implementors[0]})
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		innerCtx := graphql.WithRootFieldContext(ctx, &graphql.RootFieldContext{Object: field.Name, Field: field})
		out.Values[i] = ec.OperationContext.RootResolverMiddleware(innerCtx, func(ctx context.Context) graphql.Marshaler {
			return dispatch(ctx, field)
		})
	}
	return propagate(fields, out)
}

func (ec *executionContext) queryField(ctx context.Context, field graphql.CollectedField) graphql.Marshaler {
	const object = "Query"
	q := ec.resolvers.Query()

	switch field.Name {
	case "__typename":
		return graphql.MarshalString(object)
	case "__schema":
		return resolve(ec, ctx, field, object, false, func(context.Context, map[string]any) (*introspection.Schema, error) {
			return ec.introspectSchema()
		}, ec.___Schema)
	case "__type":
		return resolve(ec, ctx, field, object, false, func(_ context.Context, args map[string]any) (*introspection.Type, error) {
			name, err := arg(args, "name", graphql.UnmarshalString)
			if err != nil {
				return nil, err
			}
			return ec.introspectType(name)
		}, ec.___Type)

	case "pessoas":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, _ map[string]any) ([]store.Pessoa, error) {
			return q.Pessoas(ctx)
		}, ec.marshalPessoas)
	case "pessoa":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) (*store.Pessoa, error) {
			id, err := arg(args, "id", graphql.UnmarshalIntID)
			if err != nil {
				return nil, err
			}
			return q.Pessoa(ctx, id)
		}, ec._Pessoa)
	case "pessoaPorCpf":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) (*store.Pessoa, error) {
			cpf, err := arg(args, "cpf", graphql.UnmarshalString)
			if err != nil {
				return nil, err
			}
			return q.PessoaPorCpf(ctx, cpf)
		}, ec._Pessoa)
	case "pessoaPorEmail":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) (*store.Pessoa, error) {
			email, err := arg(args, "email", graphql.UnmarshalString)
			if err != nil {
				return nil, err
			}
			return q.PessoaPorEmail(ctx, email)
		}, ec._Pessoa)

	case "planos":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, _ map[string]any) ([]store.Plano, error) {
			return q.Planos(ctx)
		}, ec.marshalPlanos)
	case "plano":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) (*store.Plano, error) {
			id, err := arg(args, "id", graphql.UnmarshalIntID)
			if err != nil {
				return nil, err
			}
			return q.Plano(ctx, id)
		}, ec._Plano)
	case "planosPorValorCredito":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) ([]store.Plano, error) {
			lo, err := arg(args, "min", optional(graphql.UnmarshalFloat))
			if err != nil {
				return nil, err
			}
			hi, err := arg(args, "max", optional(graphql.UnmarshalFloat))
			if err != nil {
				return nil, err
			}
			return q.PlanosPorValorCredito(ctx, lo, hi)
		}, ec.marshalPlanos)
	case "planosPorParcelas":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) ([]store.Plano, error) {
			lo, err := arg(args, "min", optional(graphql.UnmarshalInt))
			if err != nil {
				return nil, err
			}
			hi, err := arg(args, "max", optional(graphql.UnmarshalInt))
			if err != nil {
				return nil, err
			}
			return q.PlanosPorParcelas(ctx, lo, hi)
		}, ec.marshalPlanos)

	case "planosContratados":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, _ map[string]any) ([]store.PlanoContratado, error) {
			return q.PlanosContratados(ctx)
		}, ec.marshalPlanosContratados)
	case "planoContratado":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) (*store.PlanoContratado, error) {
			id, err := arg(args, "id", graphql.UnmarshalIntID)
			if err != nil {
				return nil, err
			}
			return q.PlanoContratado(ctx, id)
		}, ec._PlanoContratado)
	case "planosContratadosPorStatus":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) ([]store.PlanoContratado, error) {
			status, err := arg(args, "status", unmarshalStatusPlano)
			if err != nil {
				return nil, err
			}
			return q.PlanosContratadosPorStatus(ctx, status)
		}, ec.marshalPlanosContratados)
	case "planosContratadosPorPessoa":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) ([]store.PlanoContratado, error) {
			id, err := arg(args, "pessoaId", graphql.UnmarshalIntID)
			if err != nil {
				return nil, err
			}
			return q.PlanosContratadosPorPessoa(ctx, id)
		}, ec.marshalPlanosContratados)
	case "planosContratadosPorPlano":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) ([]store.PlanoContratado, error) {
			id, err := arg(args, "planoId", graphql.UnmarshalIntID)
			if err != nil {
				return nil, err
			}
			return q.PlanosContratadosPorPlano(ctx, id)
		}, ec.marshalPlanosContratados)

	case "estatisticasGerais":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, _ map[string]any) (*store.Estatisticas, error) {
			return q.EstatisticasGerais(ctx)
		}, ec._EstatisticasGerais)

	case "pessoasPaginadas":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) (*pagination.Page[store.Pessoa], error) {
			req, err := arg(args, "pagination", optional(unmarshalPaginationInput))
			if err != nil {
				return nil, err
			}
			return q.PessoasPaginadas(ctx, req)
		}, func(ctx context.Context, sel ast.SelectionSet, page *pagination.Page[store.Pessoa]) graphql.Marshaler {
			return marshalConnection(ec, ctx, sel, "Pessoa", page, ec._Pessoa)
		})
	case "planosPaginados":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) (*pagination.Page[store.Plano], error) {
			req, err := arg(args, "pagination", optional(unmarshalPaginationInput))
			if err != nil {
				return nil, err
			}
			return q.PlanosPaginados(ctx, req)
		}, func(ctx context.Context, sel ast.SelectionSet, page *pagination.Page[store.Plano]) graphql.Marshaler {
			return marshalConnection(ec, ctx, sel, "Plano", page, ec._Plano)
		})
	case "planosContratadosPaginados":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) (*pagination.Page[store.PlanoContratado], error) {
			req, err := arg(args, "pagination", optional(unmarshalPaginationInput))
			if err != nil {
				return nil, err
			}
			return q.PlanosContratadosPaginados(ctx, req)
		}, func(ctx context.Context, sel ast.SelectionSet, page *pagination.Page[store.PlanoContratado]) graphql.Marshaler {
			return marshalConnection(ec, ctx, sel, "PlanoContratado", page, ec._PlanoContratado)
		})

	default:
		panic("unknown field " + strconv.Quote(field.Name))
	}
}

func (ec *executionContext) mutationField(ctx context.Context, field graphql.CollectedField) graphql.Marshaler {
	const object = "Mutation"
	m := ec.resolvers.Mutation()

	switch field.Name {
	case "__typename":
		return graphql.MarshalString(object)

	case "criarPessoa":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) (*store.Pessoa, error) {
			input, err := arg(args, "input", unmarshalPessoaInput)
			if err != nil {
				return nil, err
			}
			return m.CriarPessoa(ctx, input)
		}, ec._Pessoa)
	case "atualizarPessoa":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) (*store.Pessoa, error) {
			id, err := arg(args, "id", graphql.UnmarshalIntID)
			if err != nil {
				return nil, err
			}
			input, err := arg(args, "input", unmarshalPessoaUpdateInput)
			if err != nil {
				return nil, err
			}
			return m.AtualizarPessoa(ctx, id, input)
		}, ec._Pessoa)
	case "deletarPessoa":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) (bool, error) {
			id, err := arg(args, "id", graphql.UnmarshalIntID)
			if err != nil {
				return false, err
			}
			return m.DeletarPessoa(ctx, id)
		}, marshalBoolean)

	case "criarPlano":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) (*store.Plano, error) {
			input, err := arg(args, "input", unmarshalPlanoInput)
			if err != nil {
				return nil, err
			}
			return m.CriarPlano(ctx, input)
		}, ec._Plano)
	case "atualizarPlano":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) (*store.Plano, error) {
			id, err := arg(args, "id", graphql.UnmarshalIntID)
			if err != nil {
				return nil, err
			}
			input, err := arg(args, "input", unmarshalPlanoUpdateInput)
			if err != nil {
				return nil, err
			}
			return m.AtualizarPlano(ctx, id, input)
		}, ec._Plano)
	case "deletarPlano":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) (bool, error) {
			id, err := arg(args, "id", graphql.UnmarshalIntID)
			if err != nil {
				return false, err
			}
			return m.DeletarPlano(ctx, id)
		}, marshalBoolean)

	case "contratarPlano":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) (*store.PlanoContratado, error) {
			input, err := arg(args, "input", unmarshalContratarPlanoInput)
			if err != nil {
				return nil, err
			}
			return m.ContratarPlano(ctx, input)
		}, ec._PlanoContratado)
	case "atualizarStatusPlano":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) (*store.PlanoContratado, error) {
			id, err := arg(args, "id", graphql.UnmarshalIntID)
			if err != nil {
				return nil, err
			}
			status, err := arg(args, "status", unmarshalStatusPlano)
			if err != nil {
				return nil, err
			}
			return m.AtualizarStatusPlano(ctx, id, status)
		}, ec._PlanoContratado)
	case "pagarParcela":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) (*store.PlanoContratado, error) {
			id, err := arg(args, "id", graphql.UnmarshalIntID)
			if err != nil {
				return nil, err
			}
			return m.PagarParcela(ctx, id)
		}, ec._PlanoContratado)
	case "cancelarPlano":
		return resolve(ec, ctx, field, object, true, func(ctx context.Context, args map[string]any) (bool, error) {
			id, err := arg(args, "id", graphql.UnmarshalIntID)
			if err != nil {
				return false, err
			}
			return m.CancelarPlano(ctx, id)
		}, marshalBoolean)

	default:
		panic("unknown field " + strconv.Quote(field.Name))
	}
}

func (ec *executionContext) _Pessoa(ctx context.Context, sel ast.SelectionSet, obj *store.Pessoa) graphql.Marshaler {
	if obj == nil {
		return graphql.Null
	}
	const object = "Pessoa"
	fields := graphql.CollectFields(ec.OperationContext, sel, pessoaImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString(object)
		case "id":
			out.Values[i] = graphql.MarshalIntID(obj.ID)
		case "nome":
			out.Values[i] = graphql.MarshalString(obj.Nome)
		case "cpf":
			out.Values[i] = graphql.MarshalString(obj.CPF)
		case "email":
			out.Values[i] = graphql.MarshalString(obj.Email)
		case "telefone":
			out.Values[i] = marshalOptionalString(nonEmpty(obj.Telefone))
		case "planosContratados":
			out.Values[i] = resolve(ec, ctx, field, object, true, func(ctx context.Context, _ map[string]any) ([]store.PlanoContratado, error) {
				return ec.resolvers.Pessoa().PlanosContratados(ctx, obj)
			}, ec.marshalPlanosContratados)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return propagate(fields, out)
}

func (ec *executionContext) _Plano(ctx context.Context, sel ast.SelectionSet, obj *store.Plano) graphql.Marshaler {
	if obj == nil {
		return graphql.Null
	}
	const object = "Plano"
	fields := graphql.CollectFields(ec.OperationContext, sel, planoImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString(object)
		case "id":
			out.Values[i] = graphql.MarshalIntID(obj.ID)
		case "nome":
			out.Values[i] = graphql.MarshalString(obj.Nome)
		case "valorCredito":
			out.Values[i] = marshalFloat(ctx, nil, obj.ValorCredito)
		case "parcelas":
			out.Values[i] = graphql.MarshalInt(obj.Parcelas)
		case "taxaAdmPercentual":
			out.Values[i] = marshalFloat(ctx, nil, obj.TaxaAdmPercentual)
		case "planosContratados":
			out.Values[i] = resolve(ec, ctx, field, object, true, func(ctx context.Context, _ map[string]any) ([]store.PlanoContratado, error) {
				return ec.resolvers.Plano().PlanosContratados(ctx, obj)
			}, ec.marshalPlanosContratados)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return propagate(fields, out)
}

func (ec *executionContext) _PlanoContratado(ctx context.Context, sel ast.SelectionSet, obj *store.PlanoContratado) graphql.Marshaler {
	if obj == nil {
		return graphql.Null
	}
	const object = "PlanoContratado"
	r := ec.resolvers.PlanoContratado()
	fields := graphql.CollectFields(ec.OperationContext, sel, planoContratadoImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString(object)
		case "id":
			out.Values[i] = graphql.MarshalIntID(obj.ID)
		case "pessoa":
			out.Values[i] = resolve(ec, ctx, field, object, true, func(ctx context.Context, _ map[string]any) (*store.Pessoa, error) {
				return r.Pessoa(ctx, obj)
			}, ec._Pessoa)
		case "plano":
			out.Values[i] = resolve(ec, ctx, field, object, true, func(ctx context.Context, _ map[string]any) (*store.Plano, error) {
				return r.Plano(ctx, obj)
			}, ec._Plano)
		case "dataContratacao":
			out.Values[i] = graphql.MarshalString(obj.DataContratacao)
		case "status":
			out.Values[i] = resolve(ec, ctx, field, object, true, func(ctx context.Context, _ map[string]any) (model.StatusPlano, error) {
				return r.Status(ctx, obj)
			}, marshalStatusPlano)
		case "parcelasPagas":
			out.Values[i] = graphql.MarshalInt(obj.ParcelasPagas)
		case "parcelasRestantes":
			out.Values[i] = resolve(ec, ctx, field, object, true, func(ctx context.Context, _ map[string]any) (int, error) {
				return r.ParcelasRestantes(ctx, obj)
			}, marshalInt)
		case "valorParcela":
			out.Values[i] = resolve(ec, ctx, field, object, true, func(ctx context.Context, _ map[string]any) (float64, error) {
				return r.ValorParcela(ctx, obj)
			}, marshalFloat)
		case "progressoPagamento":
			out.Values[i] = resolve(ec, ctx, field, object, true, func(ctx context.Context, _ map[string]any) (float64, error) {
				return r.ProgressoPagamento(ctx, obj)
			}, marshalFloat)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return propagate(fields, out)
}

func (ec *executionContext) _EstatisticasGerais(ctx context.Context, sel ast.SelectionSet, obj *store.Estatisticas) graphql.Marshaler {
	if obj == nil {
		return graphql.Null
	}
	fields := graphql.CollectFields(ec.OperationContext, sel, estatisticasImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("EstatisticasGerais")
		case "totalPessoas":
			out.Values[i] = graphql.MarshalInt(obj.TotalPessoas)
		case "totalPlanos":
			out.Values[i] = graphql.MarshalInt(obj.TotalPlanos)
		case "totalPlanosContratados":
			out.Values[i] = graphql.MarshalInt(obj.TotalPlanosContratados)
		case "planosAtivos":
			out.Values[i] = graphql.MarshalInt(obj.PlanosAtivos)
		case "planosContemplados":
			out.Values[i] = graphql.MarshalInt(obj.PlanosContemplados)
		case "planosInadimplentes":
			out.Values[i] = graphql.MarshalInt(obj.PlanosInadimplentes)
		case "planosQuitados":
			out.Values[i] = graphql.MarshalInt(obj.PlanosQuitados)
		case "valorTotalCredito":
			out.Values[i] = marshalFloat(ctx, nil, obj.ValorTotalCredito)
		case "valorTotalArrecadado":
			out.Values[i] = marshalFloat(ctx, nil, obj.ValorTotalArrecadado)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return propagate(fields, out)
}

func (ec *executionContext) _PageInfo(_ context.Context, sel ast.SelectionSet, obj *pagination.PageInfo) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, pageInfoImplementors)
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString("PageInfo")
		case "hasNextPage":
			out.Values[i] = graphql.MarshalBoolean(obj.HasNextPage)
		case "hasPreviousPage":
			out.Values[i] = graphql.MarshalBoolean(obj.HasPreviousPage)
		case "startCursor":
			out.Values[i] = marshalOptionalString(obj.StartCursor)
		case "endCursor":
			out.Values[i] = marshalOptionalString(obj.EndCursor)
		case "totalCount":
			out.Values[i] = graphql.MarshalInt(obj.TotalCount)
		case "currentPage":
			out.Values[i] = graphql.MarshalInt(obj.CurrentPage)
		case "totalPages":
			out.Values[i] = graphql.MarshalInt(obj.TotalPages)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return propagate(fields, out)
}

// marshalConnection writes a <name>Connection page with its <name>Edge edges.
func marshalConnection[T any](ec *executionContext, ctx context.Context, sel ast.SelectionSet, name string, page *pagination.Page[T], node func(context.Context, ast.SelectionSet, *T) graphql.Marshaler) graphql.Marshaler {
	if page == nil {
		return graphql.Null
	}
	connection, edgeType := name+"Connection", name+"Edge"
	fields := graphql.CollectFields(ec.OperationContext, sel, []string{connection})
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString(connection)
		case "edges":
			ctx := child(ctx, connection, field)
			out.Values[i] = marshalList(ctx, page.Edges, func(ctx context.Context, edge *pagination.Edge[T]) graphql.Marshaler {
				return marshalEdge(ec, ctx, field.Selections, edgeType, edge, node)
			})
		case "pageInfo":
			out.Values[i] = ec._PageInfo(child(ctx, connection, field), field.Selections, &page.PageInfo)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return propagate(fields, out)
}

func marshalEdge[T any](ec *executionContext, ctx context.Context, sel ast.SelectionSet, edgeType string, edge *pagination.Edge[T], node func(context.Context, ast.SelectionSet, *T) graphql.Marshaler) graphql.Marshaler {
	fields := graphql.CollectFields(ec.OperationContext, sel, []string{edgeType})
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString(edgeType)
		case "node":
			out.Values[i] = node(child(ctx, edgeType, field), field.Selections, &edge.Node)
		case "cursor":
			out.Values[i] = graphql.MarshalString(edge.Cursor)
		default:
			panic("unknown field " + strconv.Quote(field.Name))
		}
	}
	return propagate(fields, out)
}

func (ec *executionContext) marshalPessoas(ctx context.Context, sel ast.SelectionSet, v []store.Pessoa) graphql.Marshaler {
	return marshalList(ctx, v, func(ctx context.Context, item *store.Pessoa) graphql.Marshaler {
		return ec._Pessoa(ctx, sel, item)
	})
}

func (ec *executionContext) marshalPlanos(ctx context.Context, sel ast.SelectionSet, v []store.Plano) graphql.Marshaler {
	return marshalList(ctx, v, func(ctx context.Context, item *store.Plano) graphql.Marshaler {
		return ec._Plano(ctx, sel, item)
	})
}

func (ec *executionContext) marshalPlanosContratados(ctx context.Context, sel ast.SelectionSet, v []store.PlanoContratado) graphql.Marshaler {
	return marshalList(ctx, v, func(ctx context.Context, item *store.PlanoContratado) graphql.Marshaler {
		return ec._PlanoContratado(ctx, sel, item)
	})
}

func (ec *executionContext) introspectSchema() (*introspection.Schema, error) {
	if ec.DisableIntrospection {
		return nil, errors.New("introspection disabled")
	}
	return introspection.WrapSchema(ec.schema), nil
}

func (ec *executionContext) introspectType(name string) (*introspection.Type, error) {
	if ec.DisableIntrospection {
		return nil, errors.New("introspection disabled")
	}
	return introspection.WrapTypeFromDef(ec.schema, ec.schema.Types[name]), nil
}
