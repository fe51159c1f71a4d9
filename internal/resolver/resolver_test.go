package resolver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/99designs/gqlgen/graphql"
	"github.com/ViniciusKumagai/desafio-tech-pill/cache"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/graph"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/store"
	"github.com/ViniciusKumagai/desafio-tech-pill/pagination"
	"github.com/ViniciusKumagai/desafio-tech-pill/pkg/testsupport"
	"github.com/ViniciusKumagai/desafio-tech-pill/querycache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store    *store.Store
	cache    cache.Service
	resolver *Resolver
	executor *graph.Executor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	st := store.Open(testsupport.MockDB(t), nil)
	svc, err := cache.NewService(cache.DefaultConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = svc.Close() })

	r := New(st, querycache.New(svc, nil, nil))
	return &fixture{
		store:    st,
		cache:    svc,
		resolver: r,
		executor: graph.NewExecutor(graph.NewExecutableSchema(graph.Config{Resolvers: r}), nil),
	}
}

// run executes query and returns the decoded data. Field errors fail the test.
func (f *fixture) run(t *testing.T, query string, vars map[string]any) map[string]any {
	t.Helper()
	data, errs := f.try(t, query, vars)
	require.Empty(t, errs)
	return data
}

func (f *fixture) try(t *testing.T, query string, vars map[string]any) (map[string]any, []string) {
	t.Helper()
	resp := f.executor.Execute(context.Background(), graphql.RawParams{Query: query, Variables: vars})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	var out struct {
		Data   map[string]any `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(raw, &out))

	var messages []string
	for _, e := range out.Errors {
		messages = append(messages, e.Message)
	}
	return out.Data, messages
}

func TestQueries_ServedFromCache(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	data := f.run(t, `{ planos { id } }`, nil)
	assert.Len(t, data["planos"], 3)

	// A write that bypasses the resolvers is not visible until invalidation.
	_, err := f.store.CreatePlano(ctx, store.PlanoInput{Nome: "Direto", ValorCredito: 1000, Parcelas: 10})
	require.NoError(t, err)

	data = f.run(t, `{ planos { id } }`, nil)
	assert.Len(t, data["planos"], 3)

	_, ok := f.cache.Get(ctx, cache.NamespaceEntity, "planos:{}")
	assert.True(t, ok)

	f.run(t, `mutation { criarPlano(input: {nome: "Novo", valorCredito: 5000, parcelas: 5, taxaAdmPercentual: 2}) { id } }`, nil)

	_, ok = f.cache.Get(ctx, cache.NamespaceEntity, "planos:{}")
	assert.False(t, ok)

	data = f.run(t, `{ planos { id } }`, nil)
	assert.Len(t, data["planos"], 5)
}

func TestQueries_Lookups(t *testing.T) {
	f := newFixture(t)

	data := f.run(t, `{
		byID: pessoa(id: "2") { nome }
		byCpf: pessoaPorCpf(cpf: "333.333.333-33") { id }
		byEmail: pessoaPorEmail(email: "ana.souza@example.com") { id }
		missing: pessoa(id: 99) { nome }
	}`, nil)

	assert.Equal(t, map[string]any{"nome": "Bruno Lima"}, data["byID"])
	assert.Equal(t, map[string]any{"id": "3"}, data["byCpf"])
	assert.Equal(t, map[string]any{"id": "1"}, data["byEmail"])
	assert.Nil(t, data["missing"])
}

func TestQueries_Filters(t *testing.T) {
	f := newFixture(t)

	data := f.run(t, `{
		credito: planosPorValorCredito(min: 60000) { id }
		parcelas: planosPorParcelas(max: 100) { id }
		status: planosContratadosPorStatus(status: ATIVO) { id }
		porPessoa: planosContratadosPorPessoa(pessoaId: 1) { id }
		porPlano: planosContratadosPorPlano(planoId: 1) { id }
	}`, nil)

	ids := func(key string) []string {
		var out []string
		for _, item := range data[key].([]any) {
			out = append(out, item.(map[string]any)["id"].(string))
		}
		return out
	}
	assert.Equal(t, []string{"2", "3"}, ids("credito"))
	assert.Equal(t, []string{"1", "2"}, ids("parcelas"))
	assert.Equal(t, []string{"1"}, ids("status"))
	assert.Equal(t, []string{"1", "3"}, ids("porPessoa"))
	assert.Equal(t, []string{"1", "4"}, ids("porPlano"))
}

func TestTypeFields_PlanoContratado(t *testing.T) {
	f := newFixture(t)

	data := f.run(t, `{
		planoContratado(id: 1) {
			status
			dataContratacao
			parcelasPagas
			parcelasRestantes
			valorParcela
			progressoPagamento
			pessoa { nome }
			plano { nome valorCredito taxaAdmPercentual }
		}
	}`, nil)

	pc := data["planoContratado"].(map[string]any)
	assert.Equal(t, "ATIVO", pc["status"])
	assert.Equal(t, "2024-01-10", pc["dataContratacao"])
	assert.Equal(t, float64(10), pc["parcelasPagas"])
	assert.Equal(t, float64(40), pc["parcelasRestantes"])
	assert.InDelta(t, 1100.0, pc["valorParcela"], 1e-9)
	assert.InDelta(t, 20.0, pc["progressoPagamento"], 1e-9)
	assert.Equal(t, map[string]any{"nome": "Ana Souza"}, pc["pessoa"])
	assert.Equal(t, map[string]any{"nome": "Plano Bronze", "valorCredito": float64(50000), "taxaAdmPercentual": float64(10)}, pc["plano"])
}

func TestTypeFields_RelationsAreCurrent(t *testing.T) {
	f := newFixture(t)

	query := `{ pessoa(id: 3) { nome planosContratados { id } } }`
	data := f.run(t, query, nil)
	assert.Len(t, data["pessoa"].(map[string]any)["planosContratados"], 1)

	f.run(t, `mutation { contratarPlano(input: {pessoaId: 3, planoId: 2, dataContratacao: "2025-02-01"}) { id status } }`, nil)

	data = f.run(t, query, nil)
	assert.Len(t, data["pessoa"].(map[string]any)["planosContratados"], 2)
}

func TestMutations_Pessoas(t *testing.T) {
	f := newFixture(t)

	data := f.run(t, `mutation($input: PessoaInput!) { criarPessoa(input: $input) { id nome } }`, map[string]any{
		"input": map[string]any{"nome": "Diego", "cpf": "444.444.444-44", "email": "diego@example.com"},
	})
	assert.Equal(t, map[string]any{"id": "4", "nome": "Diego"}, data["criarPessoa"])

	data = f.run(t, `mutation { atualizarPessoa(id: 4, input: {telefone: "(31) 94444-4444"}) { nome telefone } }`, nil)
	assert.Equal(t, map[string]any{"nome": "Diego", "telefone": "(31) 94444-4444"}, data["atualizarPessoa"])

	data = f.run(t, `mutation { a: deletarPessoa(id: 4) b: deletarPessoa(id: 4) c: atualizarPessoa(id: 4, input: {nome: "X"}) { id } }`, nil)
	assert.Equal(t, true, data["a"])
	assert.Equal(t, false, data["b"])
	assert.Nil(t, data["c"])
}

func TestMutations_ValidationErrors(t *testing.T) {
	f := newFixture(t)

	data, errs := f.try(t, `mutation { criarPessoa(input: {nome: "", cpf: "1", email: "nope"}) { id } }`, nil)
	require.Len(t, errs, 1)
	assert.Nil(t, data["criarPessoa"])

	_, errs = f.try(t, `mutation { contratarPlano(input: {pessoaId: 99, planoId: 1, dataContratacao: "2025-01-01"}) { id } }`, nil)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "pessoa 99")

	_, errs = f.try(t, `mutation { atualizarStatusPlano(id: 1, status: PERDIDO) { id } }`, nil)
	require.NotEmpty(t, errs)

	data, errs = f.try(t, `mutation($s: StatusPlano!) { atualizarStatusPlano(id: 1, status: $s) { id } }`, map[string]any{"s": "perdido"})
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "is not a valid StatusPlano")
	assert.Nil(t, data)

	pc, err := f.store.GetPlanoContratado(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, store.StatusAtivo, pc.Status)
}

func TestQueries_StatusFilterRejectsStrayArguments(t *testing.T) {
	f := newFixture(t)

	data, errs := f.try(t, `{ planosContratadosPorStatus(status: ATIVO, id: 1) { id } }`, nil)
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], `Unknown argument "id"`)
	assert.Nil(t, data)

	data = f.run(t, `{ planosContratadosPorStatus(status: QUITADO) { id status } }`, nil)
	assert.Equal(t, []any{map[string]any{"id": "4", "status": "QUITADO"}}, data["planosContratadosPorStatus"])
}

func TestMutations_NotFoundSkipsInvalidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.run(t, `{ planosContratados { id } }`, nil)

	data := f.run(t, `mutation { cancelarPlano(id: 99) pagarParcela(id: 99) { id } }`, nil)
	assert.Equal(t, false, data["cancelarPlano"])
	assert.Nil(t, data["pagarParcela"])

	_, ok := f.cache.Get(ctx, cache.NamespaceEntity, "planosContratados:{}")
	assert.True(t, ok)
}

func TestMutations_InvalidateStatistics(t *testing.T) {
	f := newFixture(t)

	query := `{ estatisticasGerais { planosAtivos planosQuitados } }`
	data := f.run(t, query, nil)
	assert.Equal(t, map[string]any{"planosAtivos": float64(1), "planosQuitados": float64(1)}, data["estatisticasGerais"])

	data = f.run(t, `mutation { atualizarStatusPlano(id: 1, status: QUITADO) { status } }`, nil)
	assert.Equal(t, map[string]any{"status": "QUITADO"}, data["atualizarStatusPlano"])

	data = f.run(t, query, nil)
	assert.Equal(t, map[string]any{"planosAtivos": float64(0), "planosQuitados": float64(2)}, data["estatisticasGerais"])
}

func TestMutations_PagarParcelaQuita(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 39; i++ {
		_, err := f.store.PagarParcela(ctx, 1)
		require.NoError(t, err)
	}

	data := f.run(t, `mutation { pagarParcela(id: 1) { parcelasPagas parcelasRestantes status } }`, nil)
	assert.Equal(t, map[string]any{"parcelasPagas": float64(50), "parcelasRestantes": float64(0), "status": "QUITADO"}, data["pagarParcela"])
}

func TestPaginatedQueries(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	query := `query($p: PaginationInput) {
		pessoasPaginadas(pagination: $p) {
			edges { cursor node { nome } }
			pageInfo { hasNextPage hasPreviousPage endCursor totalCount }
		}
	}`

	data := f.run(t, query, map[string]any{"p": map[string]any{"first": 2}})
	page := data["pessoasPaginadas"].(map[string]any)
	edges := page["edges"].([]any)
	require.Len(t, edges, 2)
	assert.Equal(t, map[string]any{"nome": "Ana Souza"}, edges[0].(map[string]any)["node"])
	assert.Equal(t, pagination.EncodeCursor(0), edges[0].(map[string]any)["cursor"])

	info := page["pageInfo"].(map[string]any)
	assert.Equal(t, true, info["hasNextPage"])
	assert.Equal(t, false, info["hasPreviousPage"])
	assert.Equal(t, float64(3), info["totalCount"])
	assert.Equal(t, pagination.EncodeCursor(1), info["endCursor"])

	key := cache.GenerateKey("pessoasPaginadas", map[string]any{"pagination": map[string]any{"first": float64(2)}})
	_, ok := f.cache.Get(ctx, cache.NamespacePagination, key)
	assert.True(t, ok)
	_, ok = f.cache.Get(ctx, cache.NamespaceEntity, key)
	assert.False(t, ok)

	data = f.run(t, query, map[string]any{"p": map[string]any{"first": 2, "after": info["endCursor"]}})
	edges = data["pessoasPaginadas"].(map[string]any)["edges"].([]any)
	require.Len(t, edges, 1)
	assert.Equal(t, map[string]any{"nome": "Carla Dias"}, edges[0].(map[string]any)["node"])

	f.run(t, `mutation { deletarPessoa(id: 3) }`, nil)
	_, ok = f.cache.Get(ctx, cache.NamespacePagination, key)
	assert.False(t, ok)
}

func TestPaginatedQueries_OffsetMode(t *testing.T) {
	f := newFixture(t)

	data := f.run(t, `{ planosPaginados(pagination: {page: 2, limit: 2}) { edges { node { id } } pageInfo { currentPage totalPages } } }`, nil)
	page := data["planosPaginados"].(map[string]any)
	assert.Equal(t, []any{map[string]any{"node": map[string]any{"id": "3"}}}, page["edges"])
	assert.Equal(t, map[string]any{"currentPage": float64(2), "totalPages": float64(2)}, page["pageInfo"])
}

func TestPaginatedQueries_ConflictingModes(t *testing.T) {
	f := newFixture(t)

	data, errs := f.try(t, `{ planosContratadosPaginados(pagination: {page: 1, first: 2}) { edges { cursor } } }`, nil)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], pagination.ErrConflictingModes.Error())
	assert.Nil(t, data["planosContratadosPaginados"])
}
