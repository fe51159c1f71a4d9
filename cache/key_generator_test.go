package cache

import (
	"strings"
	"testing"
)

func TestGenerateKey(t *testing.T) {
	tests := []struct {
		name      string
		queryName string
		args      map[string]any
		want      string
	}{
		{
			name:      "nil args",
			queryName: "pessoas",
			args:      nil,
			want:      "pessoas:{}",
		},
		{
			name:      "empty args",
			queryName: "planos",
			args:      map[string]any{},
			want:      "planos:{}",
		},
		{
			name:      "single arg",
			queryName: "pessoa",
			args:      map[string]any{"id": 1},
			want:      `pessoa:{"id":1}`,
		},
		{
			name:      "top-level names are sorted",
			queryName: "planosPorValorCredito",
			args:      map[string]any{"min": 1000, "max": 5000},
			want:      `planosPorValorCredito:{"max":5000,"min":1000}`,
		},
		{
			name:      "nested input object",
			queryName: "pessoasPaginadas",
			args: map[string]any{
				"pagination": map[string]any{"page": 2, "limit": 5},
			},
			want: `pessoasPaginadas:{"pagination":{"limit":5,"page":2}}`,
		},
		{
			name:      "html characters are not escaped",
			queryName: "pessoaPorEmail",
			args:      map[string]any{"email": "a&b<c>@x.com"},
			want:      `pessoaPorEmail:{"email":"a&b<c>@x.com"}`,
		},
		{
			name:      "null argument",
			queryName: "planosContratadosPorStatus",
			args:      map[string]any{"status": nil},
			want:      `planosContratadosPorStatus:{"status":null}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GenerateKey(tt.queryName, tt.args); got != tt.want {
				t.Errorf("GenerateKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGenerateKey_Deterministic(t *testing.T) {
	a := map[string]any{}
	a["first"] = 5
	a["after"] = "Mg=="
	a["filter"] = "ativo"

	b := map[string]any{}
	b["filter"] = "ativo"
	b["after"] = "Mg=="
	b["first"] = 5

	if GenerateKey("q", a) != GenerateKey("q", b) {
		t.Errorf("keys differ for the same arguments: %q vs %q", GenerateKey("q", a), GenerateKey("q", b))
	}
	if GenerateKey("q", a) == GenerateKey("r", a) {
		t.Error("keys must differ across query names")
	}
	if GenerateKey("q", map[string]any{"id": 1}) == GenerateKey("q", map[string]any{"id": "1"}) {
		t.Error("keys must distinguish argument types")
	}
}

func TestGenerateKey_StructFieldOrder(t *testing.T) {
	type ab struct {
		A int `json:"a"`
		B int `json:"b"`
	}
	type ba struct {
		B int `json:"b"`
		A int `json:"a"`
	}

	left := GenerateKey("q", map[string]any{"in": ab{A: 1, B: 2}})
	right := GenerateKey("q", map[string]any{"in": ba{A: 1, B: 2}})
	if left == right {
		t.Error("struct values are expected to keep declaration order")
	}
}

func TestGenerateKey_UnencodableValue(t *testing.T) {
	key := GenerateKey("q", map[string]any{"ch": make(chan int)})
	if !strings.HasPrefix(key, `q:{"ch":"chan int:`) {
		t.Errorf("expected type-tagged fallback, got %q", key)
	}
}
