// Package model holds the GraphQL types that have no store counterpart.
package model

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ViniciusKumagai/desafio-tech-pill/internal/store"
)

// StatusPlano is the contract status. Values are stored lower-case and exposed
// upper-case in the schema.
type StatusPlano string

const (
	StatusPlanoAtivo        StatusPlano = store.StatusAtivo
	StatusPlanoContemplado  StatusPlano = store.StatusContemplado
	StatusPlanoInadimplente StatusPlano = store.StatusInadimplente
	StatusPlanoQuitado      StatusPlano = store.StatusQuitado
)

// StatusPlanoValues returns all valid values for StatusPlano.
func StatusPlanoValues() []StatusPlano {
	return []StatusPlano{StatusPlanoAtivo, StatusPlanoContemplado, StatusPlanoInadimplente, StatusPlanoQuitado}
}

func (e StatusPlano) String() string {
	return string(e)
}

func (e StatusPlano) IsValid() bool {
	switch e {
	case StatusPlanoAtivo, StatusPlanoContemplado, StatusPlanoInadimplente, StatusPlanoQuitado:
		return true
	default:
		return false
	}
}

// MarshalGQL implements graphql.Marshaler interface.
func (e StatusPlano) MarshalGQL(w io.Writer) {
	_, _ = io.WriteString(w, strconv.Quote(strings.ToUpper(e.String())))
}

// UnmarshalGQL implements graphql.Unmarshaler interface.
func (e *StatusPlano) UnmarshalGQL(val any) error {
	str, ok := val.(string)
	if !ok {
		return fmt.Errorf("enum %T must be a string", val)
	}
	*e = StatusPlano(strings.ToLower(str))
	if !e.IsValid() {
		return fmt.Errorf("%s is not a valid StatusPlano", str)
	}
	return nil
}
