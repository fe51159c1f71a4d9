package store

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Contract statuses as persisted (lower-case).
const (
	StatusAtivo        = "ativo"
	StatusContemplado  = "contemplado"
	StatusInadimplente = "inadimplente"
	StatusQuitado      = "quitado"
)

// Statuses lists every accepted contract status.
var Statuses = []string{StatusAtivo, StatusContemplado, StatusInadimplente, StatusQuitado}

// Pessoa is a registered person.
type Pessoa struct {
	ID       int    `json:"id" msgpack:"id"`
	Nome     string `json:"nome" msgpack:"nome"`
	CPF      string `json:"cpf" msgpack:"cpf"`
	Email    string `json:"email" msgpack:"email"`
	Telefone string `json:"telefone,omitempty" msgpack:"telefone,omitempty"`
}

// Plano is an installment purchase plan.
type Plano struct {
	ID                int     `json:"id" msgpack:"id"`
	Nome              string  `json:"nome" msgpack:"nome"`
	ValorCredito      float64 `json:"valor_credito" msgpack:"valor_credito"`
	Parcelas          int     `json:"parcelas" msgpack:"parcelas"`
	TaxaAdmPercentual float64 `json:"taxa_adm_percentual" msgpack:"taxa_adm_percentual"`
}

// ValorParcela is the installment value: the credit plus the administration fee,
// split over the installments. It is zero for plans without installments.
func (p Plano) ValorParcela() float64 {
	if p.Parcelas <= 0 {
		return 0
	}
	return p.ValorCredito * (1 + p.TaxaAdmPercentual/100) / float64(p.Parcelas)
}

// PlanoContratado links a Pessoa to a Plano.
type PlanoContratado struct {
	ID              int    `json:"id" msgpack:"id"`
	PessoaID        int    `json:"pessoa_id" msgpack:"pessoa_id"`
	PlanoID         int    `json:"plano_id" msgpack:"plano_id"`
	DataContratacao string `json:"data_contratacao" msgpack:"data_contratacao"`
	Status          string `json:"status" msgpack:"status"`
	ParcelasPagas   int    `json:"parcelas_pagas" msgpack:"parcelas_pagas"`
}

// Estatisticas aggregates the three collections.
type Estatisticas struct {
	TotalPessoas           int     `json:"totalPessoas" msgpack:"totalPessoas"`
	TotalPlanos            int     `json:"totalPlanos" msgpack:"totalPlanos"`
	TotalPlanosContratados int     `json:"totalPlanosContratados" msgpack:"totalPlanosContratados"`
	PlanosAtivos           int     `json:"planosAtivos" msgpack:"planosAtivos"`
	PlanosContemplados     int     `json:"planosContemplados" msgpack:"planosContemplados"`
	PlanosInadimplentes    int     `json:"planosInadimplentes" msgpack:"planosInadimplentes"`
	PlanosQuitados         int     `json:"planosQuitados" msgpack:"planosQuitados"`
	ValorTotalCredito      float64 `json:"valorTotalCredito" msgpack:"valorTotalCredito"`
	ValorTotalArrecadado   float64 `json:"valorTotalArrecadado" msgpack:"valorTotalArrecadado"`
}

// PessoaInput creates a Pessoa.
type PessoaInput struct {
	Nome     string `json:"nome"`
	CPF      string `json:"cpf"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
}

// Validate checks the required fields.
func (in PessoaInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Nome, validation.Required),
		validation.Field(&in.CPF, validation.Required),
		validation.Field(&in.Email, validation.Required, is.EmailFormat),
	)
}

// PessoaPatch updates the non-nil fields of a Pessoa.
type PessoaPatch struct {
	Nome     *string `json:"nome"`
	CPF      *string `json:"cpf"`
	Email    *string `json:"email"`
	Telefone *string `json:"telefone"`
}

// Validate rejects blank replacements for required fields.
func (p PessoaPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Nome, validation.NilOrNotEmpty),
		validation.Field(&p.CPF, validation.NilOrNotEmpty),
		validation.Field(&p.Email, validation.NilOrNotEmpty, is.EmailFormat),
	)
}

func (p PessoaPatch) apply(pessoa *Pessoa) {
	if p.Nome != nil {
		pessoa.Nome = *p.Nome
	}
	if p.CPF != nil {
		pessoa.CPF = *p.CPF
	}
	if p.Email != nil {
		pessoa.Email = *p.Email
	}
	if p.Telefone != nil {
		pessoa.Telefone = *p.Telefone
	}
}

// PlanoInput creates a Plano.
type PlanoInput struct {
	Nome              string  `json:"nome"`
	ValorCredito      float64 `json:"valorCredito"`
	Parcelas          int     `json:"parcelas"`
	TaxaAdmPercentual float64 `json:"taxaAdmPercentual"`
}

// Validate checks the plan terms.
func (in PlanoInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Nome, validation.Required),
		validation.Field(&in.ValorCredito, validation.Required, validation.Min(0.01)),
		validation.Field(&in.Parcelas, validation.Required, validation.Min(1)),
		validation.Field(&in.TaxaAdmPercentual, validation.Min(0.0)),
	)
}

// PlanoPatch updates the non-nil fields of a Plano.
type PlanoPatch struct {
	Nome              *string  `json:"nome"`
	ValorCredito      *float64 `json:"valorCredito"`
	Parcelas          *int     `json:"parcelas"`
	TaxaAdmPercentual *float64 `json:"taxaAdmPercentual"`
}

// Validate checks the replaced plan terms.
func (p PlanoPatch) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Nome, validation.NilOrNotEmpty),
		validation.Field(&p.ValorCredito, validation.NilOrNotEmpty, validation.Min(0.01)),
		validation.Field(&p.Parcelas, validation.NilOrNotEmpty, validation.Min(1)),
		validation.Field(&p.TaxaAdmPercentual, validation.Min(0.0)),
	)
}

func (p PlanoPatch) apply(plano *Plano) {
	if p.Nome != nil {
		plano.Nome = *p.Nome
	}
	if p.ValorCredito != nil {
		plano.ValorCredito = *p.ValorCredito
	}
	if p.Parcelas != nil {
		plano.Parcelas = *p.Parcelas
	}
	if p.TaxaAdmPercentual != nil {
		plano.TaxaAdmPercentual = *p.TaxaAdmPercentual
	}
}

// ContratoInput contracts a Plano for a Pessoa.
type ContratoInput struct {
	PessoaID        int    `json:"pessoaId"`
	PlanoID         int    `json:"planoId"`
	DataContratacao string `json:"dataContratacao"`
}

// Validate checks the references and the contract date.
func (in ContratoInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.PessoaID, validation.Required, validation.Min(1)),
		validation.Field(&in.PlanoID, validation.Required, validation.Min(1)),
		validation.Field(&in.DataContratacao, validation.Required, validation.Date("2006-01-02")),
	)
}

// NormalizeStatus lower-cases status and checks it is known.
func NormalizeStatus(status string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(status))
	if err := validation.Validate(s, validation.Required, validation.In(toAny(Statuses)...)); err != nil {
		return "", err
	}
	return s, nil
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
