package graph

import (
	"context"
	"fmt"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/ViniciusKumagai/desafio-tech-pill/internal/graph/model"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/store"
	"github.com/ViniciusKumagai/desafio-tech-pill/pagination"
)

// resolve runs fn for field under its own field context and marshals the result.
// Errors and panics become field errors and resolve to null; a null in a non-null
// field is reported unless fn already reported why.
func resolve[T any](
	ec *executionContext,
	ctx context.Context,
	field graphql.CollectedField,
	object string,
	isResolver bool,
	fn func(ctx context.Context, args map[string]any) (T, error),
	marshal func(ctx context.Context, sel ast.SelectionSet, v T) graphql.Marshaler,
) (ret graphql.Marshaler) {
	args := field.ArgumentMap(ec.Variables)
	fc := &graphql.FieldContext{
		Object:     object,
		Field:      field,
		Args:       args,
		IsMethod:   isResolver,
		IsResolver: isResolver,
	}
	ctx = graphql.WithFieldContext(ctx, fc)
	defer func() {
		if r := recover(); r != nil {
			ec.Error(ctx, ec.Recover(ctx, r))
			ret = graphql.Null
		}
	}()

	resTmp, err := ec.ResolverMiddleware(ctx, func(rctx context.Context) (any, error) {
		return fn(rctx, args)
	})
	if err != nil {
		ec.Error(ctx, err)
		return graphql.Null
	}
	res, _ := resTmp.(T)
	fc.Result = res

	ret = marshal(ctx, field.Selections, res)
	if ret == graphql.Null && field.Definition != nil && field.Definition.Type.NonNull && !graphql.HasFieldError(ctx, fc) {
		ec.Errorf(ctx, "must not be null")
	}
	return ret
}

// propagate nulls the whole object when one of its non-null fields is null.
func propagate(fields []graphql.CollectedField, out *graphql.FieldSet) graphql.Marshaler {
	for i, field := range fields {
		if out.Values[i] == graphql.Null && field.Definition != nil && field.Definition.Type.NonNull {
			return graphql.Null
		}
	}
	return out
}

// child scopes ctx to a plain struct field so errors below it carry its path.
func child(ctx context.Context, object string, field graphql.CollectedField) context.Context {
	return graphql.WithFieldContext(ctx, &graphql.FieldContext{Object: object, Field: field})
}

// marshalList writes a list of non-null items. One null item nulls the list.
func marshalList[T any](ctx context.Context, items []T, marshal func(context.Context, *T) graphql.Marshaler) graphql.Marshaler {
	ret := make(graphql.Array, len(items))
	for i := range items {
		ctx := graphql.WithFieldContext(ctx, &graphql.FieldContext{Index: &i, Result: &items[i]})
		ret[i] = marshal(ctx, &items[i])
		if ret[i] == graphql.Null {
			return graphql.Null
		}
	}
	return ret
}

// optionalList is marshalList for nullable lists, where nil stays null.
func optionalList[T any](ctx context.Context, items []T, marshal func(context.Context, *T) graphql.Marshaler) graphql.Marshaler {
	if items == nil {
		return graphql.Null
	}
	return marshalList(ctx, items, marshal)
}

func marshalBoolean(_ context.Context, _ ast.SelectionSet, v bool) graphql.Marshaler {
	return graphql.MarshalBoolean(v)
}

func marshalInt(_ context.Context, _ ast.SelectionSet, v int) graphql.Marshaler {
	return graphql.MarshalInt(v)
}

func marshalFloat(ctx context.Context, _ ast.SelectionSet, v float64) graphql.Marshaler {
	return graphql.WrapContextMarshaler(ctx, graphql.MarshalFloatContext(v))
}

func marshalStatusPlano(_ context.Context, _ ast.SelectionSet, v model.StatusPlano) graphql.Marshaler {
	return v
}

func marshalOptionalString(v *string) graphql.Marshaler {
	if v == nil {
		return graphql.Null
	}
	return graphql.MarshalString(*v)
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// arg unmarshals one entry of an argument map or input object.
func arg[T any](args map[string]any, name string, unmarshal func(any) (T, error)) (T, error) {
	v, err := unmarshal(args[name])
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

// optional adapts unmarshal to a nullable value: absent and null both give nil.
func optional[T any](unmarshal func(any) (T, error)) func(any) (*T, error) {
	return func(v any) (*T, error) {
		if v == nil {
			return nil, nil
		}
		out, err := unmarshal(v)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}
}

func unmarshalStatusPlano(v any) (model.StatusPlano, error) {
	var status model.StatusPlano
	err := status.UnmarshalGQL(v)
	return status, err
}

// inputObject reads the fields of one input object value, keeping the first
// error so the fields can be read in a row and checked once.
type inputObject struct {
	fields map[string]any
	err    error
}

func newInputObject(v any) *inputObject {
	fields, ok := v.(map[string]any)
	if !ok {
		return &inputObject{err: fmt.Errorf("%T is not an input object", v)}
	}
	return &inputObject{fields: fields}
}

func inputField[T any](in *inputObject, name string, unmarshal func(any) (T, error)) T {
	var out T
	if in.err != nil {
		return out
	}
	out, in.err = arg(in.fields, name, unmarshal)
	return out
}

func unmarshalPessoaInput(v any) (store.PessoaInput, error) {
	in := newInputObject(v)
	out := store.PessoaInput{
		Nome:  inputField(in, "nome", graphql.UnmarshalString),
		CPF:   inputField(in, "cpf", graphql.UnmarshalString),
		Email: inputField(in, "email", graphql.UnmarshalString),
	}
	if telefone := inputField(in, "telefone", optional(graphql.UnmarshalString)); telefone != nil {
		out.Telefone = *telefone
	}
	return out, in.err
}

func unmarshalPessoaUpdateInput(v any) (store.PessoaPatch, error) {
	in := newInputObject(v)
	out := store.PessoaPatch{
		Nome:     inputField(in, "nome", optional(graphql.UnmarshalString)),
		CPF:      inputField(in, "cpf", optional(graphql.UnmarshalString)),
		Email:    inputField(in, "email", optional(graphql.UnmarshalString)),
		Telefone: inputField(in, "telefone", optional(graphql.UnmarshalString)),
	}
	return out, in.err
}

func unmarshalPlanoInput(v any) (store.PlanoInput, error) {
	in := newInputObject(v)
	out := store.PlanoInput{
		Nome:              inputField(in, "nome", graphql.UnmarshalString),
		ValorCredito:      inputField(in, "valorCredito", graphql.UnmarshalFloat),
		Parcelas:          inputField(in, "parcelas", graphql.UnmarshalInt),
		TaxaAdmPercentual: inputField(in, "taxaAdmPercentual", graphql.UnmarshalFloat),
	}
	return out, in.err
}

func unmarshalPlanoUpdateInput(v any) (store.PlanoPatch, error) {
	in := newInputObject(v)
	out := store.PlanoPatch{
		Nome:              inputField(in, "nome", optional(graphql.UnmarshalString)),
		ValorCredito:      inputField(in, "valorCredito", optional(graphql.UnmarshalFloat)),
		Parcelas:          inputField(in, "parcelas", optional(graphql.UnmarshalInt)),
		TaxaAdmPercentual: inputField(in, "taxaAdmPercentual", optional(graphql.UnmarshalFloat)),
	}
	return out, in.err
}

func unmarshalContratarPlanoInput(v any) (store.ContratoInput, error) {
	in := newInputObject(v)
	out := store.ContratoInput{
		PessoaID:        inputField(in, "pessoaId", graphql.UnmarshalIntID),
		PlanoID:         inputField(in, "planoId", graphql.UnmarshalIntID),
		DataContratacao: inputField(in, "dataContratacao", graphql.UnmarshalString),
	}
	return out, in.err
}

func unmarshalPaginationInput(v any) (pagination.Request, error) {
	in := newInputObject(v)
	out := pagination.Request{
		Page:   inputField(in, "page", optional(graphql.UnmarshalInt)),
		Limit:  inputField(in, "limit", optional(graphql.UnmarshalInt)),
		First:  inputField(in, "first", optional(graphql.UnmarshalInt)),
		After:  inputField(in, "after", optional(graphql.UnmarshalString)),
		Last:   inputField(in, "last", optional(graphql.UnmarshalInt)),
		Before: inputField(in, "before", optional(graphql.UnmarshalString)),
	}
	return out, in.err
}
