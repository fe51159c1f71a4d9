package graph

import (
	"context"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/introspection"
	"github.com/vektah/gqlparser/v2/ast"
)

// The introspection types come from the gqlparser prelude, which may carry fields
// this schema never sets (deprecated input values, @oneOf). Unknown fields resolve
// to null instead of panicking.

func (ec *executionContext) ___Schema(ctx context.Context, sel ast.SelectionSet, obj *introspection.Schema) graphql.Marshaler {
	if obj == nil {
		return graphql.Null
	}
	const object = "__Schema"
	fields := graphql.CollectFields(ec.OperationContext, sel, []string{object})
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		ctx := child(ctx, object, field)
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString(object)
		case "description":
			out.Values[i] = marshalOptionalString(obj.Description())
		case "types":
			out.Values[i] = ec.marshalTypes(ctx, field.Selections, obj.Types())
		case "queryType":
			out.Values[i] = ec.___Type(ctx, field.Selections, obj.QueryType())
		case "mutationType":
			out.Values[i] = ec.___Type(ctx, field.Selections, obj.MutationType())
		case "subscriptionType":
			out.Values[i] = ec.___Type(ctx, field.Selections, obj.SubscriptionType())
		case "directives":
			out.Values[i] = marshalList(ctx, obj.Directives(), func(ctx context.Context, d *introspection.Directive) graphql.Marshaler {
				return ec.___Directive(ctx, field.Selections, d)
			})
		default:
			out.Values[i] = graphql.Null
		}
	}
	return propagate(fields, out)
}

func (ec *executionContext) ___Type(ctx context.Context, sel ast.SelectionSet, obj *introspection.Type) graphql.Marshaler {
	if obj == nil {
		return graphql.Null
	}
	const object = "__Type"
	fields := graphql.CollectFields(ec.OperationContext, sel, []string{object})
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		ctx := child(ctx, object, field)
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString(object)
		case "kind":
			out.Values[i] = graphql.MarshalString(obj.Kind())
		case "name":
			out.Values[i] = marshalOptionalString(obj.Name())
		case "description":
			out.Values[i] = marshalOptionalString(obj.Description())
		case "specifiedByURL":
			out.Values[i] = marshalOptionalString(obj.SpecifiedByURL())
		case "fields":
			out.Values[i] = optionalList(ctx, obj.Fields(ec.includeDeprecated(field)), func(ctx context.Context, f *introspection.Field) graphql.Marshaler {
				return ec.___Field(ctx, field.Selections, f)
			})
		case "interfaces":
			out.Values[i] = ec.marshalOptionalTypes(ctx, field.Selections, obj.Interfaces())
		case "possibleTypes":
			out.Values[i] = ec.marshalOptionalTypes(ctx, field.Selections, obj.PossibleTypes())
		case "enumValues":
			out.Values[i] = optionalList(ctx, obj.EnumValues(ec.includeDeprecated(field)), func(ctx context.Context, v *introspection.EnumValue) graphql.Marshaler {
				return ec.___EnumValue(ctx, field.Selections, v)
			})
		case "inputFields":
			out.Values[i] = optionalList(ctx, obj.InputFields(), func(ctx context.Context, v *introspection.InputValue) graphql.Marshaler {
				return ec.___InputValue(ctx, field.Selections, v)
			})
		case "ofType":
			out.Values[i] = ec.___Type(ctx, field.Selections, obj.OfType())
		case "isOneOf":
			out.Values[i] = graphql.MarshalBoolean(false)
		default:
			out.Values[i] = graphql.Null
		}
	}
	return propagate(fields, out)
}

func (ec *executionContext) ___Field(ctx context.Context, sel ast.SelectionSet, obj *introspection.Field) graphql.Marshaler {
	const object = "__Field"
	fields := graphql.CollectFields(ec.OperationContext, sel, []string{object})
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		ctx := child(ctx, object, field)
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString(object)
		case "name":
			out.Values[i] = graphql.MarshalString(obj.Name)
		case "description":
			out.Values[i] = marshalOptionalString(obj.Description())
		case "args":
			out.Values[i] = marshalList(ctx, obj.Args, func(ctx context.Context, v *introspection.InputValue) graphql.Marshaler {
				return ec.___InputValue(ctx, field.Selections, v)
			})
		case "type":
			out.Values[i] = ec.___Type(ctx, field.Selections, obj.Type)
		case "isDeprecated":
			out.Values[i] = graphql.MarshalBoolean(obj.IsDeprecated())
		case "deprecationReason":
			out.Values[i] = marshalOptionalString(obj.DeprecationReason())
		default:
			out.Values[i] = graphql.Null
		}
	}
	return propagate(fields, out)
}

func (ec *executionContext) ___InputValue(ctx context.Context, sel ast.SelectionSet, obj *introspection.InputValue) graphql.Marshaler {
	const object = "__InputValue"
	fields := graphql.CollectFields(ec.OperationContext, sel, []string{object})
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString(object)
		case "name":
			out.Values[i] = graphql.MarshalString(obj.Name)
		case "description":
			out.Values[i] = marshalOptionalString(obj.Description())
		case "type":
			out.Values[i] = ec.___Type(child(ctx, object, field), field.Selections, obj.Type)
		case "defaultValue":
			out.Values[i] = marshalOptionalString(obj.DefaultValue)
		case "isDeprecated":
			out.Values[i] = graphql.MarshalBoolean(false)
		default:
			out.Values[i] = graphql.Null
		}
	}
	return propagate(fields, out)
}

func (ec *executionContext) ___EnumValue(_ context.Context, sel ast.SelectionSet, obj *introspection.EnumValue) graphql.Marshaler {
	const object = "__EnumValue"
	fields := graphql.CollectFields(ec.OperationContext, sel, []string{object})
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString(object)
		case "name":
			out.Values[i] = graphql.MarshalString(obj.Name)
		case "description":
			out.Values[i] = marshalOptionalString(obj.Description())
		case "isDeprecated":
			out.Values[i] = graphql.MarshalBoolean(obj.IsDeprecated())
		case "deprecationReason":
			out.Values[i] = marshalOptionalString(obj.DeprecationReason())
		default:
			out.Values[i] = graphql.Null
		}
	}
	return propagate(fields, out)
}

func (ec *executionContext) ___Directive(ctx context.Context, sel ast.SelectionSet, obj *introspection.Directive) graphql.Marshaler {
	const object = "__Directive"
	fields := graphql.CollectFields(ec.OperationContext, sel, []string{object})
	out := graphql.NewFieldSet(fields)
	for i, field := range fields {
		switch field.Name {
		case "__typename":
			out.Values[i] = graphql.MarshalString(object)
		case "name":
			out.Values[i] = graphql.MarshalString(obj.Name)
		case "description":
			out.Values[i] = marshalOptionalString(obj.Description())
		case "locations":
			locations := make(graphql.Array, len(obj.Locations))
			for j, location := range obj.Locations {
				locations[j] = graphql.MarshalString(location)
			}
			out.Values[i] = locations
		case "args":
			out.Values[i] = marshalList(child(ctx, object, field), obj.Args, func(ctx context.Context, v *introspection.InputValue) graphql.Marshaler {
				return ec.___InputValue(ctx, field.Selections, v)
			})
		case "isRepeatable":
			out.Values[i] = graphql.MarshalBoolean(obj.IsRepeatable)
		default:
			out.Values[i] = graphql.Null
		}
	}
	return propagate(fields, out)
}

func (ec *executionContext) marshalTypes(ctx context.Context, sel ast.SelectionSet, types []introspection.Type) graphql.Marshaler {
	return marshalList(ctx, types, func(ctx context.Context, t *introspection.Type) graphql.Marshaler {
		return ec.___Type(ctx, sel, t)
	})
}

func (ec *executionContext) marshalOptionalTypes(ctx context.Context, sel ast.SelectionSet, types []introspection.Type) graphql.Marshaler {
	if types == nil {
		return graphql.Null
	}
	return ec.marshalTypes(ctx, sel, types)
}

func (ec *executionContext) includeDeprecated(field graphql.CollectedField) bool {
	include, _ := field.ArgumentMap(ec.Variables)["includeDeprecated"].(bool)
	return include
}
