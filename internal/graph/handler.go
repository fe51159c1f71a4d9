package graph

import (
	"context"
	"log/slog"
	"runtime/debug"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/executor"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/extension"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

// NewHandler serves es over HTTP with gqlgen's default transports, query cache,
// introspection and automatic persisted queries. A nil logger uses slog.Default().
func NewHandler(es graphql.ExecutableSchema, logger *slog.Logger) *handler.Server {
	srv := handler.NewDefaultServer(es)
	observe(srv, componentLogger(logger))
	return srv
}

// Executor runs operations in process, without a transport. It enables the same
// introspection, panic recovery and error logging as NewHandler.
type Executor struct {
	exec *executor.Executor
}

// NewExecutor creates an Executor for es. A nil logger uses slog.Default().
func NewExecutor(es graphql.ExecutableSchema, logger *slog.Logger) *Executor {
	exec := executor.New(es)
	exec.Use(extension.Introspection{})
	observe(exec, componentLogger(logger))
	return &Executor{exec: exec}
}

// Execute parses, validates and runs one operation. Request errors (syntax,
// validation, unknown operation) come back in the response like field errors.
func (e *Executor) Execute(ctx context.Context, params graphql.RawParams) *graphql.Response {
	ctx = graphql.StartOperationTrace(ctx)
	now := graphql.Now()
	params.ReadTime = graphql.TraceTiming{Start: now, End: now}

	opCtx, errs := e.exec.CreateOperationContext(ctx, &params)
	if errs != nil {
		return e.exec.DispatchError(graphql.WithOperationContext(ctx, opCtx), errs)
	}
	responses, ctx := e.exec.DispatchOperation(ctx, opCtx)
	return responses(ctx)
}

// observable is implemented by both handler.Server and executor.Executor.
type observable interface {
	SetRecoverFunc(f graphql.RecoverFunc)
	AroundResponses(f graphql.ResponseMiddleware)
}

func observe(s observable, logger *slog.Logger) {
	s.SetRecoverFunc(func(ctx context.Context, err any) error {
		logger.ErrorContext(ctx, "Resolver panicked.", "panic", err, "stack", string(debug.Stack()))
		return gqlerror.Errorf("internal system error")
	})
	s.AroundResponses(func(ctx context.Context, next graphql.ResponseHandler) *graphql.Response {
		resp := next(ctx)
		if resp == nil {
			return nil
		}
		operation := operationName(ctx)
		if len(resp.Errors) > 0 {
			logger.WarnContext(ctx, "GraphQL request finished with errors.", "operation", operation, "errors", resp.Errors.Error())
		} else {
			logger.DebugContext(ctx, "GraphQL request served.", "operation", operation)
		}
		return resp
	})
}

func operationName(ctx context.Context) string {
	if !graphql.HasOperationContext(ctx) {
		return "anonymous"
	}
	if name := graphql.GetOperationContext(ctx).OperationName; name != "" {
		return name
	}
	return "anonymous"
}

func componentLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", "graphql")
}
