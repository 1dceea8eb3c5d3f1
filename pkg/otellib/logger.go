package otellib

import (
	"context"
	"net/http"

	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type ctxLoggerKey struct{}

const (
	traceIDField = "trace.id"
	spanIDField  = "span.id"
	methodField  = "method"
)

// SetTraceInfoInterceptor tags the request with the trace ids and puts a method scoped logger into the context.
// Must run after the otelgrpc interceptor.
func SetTraceInfoInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler,
	) (resp interface{}, err error) {
		sc := trace.SpanContextFromContext(ctx)

		tags := grpc_ctxtags.Extract(ctx)
		tags.Set(traceIDField, sc.TraceID().String())
		tags.Set(spanIDField, sc.SpanID().String())

		return handler(ToContext(ctx, logger.With(zap.String(methodField, info.FullMethod))), req)
	}
}

// HTTPMiddleware starts a span for each request and puts a logger into its context,
// for handlers that do not go through the gRPC interceptors
func HTTPMiddleware(tp trace.TracerProvider, logger *zap.Logger, next http.Handler) http.Handler {
	tracer := tp.Tracer("http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := r.Method + " " + r.URL.Path
		ctx, span := tracer.Start(r.Context(), name, trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		ctx = ToContext(ctx, logger.With(zap.String(methodField, name)))

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r.WithContext(ctx))

		if sw.status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(sw.status))
		}
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Extract returns the context logger with trace ids attached, a no-op logger when none was set
func Extract(ctx context.Context) *zap.Logger {
	logger, ok := ctx.Value(ctxLoggerKey{}).(*zap.Logger)
	if !ok {
		return zap.NewNop()
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return logger
	}
	return logger.With(
		zap.String(traceIDField, sc.TraceID().String()),
		zap.String(spanIDField, sc.SpanID().String()),
	)
}

// ToContext ...
func ToContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxLoggerKey{}, l)
}
