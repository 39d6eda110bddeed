package logger

import (
	"context"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logIDKey     = "logID"
	durationKey  = "duration"
	requestKey   = "request"
	operationKey = "operation"
)

func fieldsFrom(ctx context.Context) []zap.Field {
	if ctx == nil {
		return nil
	}
	lgCtx, _ := ctx.Value(&logCtx).(*logContext)
	return lgCtx.ToFields()
}

// Context attaches a fresh log id to ctx unless one is already present.
func (l *logger) Context(ctx context.Context) context.Context {
	if _, ok := ctx.Value(&logCtx).(*logContext); ok {
		return ctx
	}
	return context.WithValue(ctx, &logCtx, newLogContext(l.idGenerator.NewLogID(ctx)))
}

func (l *logger) ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	logID := l.idGenerator.NewLogID(ctx)
	if lgCtx, ok := ctx.Value(&logCtx).(*logContext); ok {
		logID = lgCtx.LogID
	}
	return context.WithValue(ctx, &logCtx, newLogContextWithOptions(logID, withRequestID(requestID)))
}

// ContextWithCapture keeps the current log id and returns a Capture that logs
// the operation name together with the time elapsed since this call.
func (l *logger) ContextWithCapture(ctx context.Context, operationName string) (context.Context, Capture) {
	lgCtx, ok := ctx.Value(&logCtx).(*logContext)
	if !ok {
		lgCtx = newLogContext(l.idGenerator.NewLogID(ctx))
	}

	lgCtx = newLogContextWithOptions(lgCtx.LogID, withRequestID(lgCtx.RequestID), withOperationName(operationName))
	ctx = context.WithValue(ctx, &logCtx, lgCtx)

	return ctx, l.captureContext(lgCtx)
}

func (l *logger) captureContext(lgCtx *logContext) Capture {
	return func(attrs ...zap.Field) {
		attrs = append(attrs,
			zap.String(durationKey, time.Since(time.Time(lgCtx.StartTime)).String()),
		)
		attrs = append(attrs, lgCtx.ToFields()...)
		l.lg.Info(lgCtx.OperationName, attrs...)
	}
}

func (l *logger) Debug(ctx context.Context, log string, fields ...zapcore.Field) {
	l.lg.Debug(log, append(fields, fieldsFrom(ctx)...)...)
}

func (l *logger) Info(ctx context.Context, log string, fields ...zapcore.Field) {
	l.lg.Info(log, append(fields, fieldsFrom(ctx)...)...)
}

func (l *logger) Warn(ctx context.Context, log string, fields ...zapcore.Field) {
	l.lg.Warn(log, append(fields, fieldsFrom(ctx)...)...)
}

func (l *logger) Error(ctx context.Context, log string, fields ...zapcore.Field) {
	l.lg.Error(log, append(fields, fieldsFrom(ctx)...)...)
}
