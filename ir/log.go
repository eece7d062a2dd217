package ir

import (
	"context"
	"github.com/cottand/elmgen/name"
	"log/slog"
)

// slogExpr wraps an expression as a slog.LogValuer so trees are only
// rendered when a record actually gets emitted
func slogExpr[V Variable[V]](e Expr[V]) slog.LogValuer { return exprLogValuer[V]{e} }

func slogType[V Variable[V]](t Type[V]) slog.LogValuer { return typeLogValuer[V]{t} }

type exprLogValuer[V Variable[V]] struct{ expr Expr[V] }
type typeLogValuer[V Variable[V]] struct{ t Type[V] }

func (l exprLogValuer[V]) LogValue() slog.Value { return slog.StringValue(ExprString[V](l.expr)) }
func (l typeLogValuer[V]) LogValue() slog.Value { return slog.StringValue(TypeString[V](l.t)) }

// SlogHandler wraps a slog.Handler so expression trees and types carried as
// attributes are lazy-printed in their diagnostic form. It recognises the
// two variable representations that occur in practice: Never and
// name.Local.
func SlogHandler(underlying slog.Handler) slog.Handler {
	return &exprLogHandler{underlying: underlying}
}

type exprLogHandler struct {
	underlying slog.Handler
}

func (l *exprLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return l.underlying.Enabled(ctx, level)
}

func (l *exprLogHandler) Handle(ctx context.Context, record slog.Record) error {
	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		newRecord.Add(wrapAttr(attr))
		return true
	})
	return l.underlying.Handle(ctx, newRecord)
}

func (l *exprLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	for i, attr := range attrs {
		attrs[i] = wrapAttr(attr)
	}
	return SlogHandler(l.underlying.WithAttrs(attrs))
}

func (l *exprLogHandler) WithGroup(name string) slog.Handler {
	return SlogHandler(l.underlying.WithGroup(name))
}

func wrapAttr(attr slog.Attr) slog.Attr {
	if attr.Value.Kind() != slog.KindAny {
		return attr
	}
	switch value := attr.Value.Any().(type) {
	case Expr[Never]:
		attr.Value = slog.AnyValue(slogExpr[Never](value))
	case Expr[name.Local]:
		attr.Value = slog.AnyValue(slogExpr[name.Local](value))
	case Type[Never]:
		attr.Value = slog.AnyValue(slogType[Never](value))
	case Type[name.Local]:
		attr.Value = slog.AnyValue(slogType[name.Local](value))
	}
	return attr
}
