// Package logging provides the small logging facade used by the integrators
// module.
//
// Logger wraps the subset of log/slog that the integration drivers need:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// Three implementations are provided:
//
//	logging.New(nil)          // slog.Default()
//	logging.NewZap(zapLogger) // go.uber.org/zap
//	logging.Nop()             // discards everything
//
// Arguments follow slog conventions: alternating key/value pairs or
// slog.Attr values. Integrand arguments are never logged; use Redacted when
// an attribute must show that a value was deliberately left out.
package logging
