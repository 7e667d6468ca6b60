// Package log provides structured, context-aware logging with optional
// distributed tracing support.
//
// The package centers on the Logger interface. Three implementations are
// provided:
//
//   - ZapLogger: the production logger, backed by Uber's zap
//   - NoopLogger: discards everything; the safe default for tests
//   - SpanLogger: a decorator that mirrors log entries to a trace span
//
// Create a logger from configuration and use it directly:
//
//	logger := log.NewZapLogger(log.Config{
//	    Format: "logfmt",
//	    Level:  log.LevelInfo,
//	    Output: "stderr",
//	})
//	logger.Info("verifier ready", "allowHighS", false)
//
// Loggers travel through contexts. SetContextLogger stores a logger in a
// context; when the context holds a valid OpenTelemetry span, the logger is
// automatically wrapped so every entry also becomes a span event, and Error
// and Fatal entries set the span status to error:
//
//	ctx, span := tracer.Start(ctx, "verify")
//	defer span.End()
//
//	ctx = log.SetContextLogger(ctx, logger)
//	log.FromContext(ctx).Info("digest built", "scheme", "typed")
//
// Derived loggers carry persistent context: WithName adds to the
// dot-separated component hierarchy and WithKV attaches key-value pairs to
// every future entry. Helpers that wrap logging calls use AddCallerSkip so
// the reported source line points at the real caller.
//
// The Config struct reads SIGIL_LOG_FORMAT (console, logfmt, json),
// SIGIL_LOG_LEVEL (debug through fatal) and SIGIL_LOG_OUTPUT (stderr,
// stdout or a file path) from the environment.
package log
