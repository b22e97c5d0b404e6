// Package logger builds *slog.Logger instances from functional options and
// injects values stored in context.Context into every record.
//
// # Architecture
//
// New picks slog.NewTextHandler or slog.NewJSONHandler based on the configured
// Format, applies static attributes and wraps the result in a handler that runs
// the registered ContextExtractor callbacks before delegating. Attribute
// helpers in attr.go keep key names consistent between the library and the
// command.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(environment.Production, "smartrandom"),
//		logger.WithOutput(os.Stderr),
//		logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	log.DebugContext(ctx, "generated", logger.Generator("password"), logger.Length(16))
//
// Generated values must never be passed to the logger; only describe the
// request (generator, length, count).
//
// # Error Handling
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally. WithFormat and ParseLevel reject unknown values: WithFormat
// panics during setup, ParseLevel returns ErrInvalidLevel.
package logger
