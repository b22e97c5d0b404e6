// Package environment names the deployment environment a process runs in and
// carries it through context.Context into structured logs.
//
// Parse maps the usual spellings, including the short aliases "dev", "stage"
// and "prod", to one of the predefined constants. Unknown values fall back to
// Development so a missing APP_ENV never makes a tool noisier than intended in
// production.
//
//	env := environment.Parse(os.Getenv("APP_ENV"))
//	ctx := environment.WithContext(context.Background(), env)
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
//	log.InfoContext(ctx, "started") // ... env=production
package environment
