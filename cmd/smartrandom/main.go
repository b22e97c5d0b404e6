// Command smartrandom prints random passwords, codes, bytes, UUIDs, hashes and
// randomized text.
//
//	smartrandom password
//	smartrandom -n 6 -c 5 code
//	smartrandom -seed "correct horse" -n 16 smart-password
//	smartrandom -text "Hello, {Alice|Bob}!" text
//	echo -n "Hello" | smartrandom hash
//	smartrandom -o yaml -c 3 uuid
//	smartrandom -qr wifi.png -n 20 password
//
// Defaults come from APP_ENV, LOG_LEVEL, SMARTRANDOM_LENGTH, SMARTRANDOM_SIZE,
// SMARTRANDOM_COUNT, SMARTRANDOM_FORMAT and SMARTRANDOM_QR_SIZE, optionally
// loaded from a .env file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/dmitrymomot/smartrandom"
	"github.com/dmitrymomot/smartrandom/pkg/config"
	"github.com/dmitrymomot/smartrandom/pkg/environment"
	"github.com/dmitrymomot/smartrandom/pkg/logger"
)

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	env := environment.Parse(cfg.AppEnv)
	ctx := environment.WithContext(context.Background(), env)

	logOpts := []logger.Option{
		logger.WithEnvironment(env, "smartrandom"),
		logger.WithAttr(logger.Component("cli")),
		logger.WithOutput(os.Stderr),
		logger.WithContextExtractors(environment.LoggerExtractor()),
	}
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logOpts = append(logOpts, logger.WithLevel(level))
	log := logger.New(logOpts...)

	opts, err := parseArgs(flag.CommandLine, os.Args[1:], cfg)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	rnd := smartrandom.New(smartrandom.WithLogger(log))
	if err := run(ctx, opts, rnd, os.Stdin, os.Stdout, log); err != nil {
		log.ErrorContext(ctx, "smartrandom failed", logger.Generator(opts.Kind), logger.Error(err))
		os.Exit(1)
	}
}
