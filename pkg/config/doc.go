// Package config loads typed configuration structs from environment variables.
//
// Struct fields are annotated with `env` tags understood by
// github.com/caarlos0/env/v11. Before the first Load the default `.env` file in
// the working directory is read with github.com/joho/godotenv if it exists;
// variables already present in the environment take precedence.
//
// Every configuration type is parsed once and cached for the lifetime of the
// process. ResetCache drops the cache, which is mostly useful in tests.
//
//	type Config struct {
//		Length int    `env:"SMARTRANDOM_LENGTH" envDefault:"10"`
//		Format string `env:"SMARTRANDOM_FORMAT" envDefault:"text"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// errors.Is(err, config.ErrParsingConfig)
//	}
package config
