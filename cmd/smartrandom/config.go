package main

import (
	"github.com/dmitrymomot/smartrandom/pkg/generator"
	"github.com/dmitrymomot/smartrandom/pkg/qrcode"
	"github.com/dmitrymomot/smartrandom/pkg/urandom"
)

// Config holds the command defaults read from the environment or a .env file.
type Config struct {
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
	Length   int    `env:"SMARTRANDOM_LENGTH" envDefault:"10"`
	Size     int    `env:"SMARTRANDOM_SIZE" envDefault:"128"`
	Count    int    `env:"SMARTRANDOM_COUNT" envDefault:"1"`
	Format   string `env:"SMARTRANDOM_FORMAT" envDefault:"text"`
	QRSize   int    `env:"SMARTRANDOM_QR_SIZE" envDefault:"256"`
}

// withDefaults replaces zero values, e.g. SMARTRANDOM_LENGTH=0, with the
// package defaults.
func (c Config) withDefaults() Config {
	if c.Length <= 0 {
		c.Length = generator.DefaultLength
	}
	if c.Size <= 0 {
		c.Size = urandom.DefaultSize
	}
	if c.Count <= 0 {
		c.Count = 1
	}
	if c.Format == "" {
		c.Format = formatText
	}
	if c.QRSize <= 0 {
		c.QRSize = qrcode.DefaultSize
	}
	return c
}
