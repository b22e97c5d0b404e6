package environment_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/smartrandom/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want environment.Environment
	}{
		{in: "production", want: environment.Production},
		{in: "prod", want: environment.Production},
		{in: " PROD ", want: environment.Production},
		{in: "staging", want: environment.Staging},
		{in: "stage", want: environment.Staging},
		{in: "development", want: environment.Development},
		{in: "dev", want: environment.Development},
		{in: "", want: environment.Development},
		{in: "qa", want: environment.Development},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got := environment.Parse(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want == environment.Production, got.IsProduction())
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := environment.WithContext(context.Background(), environment.Staging)
	assert.Equal(t, environment.Staging, environment.FromContext(ctx))
	assert.Empty(t, environment.FromContext(context.Background()))
	assert.Empty(t, environment.FromContext(nil)) //nolint:staticcheck // nil context is handled explicitly
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := environment.LoggerExtractor()

	attr, ok := extract(environment.WithContext(context.Background(), environment.Production))
	assert.True(t, ok)
	assert.Equal(t, "env", attr.Key)
	assert.Equal(t, "production", attr.Value.String())

	attr, ok = extract(context.Background())
	assert.False(t, ok)
	assert.Equal(t, slog.Attr{}, attr)

	_, ok = extract(environment.WithContext(context.Background(), ""))
	assert.False(t, ok)
}
