package logger

import "log/slog"

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Generator records the generator name under "generator".
func Generator(name string) slog.Attr {
	return slog.String("generator", name)
}

// Length records a requested length or size under "length".
func Length(n int) slog.Attr {
	return slog.Int("length", n)
}

// Count records how many values were requested under "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
