// Package logging configures the default slog logger of the binaries.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
)

// LevelFlag is a log level given on the command line. The zero value means unset.
type LevelFlag string

// Set implements pflag.Value.
func (l *LevelFlag) Set(v string) error {
	if _, err := ParseLevel(v); err != nil {
		return err
	}
	*l = LevelFlag(strings.ToLower(v))
	return nil
}

// String implements pflag.Value.
func (l *LevelFlag) String() string {
	if l == nil {
		return ""
	}
	return string(*l)
}

// Type implements pflag.Value.
func (l *LevelFlag) Type() string {
	return "LevelFlag"
}

var (
	_ pflag.Value = (*LevelFlag)(nil)
)

// ParseLevel converts debug, info, warn or error to a slog.Level.
func ParseLevel(v string) (slog.Level, error) {
	switch strings.ToLower(v) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level %q, valid values are debug, info, warn or error", v)
	}
}

// Setup installs a text logger writing to w as the default logger and returns it.
// flag takes precedence over configured when it is set.
func Setup(w io.Writer, flag LevelFlag, configured string) (*slog.Logger, error) {
	value := configured
	if flag != "" {
		value = string(flag)
	}
	level, err := ParseLevel(value)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	}))
	slog.SetDefault(logger)
	return logger, nil
}
