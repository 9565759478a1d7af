/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package main

import (
	"io"
	"log/slog"
	"strings"

	"dirpx.dev/status"
)

// LogFormat selects the slog handler.
type LogFormat string

const (
	FormatText LogFormat = "text"
	FormatJSON LogFormat = "json"
)

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  slog.Level
	Format LogFormat
	Output io.Writer
}

// newLogger builds a logger writing to cfg.Output.
func newLogger(cfg LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}

	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(cfg.Output, opts)
	default:
		handler = slog.NewTextHandler(cfg.Output, opts)
	}
	return slog.New(handler)
}

// parseLogConfig validates the --log-level and --log-format flag values.
func parseLogConfig(level, format string, out io.Writer) (LogConfig, error) {
	cfg := LogConfig{Output: out, Format: LogFormat(strings.ToLower(format))}
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return LogConfig{}, newStatus(KindUsage).
			UpdateContext(status.Fields("flag", "log-level", "value", level)).
			WithSource(err)
	}
	switch cfg.Format {
	case FormatText, FormatJSON:
	default:
		return LogConfig{}, newStatus(KindUsage).
			UpdateContext(status.Fields("flag", "log-format", "value", format, "allowed", "text, json"))
	}
	return cfg, nil
}
