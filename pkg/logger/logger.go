package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Env     string
	Level   string
	Service string
	Version string
}

// Init configures the global zerolog logger. Development writes colored
// console lines; other environments write JSON tagged with service and version.
func Init(opts Options) {
	zerolog.TimeFieldFormat = time.RFC3339

	if opts.Env == "development" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
			With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(os.Stdout).With().
			Timestamp().
			Str("service", opts.Service).
			Str("version", opts.Version).
			Str("env", opts.Env).
			Logger()
	}

	zerolog.SetGlobalLevel(ParseLevel(opts.Level))
}

// ParseLevel falls back to info for an empty or unknown level.
func ParseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

func Info(msg string, fields map[string]interface{}) {
	log.Info().Fields(fields).Msg(msg)
}

func Warn(msg string, fields map[string]interface{}) {
	log.Warn().Fields(fields).Msg(msg)
}
