package utils

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger configures the process-wide zerolog logger. Development
// gets the human-readable console writer; anything else keeps the
// default JSON output for log shippers.
func InitLogger(env string) {
	zerolog.TimeFieldFormat = time.RFC3339
	if env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

func LogInfo(msg string, fields map[string]interface{}) {
	withFields(log.Info(), fields).Msg(msg)
}

func LogWarn(msg string, fields map[string]interface{}) {
	withFields(log.Warn(), fields).Msg(msg)
}

func LogError(msg string, err error, fields map[string]interface{}) {
	withFields(log.Error().Err(err), fields).Msg(msg)
}

func withFields(event *zerolog.Event, fields map[string]interface{}) *zerolog.Event {
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	return event
}
