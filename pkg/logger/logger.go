// Package logger expone un logger estructurado basado en zerolog con una
// superficie mínima para inyectarlo en el resto de la aplicación.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env   string // development -> consola legible; cualquier otro valor -> JSON
	Level string // debug, info, warn, error
}

// Logger envuelve zerolog para mantener una sola forma de loguear en el taller.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según el entorno. En development la salida es una
// consola coloreada; en producción, líneas JSON con timestamp RFC3339.
func New(cfg Config) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	var w io.Writer = os.Stdout
	if cfg.Env == "development" {
		w = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	}

	zl := zerolog.New(w).
		Level(parseLevel(cfg.Level)).
		With().Timestamp().Logger()

	// El logger global de zerolog queda apuntando al mismo destino para las
	// librerías que lo usen directamente.
	log.Logger = zl

	return &Logger{zl: zl}
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With crea un sublogger con campos fijos, útil para etiquetar componentes.
func (l *Logger) With() zerolog.Context {
	return l.zl.With()
}
