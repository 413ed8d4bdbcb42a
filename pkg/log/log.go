// Package log envolve o logrus com campos de correlação por requisição
package log

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type Fields logrus.Fields

type Logger interface {
	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger
	WithError(err error) Logger
	WithContext(ctx context.Context) Logger

	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Warnf(format string, args ...any)
	Error(args ...any)
	Fatal(args ...any)
}

type contextKey string

const CorrelationIDKey contextKey = "correlation_id"

type logger struct {
	entry *logrus.Entry
}

// L é o logger global; Setup o recria com nível e formato do ambiente
var L Logger = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

var environment = os.Getenv("APP_ENV")

// Setup configura o logrus global. Em desenvolvimento o formato é texto
// colorido; nos demais ambientes, JSON. Nível inválido cai para info.
func Setup(level, env string) {
	environment = env

	if IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "15:04:05",
			PadLevelText:    true,
		})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyMsg: "message",
			},
		})
	}
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
	if err != nil {
		L.WithField("log_level", level).Warn("Nível de log inválido, usando info")
	}
}

func IsDevelopment() bool {
	switch environment {
	case "", "development", "dev":
		return true
	}
	return false
}

// SetupTestLogger deixa só avisos e erros na saída dos testes
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logrus.SetLevel(logrus.WarnLevel)
	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}

func (l *logger) WithField(key string, value any) Logger {
	return &logger{entry: l.entry.WithField(key, value)}
}

func (l *logger) WithFields(fields Fields) Logger {
	return &logger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l *logger) WithError(err error) Logger {
	return &logger{entry: l.entry.WithError(err)}
}

// WithContext acrescenta correlation_id e, havendo sessão, o usuário
func (l *logger) WithContext(ctx context.Context) Logger {
	if ctx == nil {
		return l
	}

	entry := l.entry
	if id := GetCorrelationID(ctx); id != "" {
		entry = entry.WithField(string(CorrelationIDKey), id)
	}
	if userID, ok := ctx.Value(UserIDKey).(string); ok && userID != "" {
		entry = entry.WithField("user_id", userID)
	}
	return &logger{entry: entry}
}

func (l *logger) Debug(args ...any)                { l.entry.Debug(args...) }
func (l *logger) Info(args ...any)                 { l.entry.Info(args...) }
func (l *logger) Warn(args ...any)                 { l.entry.Warn(args...) }
func (l *logger) Warnf(format string, args ...any) { l.entry.Warnf(format, args...) }
func (l *logger) Error(args ...any)                { l.entry.Error(args...) }
func (l *logger) Fatal(args ...any)                { l.entry.Fatal(args...) }

// UserIDKey guarda o ID do usuário autenticado para os logs
const UserIDKey contextKey = "log_user_id"

// WithUserID marca o contexto com o usuário da sessão
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// WithCorrelationID reaproveita o ID recebido do cliente ou gera um novo
func WithCorrelationID(ctx context.Context, incoming string) (context.Context, string) {
	correlationID := strings.TrimSpace(incoming)
	if correlationID == "" || len(correlationID) > 64 {
		correlationID = uuid.NewString()
	}
	return context.WithValue(ctx, CorrelationIDKey, correlationID), correlationID
}

func GetCorrelationID(ctx context.Context) string {
	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}
	return ""
}

func ForContext(ctx context.Context) Logger {
	return L.WithContext(ctx)
}
