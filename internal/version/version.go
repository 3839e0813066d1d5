package version

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// Info returns version information populated via -ldflags.
func Info() (v, c, d string) { return version, commit, date }

// Version возвращает только номер сборки: он уходит в /healthz и gRPC health.
func Version() string { return version }

func String() string {
	return fmt.Sprintf("version=%s commit=%s date=%s", version, commit, date)
}

// Fields - поля сборки для стартового лога сервиса.
func Fields(service string) log.Fields {
	return log.Fields{
		"service": service,
		"version": version,
		"commit":  commit,
		"built":   date,
	}
}
