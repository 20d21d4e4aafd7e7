package logger

import (
	"medibook-service/internal/app/config"
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogger builds the bootstrap logger used while wiring drivers; the
// request path uses the zap logger instead.
func NewLogger(internalConfig *config.InternalConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if internalConfig.App.Env == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}
