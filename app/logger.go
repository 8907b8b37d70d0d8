package app

import (
	"strings"

	log "github.com/sirupsen/logrus"
)

func InitLogger() {
	logLevel := strings.ToLower(Config.Logger.Level)

	switch logLevel {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "info":
		log.SetLevel(log.InfoLevel)
	case "warn":
		log.SetLevel(log.WarnLevel)
	case "error":
		log.SetLevel(log.ErrorLevel)
	default:
		logLevel = "info"
		log.SetLevel(log.InfoLevel)
	}

	log.Info("[LOGGER] Minting backend logging at level: ", logLevel)
}
