package app

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	defer func() {
		Config.Logger.Level = ""
		log.SetLevel(log.InfoLevel)
	}()

	t.Run("Debug", func(t *testing.T) {
		Config.Logger.Level = "debug"
		InitLogger()
		assert.Equal(t, log.DebugLevel, log.GetLevel())
	})

	t.Run("Error", func(t *testing.T) {
		Config.Logger.Level = "error"
		InitLogger()
		assert.Equal(t, log.ErrorLevel, log.GetLevel())
	})

	t.Run("Unknown Level Falls Back To Info", func(t *testing.T) {
		Config.Logger.Level = "verbose"
		InitLogger()
		assert.Equal(t, log.InfoLevel, log.GetLevel())
	})
}
