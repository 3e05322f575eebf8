package shared

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSetupLoggerLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, SetupLogger(false, false).GetLevel())
	assert.Equal(t, zerolog.DebugLevel, SetupLogger(true, false).GetLevel())
	assert.Equal(t, zerolog.DebugLevel, SetupLogger(true, true).GetLevel())
}
