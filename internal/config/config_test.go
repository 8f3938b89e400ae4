package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	os.Args = []string{"coursepay"}

	cfg := New()

	assert.Equal(t, "localhost:8080", cfg.Address)
	assert.Equal(t, "http://localhost:8090", cfg.LMSAddress)
	assert.Equal(t, "info", cfg.LogLvl)
	assert.NotEmpty(t, cfg.Database)
	assert.NotEmpty(t, cfg.WebhookKey)
}

func TestNewWithEnv(t *testing.T) {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	os.Args = []string{"coursepay"}
	t.Setenv("RUN_ADDRESS", "0.0.0.0:9000")
	t.Setenv("LMS_ADDRESS", "https://lms.example.com")
	t.Setenv("LOG_LVL", "debug")

	cfg := New()

	assert.Equal(t, "0.0.0.0:9000", cfg.Address)
	assert.Equal(t, "https://lms.example.com", cfg.LMSAddress)
	assert.Equal(t, "debug", cfg.LogLvl)
}
