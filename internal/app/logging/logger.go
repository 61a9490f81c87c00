// Package logging builds the zap logger shared by the server and the CLI.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a zap logger: colored console output for development and test,
// JSON for anything else.
func NewLogger(environment string) (*zap.Logger, error) {
	var config zap.Config

	if IsDevelopment(environment) {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config = zap.NewProductionConfig()
	}

	return config.Build()
}

// IsDevelopment reports whether environment selects the development encoder
func IsDevelopment(environment string) bool {
	switch environment {
	case "", "development", "dev", "test":
		return true
	}
	return false
}
