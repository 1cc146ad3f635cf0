package utils

import (
	"os"

	"github.com/smartconseil/sc_contact/environment"
	"go.uber.org/zap"
)

// NewLogger creates a production logger when ENVIRONMENT is prod and a development one otherwise
func NewLogger() (*zap.Logger, error) {
	if os.Getenv(environment.Environment) == "prod" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
