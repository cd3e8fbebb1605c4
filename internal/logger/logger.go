// Package logger builds the process-wide zap logger.
package logger

import (
	"go.uber.org/zap"

	"github.com/HM-aes/smbshield/internal/config"
)

// New returns a production logger in prod, a development logger otherwise.
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "prod" || cfg.Env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
