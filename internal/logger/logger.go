package logger

import (
	"go.uber.org/zap"
)

// NewNamed builds an environment-aware named logger: a console development
// logger for "development", a production JSON logger otherwise.
func NewNamed(appEnv, name string) (*zap.Logger, error) {
	var (
		log *zap.Logger
		err error
	)
	if appEnv == "development" {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return log.Named(name), nil
}
