package logging

import (
	"github.com/Gobusters/ectologger"
	"go.uber.org/zap"
)

// New builds the process logger. Ecto log messages are routed through a zap
// core as structured payloads so output format follows the usual deployment
// conventions (JSON in production, console when PRETTY_LOGS is set).
func New(pretty bool) (ectologger.Logger, func(), error) {
	var zl *zap.Logger
	var err error
	if pretty {
		zl, err = zap.NewDevelopment()
	} else {
		zl, err = zap.NewProduction()
	}
	if err != nil {
		return nil, nil, err
	}

	logger := ectologger.NewEctoLogger(func(msg ectologger.EctoLogMessage) {
		zl.Info("log", zap.Any("entry", msg))
	})

	flush := func() { _ = zl.Sync() }
	return logger, flush, nil
}
