// file: utils/logger.go
package utils

import (
	"go.uber.org/zap"
)

var Log *zap.Logger = zap.NewNop()

// InitLogger 按运行环境初始化全局 zap Logger
func InitLogger(environment string) error {
	var (
		logger *zap.Logger
		err    error
	)
	if environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	Log = logger
	return nil
}
