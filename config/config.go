// file: config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config 全局配置，通过环境变量加载，均带默认值，便于本地直接启动
type Config struct {
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	HTTP struct {
		Addr string `env:"HTTP_ADDR" env-default:":8080"`
	}

	Database struct {
		Username        string        `env:"DATABASE_USERNAME" env-default:"root"`
		Password        string        `env:"DATABASE_PASSWORD" env-default:"123456"`
		Host            string        `env:"DATABASE_HOST" env-default:"localhost"`
		Port            int           `env:"DATABASE_PORT" env-default:"3306"`
		Name            string        `env:"DATABASE_NAME" env-default:"hguoj"`
		MaxIdleConns    int           `env:"DATABASE_MAX_IDLE_CONNS" env-default:"10"`
		MaxOpenConns    int           `env:"DATABASE_MAX_OPEN_CONNS" env-default:"100"`
		ConnMaxLifetime time.Duration `env:"DATABASE_CONN_MAX_LIFETIME" env-default:"1h"`
	}

	Redis struct {
		Addr     string `env:"REDIS_ADDR" env-default:"localhost:6379"`
		Password string `env:"REDIS_PASSWORD" env-default:""`
		DB       int    `env:"REDIS_DB" env-default:"0"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"100"`
	}

	JWT struct {
		Secret string        `env:"JWT_SECRET" env-default:"change-me-in-production"`
		TTL    time.Duration `env:"JWT_TTL" env-default:"168h"`
	}
}

var C Config

// Load 读取环境变量填充全局配置
func Load() error {
	if err := cleanenv.ReadEnv(&C); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return nil
}

// DSN 拼接 MySQL 连接串
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.Database.Username, c.Database.Password, c.Database.Host, c.Database.Port, c.Database.Name)
}
