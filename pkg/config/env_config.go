package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvOverrides 通过环境变量提供的运行参数
// 命令行参数优先于环境变量
type EnvOverrides struct {
	Content    string `env:"MISSION_CONTENT"`
	Music      string `env:"MISSION_MUSIC"`
	Verbose    bool   `env:"MISSION_VERBOSE"`
	Watch      bool   `env:"MISSION_WATCH"`
	Fullscreen bool   `env:"MISSION_FULLSCREEN"`
	// AppName gdata 应用目录名（会话存储）
	AppName string `env:"MISSION_APP_NAME" envDefault:"moonmission"`
}

// LoadEnvOverrides 解析环境变量
func LoadEnvOverrides() (EnvOverrides, error) {
	var cfg EnvOverrides
	if err := env.Parse(&cfg); err != nil {
		return EnvOverrides{AppName: "moonmission"}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
