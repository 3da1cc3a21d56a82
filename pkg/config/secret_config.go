package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultSecretFile 本地密码文件（不提交到仓库，见 .gitignore）
const DefaultSecretFile = "secret.yaml"

// SecretConfig 通行密码配置
//
// 密码不随仓库发布：优先读取环境变量 MISSION_SECRET_CODE，
// 其次读取本地 secret.yaml 中的 secretCode 字段。
// 两者都没有时密码为空，所有输入都会被拒绝。
type SecretConfig struct {
	Code string `env:"MISSION_SECRET_CODE" yaml:"secretCode"`
	File string `env:"MISSION_SECRET_FILE" envDefault:"secret.yaml" yaml:"-"`
}

// LoadSecretConfig 加载通行密码
// fileOverride 非空时替代 MISSION_SECRET_FILE（命令行 --secret-file）
func LoadSecretConfig(fileOverride string) (SecretConfig, error) {
	var cfg SecretConfig
	if err := env.Parse(&cfg); err != nil {
		return SecretConfig{}, fmt.Errorf("parse env: %w", err)
	}
	if fileOverride != "" {
		cfg.File = fileOverride
	}

	cfg.Code = strings.TrimSpace(cfg.Code)
	if cfg.Code != "" {
		log.Printf("[SecretConfig] Secret code loaded from environment")
		return cfg, nil
	}

	code, err := readSecretFile(cfg.File)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("[SecretConfig] Warning: no secret configured (set MISSION_SECRET_CODE or create %s)", cfg.File)
			return cfg, nil
		}
		return cfg, err
	}
	cfg.Code = code
	log.Printf("[SecretConfig] Secret code loaded from %s", cfg.File)
	return cfg, nil
}

// readSecretFile 读取本地密码文件中的 secretCode
func readSecretFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read secret file %s: %w", path, err)
	}

	var file struct {
		SecretCode string `yaml:"secretCode"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return "", fmt.Errorf("failed to parse secret file %s: %w", path, err)
	}
	return strings.TrimSpace(file.SecretCode), nil
}
