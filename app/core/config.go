package core

import (
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/reportrack/reportrack/pkg/ai"
	"github.com/reportrack/reportrack/pkg/mail"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	return *conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr     string        `toml:"addr"`
	Log      Log           `toml:"log"`
	Postgres PGConfig      `toml:"postgres"`
	Auth     AuthConfig    `toml:"auth"`
	AI       ai.Config     `toml:"ai"`
	Mail     mail.Config   `toml:"mail"`
	Keyword  KeywordConfig `toml:"keyword"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("RT_API_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.Auth.FromENV()
	c.AI.FromENV(os.Getenv)
	c.Mail.FromENV(os.Getenv)
	c.Keyword.FromENV()
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("RT_API_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

// AuthConfig 会话令牌配置
type AuthConfig struct {
	TokenSecret      string `toml:"token_secret"`
	TokenExpireHours int    `toml:"token_expire_hours"` // 默认 72 小时
}

func (a *AuthConfig) FromENV() {
	a.TokenSecret = os.Getenv("RT_AUTH_TOKEN_SECRET")
}

// KeywordConfig 关键词解析表配置，path 为空时使用内置表
type KeywordConfig struct {
	Path string `toml:"path"`
}

func (k *KeywordConfig) FromENV() {
	k.Path = os.Getenv("RT_KEYWORD_TABLE_PATH")
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("RT_API_LOG_LEVEL")
	l.Path = os.Getenv("RT_API_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
