package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	StorageMemory = "memory"
	StorageRedis  = "redis"

	LogFormatJSON = "json"
	LogFormatText = "text"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

var (
	ErrUnknownStorage   = errors.New("unknown storage")
	ErrUnknownLogFormat = errors.New("unknown log format")
	ErrUnknownLogLevel  = errors.New("unknown log level")
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log-format" env:"LOG_FORMAT" env-default:"json"`
	HTTPPort  string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Storage   string `yaml:"storage" env:"STORAGE" env-default:"memory"`
	Redis     Redis  `yaml:"redis"`
	Game      Game   `yaml:"game"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD" env-default:""`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Game struct {
	Difficulty    string        `yaml:"difficulty" env:"GAME_DIFFICULTY" env-default:"hard"`
	HumanMark     string        `yaml:"human-mark" env:"GAME_HUMAN_MARK" env-default:"X"`
	Seed          int64         `yaml:"seed" env:"GAME_SEED" env-default:"0"`
	ComputerDelay time.Duration `yaml:"computer-delay" env:"GAME_COMPUTER_DELAY" env-default:"200ms"`
	TTL           time.Duration `yaml:"ttl" env:"GAME_TTL" env-default:"1h"`
}

// MustLoad - load configuration from the config file and environment, panics on failure.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

// Load reads path when it exists, otherwise only the environment, and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, statErr := os.Stat(path); path != "" && statErr == nil {
		if err := cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	} else if err := cleanenv.ReadEnv(config); err != nil {
		return nil, fmt.Errorf("unable to read environment: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if _, err := entity.ParseDifficulty(that.Game.Difficulty); err != nil {
		return fmt.Errorf("invalid game difficulty: %w", err)
	}

	if _, err := entity.ParseMark(that.Game.HumanMark); err != nil {
		return fmt.Errorf("invalid human mark: %w", err)
	}

	switch that.Storage {
	case StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStorage, that.Storage)
	}

	if _, ok := logLevels[that.LogLevel]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLogLevel, that.LogLevel)
	}

	switch that.LogFormat {
	case LogFormatJSON, LogFormatText:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownLogFormat, that.LogFormat)
	}

	return nil
}

// SlogLevel returns the validated log level.
func (that *Config) SlogLevel() slog.Level {
	return logLevels[that.LogLevel]
}

func (that *Config) Difficulty() entity.Difficulty {
	difficulty, _ := entity.ParseDifficulty(that.Game.Difficulty)
	return difficulty
}

func (that *Config) HumanMark() entity.Mark {
	mark, _ := entity.ParseMark(that.Game.HumanMark)
	return mark
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
