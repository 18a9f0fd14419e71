package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/handy-tictactoe/internal/apperror"
)

const (
	OpponentBot   = "bot"
	OpponentHuman = "human"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Session  Session `yaml:"session"`
	Redis    Redis   `yaml:"redis"`
}

// Session holds the defaults every new game session starts from.
type Session struct {
	DebounceThreshold int      `yaml:"debounce-threshold" env:"DEBOUNCE_THRESHOLD" env-default:"30"`
	Symbols           []string `yaml:"symbols" env:"SYMBOLS" env-default:"X,O"`
	PlayerNames       []string `yaml:"player-names" env:"PLAYER_NAMES" env-default:"Player,Computer"`
	Opponent          string   `yaml:"opponent" env:"OPPONENT" env-default:"bot"`
	BotMovesFirst     bool     `yaml:"bot-moves-first" env:"BOT_MOVES_FIRST" env-default:"false"`
	FastestWin        bool     `yaml:"fastest-win" env:"FASTEST_WIN" env-default:"false"`
}

type Redis struct {
	Enabled     bool          `yaml:"enabled" env:"REDIS_ENABLED" env-default:"false"`
	Host        string        `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port        string        `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	SnapshotTTL time.Duration `yaml:"snapshot-ttl" env:"REDIS_SNAPSHOT_TTL" env-default:"10m"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load reads path, applies environment overrides and validates the result.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	session := that.Session

	if session.DebounceThreshold <= 0 {
		return fmt.Errorf("%w: debounce-threshold must be positive, got %d", apperror.ErrInvalidConfiguration, session.DebounceThreshold)
	}

	if len(session.Symbols) != 2 || session.Symbols[0] == "" || session.Symbols[1] == "" || session.Symbols[0] == session.Symbols[1] {
		return fmt.Errorf("%w: symbols must be two distinct values, got %v", apperror.ErrInvalidConfiguration, session.Symbols)
	}

	if len(session.PlayerNames) > 2 {
		return fmt.Errorf("%w: at most two player-names, got %d", apperror.ErrInvalidConfiguration, len(session.PlayerNames))
	}

	if session.Opponent != OpponentBot && session.Opponent != OpponentHuman {
		return fmt.Errorf("%w: unknown opponent %q", apperror.ErrInvalidConfiguration, session.Opponent)
	}

	if that.Redis.Enabled && that.Redis.SnapshotTTL < 0 {
		return fmt.Errorf("%w: negative redis snapshot-ttl", apperror.ErrInvalidConfiguration)
	}

	return nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
