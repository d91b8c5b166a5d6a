// Package config предоставялет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env             string `yaml:"env" env-default:"local"`
	RedisConnection `yaml:"redis_connection"`
	HTTPServer      `yaml:"http_server"`
	PlanAPI         `yaml:"plan_api"`
	JWTToken        `yaml:"jwttoken"`
	Dashboard       `yaml:"dashboard"`
	RateLimit       `yaml:"rate_limit"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp" env-default:":3000"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp" env-default:"10s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// RedisConnection структура для настройки подключения к redis.
// Пустой адрес означает, что клиентское хранилище живёт в памяти процесса.
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries" env-default:"3"`
	DialTimeout  time.Duration `yaml:"dial_timeout" env-default:"5s"`
	TimeoutRedis time.Duration `yaml:"timeoutredis" env-default:"3s"`
}

// PlanAPI структура для настройки REST-сервиса тарифных планов
type PlanAPI struct {
	BaseURL        string        `yaml:"base_url" env-default:"http://localhost:5000/api/subscription"`
	TimeoutPlanAPI time.Duration `yaml:"timeout" env-default:"10s"`
}

// JWTToken структура для проверки токена администратора.
// Пустой ключ отключает проверку доступа к панели управления.
type JWTToken struct {
	JWTSecretKey string `yaml:"jwt_secret_key"`
	AdminRole    string `yaml:"admin_role" env-default:"admin"`
}

// Dashboard структура для настройки панели управления планами
type Dashboard struct {
	MessageTTL    time.Duration `yaml:"message_ttl" env-default:"3s"`
	IdleTTL       time.Duration `yaml:"idle_ttl" env-default:"30m"`
	SweepInterval time.Duration `yaml:"sweep_interval" env-default:"5m"`
}

// RateLimit структура для ограничения частоты изменяющих запросов
type RateLimit struct {
	RPS   float64 `yaml:"rps" env-default:"5"`
	Burst int     `yaml:"burst" env-default:"10"`
}

// MustLoad функция для загрузки конфига, путь к которому берётся из CONFIG_PATH
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return cfg
}

// Load читает конфиг из файла, подставляя значения по умолчанию
func Load(path string) (*Config, error) {
	const op = "config.Load"
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  User: %s\n"+
			"  DB: %d\n"+
			"  MaxRetries: %d\n"+
			"  DialTimeout: %s\n"+
			"  Timeout: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"PlanAPI:\n"+
			"  BaseURL: %s\n"+
			"  Timeout: %s\n"+
			"Dashboard:\n"+
			"  MessageTTL: %s\n"+
			"  IdleTTL: %s\n"+
			"  SweepInterval: %s\n"+
			"RateLimit:\n"+
			"  RPS: %g\n"+
			"  Burst: %d\n",
		c.Env,
		c.AddressRedis,
		c.User,
		c.DB,
		c.MaxRetries,
		c.DialTimeout,
		c.TimeoutRedis,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.BaseURL,
		c.TimeoutPlanAPI,
		c.MessageTTL,
		c.IdleTTL,
		c.SweepInterval,
		c.RPS,
		c.Burst,
	)
}
