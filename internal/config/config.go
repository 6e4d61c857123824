package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Auth            Auth            `mapstructure:",squash"`
	Dashboard       Dashboard       `mapstructure:",squash"`
	SnapshotRefresh SnapshotRefresh `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

// Dashboard agrupa os parâmetros do motor de métricas
type Dashboard struct {
	// MonthlyGoal é a meta de faturamento mensal usada no cálculo de goalPercentage
	MonthlyGoal float64 `mapstructure:"dashboard_monthly_goal"`
	// Timezone é o fuso de negócio fixado para todo cálculo de fronteira de dia
	Timezone string `mapstructure:"dashboard_timezone"`
	// FetchTimeoutSeconds limita cada busca de registros do fan-out
	FetchTimeoutSeconds int `mapstructure:"dashboard_fetch_timeout_seconds"`

	location *time.Location `mapstructure:"-"`
}

// Location retorna o fuso de negócio resolvido
func (d Dashboard) Location() *time.Location {
	if d.location == nil {
		return time.UTC
	}
	return d.location
}

type SnapshotRefresh struct {
	CronSchedule string `mapstructure:"snapshot_refresh_cron"`
	Enabled      bool   `mapstructure:"snapshot_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/loja")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("AUTH_SECRET", "your_auth_secret")

	viper.SetDefault("DASHBOARD_MONTHLY_GOAL", 10000.0)
	viper.SetDefault("DASHBOARD_TIMEZONE", "America/Sao_Paulo")
	viper.SetDefault("DASHBOARD_FETCH_TIMEOUT_SECONDS", 15)

	viper.SetDefault("SNAPSHOT_REFRESH_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("SNAPSHOT_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	loc, err := time.LoadLocation(config.Dashboard.Timezone)
	if err != nil {
		logrus.WithError(err).Warnf("Fuso horário inválido %q, usando UTC", config.Dashboard.Timezone)
		loc = time.UTC
	}
	config.Dashboard.location = loc

	if config.Dashboard.MonthlyGoal < 0 {
		logrus.Warnf("Meta mensal negativa (%.2f), usando 0", config.Dashboard.MonthlyGoal)
		config.Dashboard.MonthlyGoal = 0
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Info("Nenhum arquivo .env encontrado, usando variáveis de ambiente")
}
