package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	Database   Database   `mapstructure:",squash"`
	AppMetrica AppMetrica `mapstructure:",squash"`
	Auth       Auth       `mapstructure:",squash"`
	Redis      Redis      `mapstructure:",squash"`
	StatsSync  StatsSync  `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	MetricsToken   string   `mapstructure:"metrics_token"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type AppMetrica struct {
	AcquisitionURL    string        `mapstructure:"appmetrica_acquisition_url"`
	LogsURL           string        `mapstructure:"appmetrica_logs_url"`
	RedirectDomain    string        `mapstructure:"appmetrica_redirect_domain"`
	RedirectHost      string        `mapstructure:"-"`
	AppID             string        `mapstructure:"appmetrica_app_id"`
	OAuthToken        string        `mapstructure:"app_metrica_auth_token"`
	Publisher         string        `mapstructure:"appmetrica_publisher"`
	Campaign          string        `mapstructure:"appmetrica_campaign"`
	InstallType       string        `mapstructure:"appmetrica_install_type"`
	MasterTrackerID   string        `mapstructure:"appmetrica_master_tracker_id"`
	DateSince         string        `mapstructure:"appmetrica_date_since"`
	LogsDateUntil     string        `mapstructure:"appmetrica_logs_date_until"`
	RowLimit          int           `mapstructure:"appmetrica_row_limit"`
	Currency          string        `mapstructure:"appmetrica_currency"`
	RequestTimeout    time.Duration `mapstructure:"appmetrica_request_timeout"`
	RequestsPerSecond int           `mapstructure:"appmetrica_requests_per_second"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	SecretKey         string        `mapstructure:"auth_secret_key"`
	TokenTTL          time.Duration `mapstructure:"auth_token_ttl"`
	AdminEmail        string        `mapstructure:"auth_admin_email"`
	AdminPasswordHash string        `mapstructure:"auth_admin_password_hash"`
}

type Redis struct {
	Enabled  bool          `mapstructure:"redis_enabled"`
	Addr     string        `mapstructure:"redis_addr"`
	Password string        `mapstructure:"redis_password"`
	DB       int           `mapstructure:"redis_db"`
	LockTTL  time.Duration `mapstructure:"redis_lock_ttl"`
}

type StatsSync struct {
	CronSchedule        string `mapstructure:"stats_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"stats_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"stats_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"stats_sync_enabled"`
}

// ErrInvalidConfig é retornado quando algum valor obrigatório não foi configurado
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	// Tamanho mínimo da chave HS256
	minSecretKeyLength = 32
	// Folga para persistência e espera no rate limiter além do timeout de uma chamada ao AppMetrica
	lockSafetyMargin = 30 * time.Second
)

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	viper.SetDefault("METRICS_TOKEN", "")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/influencers?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("APPMETRICA_ACQUISITION_URL", "https://api.appmetrica.yandex.com/v2/user/acquisition")
	viper.SetDefault("APPMETRICA_LOGS_URL", "https://api.appmetrica.yandex.com/logs/v1/export/events.json")
	viper.SetDefault("APPMETRICA_REDIRECT_DOMAIN", "redirect.appmetrica.yandex.com")
	viper.SetDefault("APPMETRICA_APP_ID", "")
	viper.SetDefault("APP_METRICA_AUTH_TOKEN", "")
	viper.SetDefault("APPMETRICA_PUBLISHER", "")
	viper.SetDefault("APPMETRICA_CAMPAIGN", "")
	viper.SetDefault("APPMETRICA_INSTALL_TYPE", "")
	viper.SetDefault("APPMETRICA_MASTER_TRACKER_ID", "")
	viper.SetDefault("APPMETRICA_DATE_SINCE", "2024-01-01")      // Início da campanha
	viper.SetDefault("APPMETRICA_LOGS_DATE_UNTIL", "2030-12-31") // Janela larga para a Logs API
	viper.SetDefault("APPMETRICA_ROW_LIMIT", 10000)              // Captura todas as linhas em uma página
	viper.SetDefault("APPMETRICA_CURRENCY", "RUB")               // Moeda única de relatório
	viper.SetDefault("APPMETRICA_REQUEST_TIMEOUT", "45s")        // Timeout por requisição
	viper.SetDefault("APPMETRICA_REQUESTS_PER_SECOND", 3)        // Limite de requisições à API

	viper.SetDefault("AUTH_SECRET_KEY", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "720h")
	viper.SetDefault("AUTH_ADMIN_EMAIL", "")
	viper.SetDefault("AUTH_ADMIN_PASSWORD_HASH", "")

	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_LOCK_TTL", "90s") // Maior que o timeout do AppMetrica + folga

	viper.SetDefault("STATS_SYNC_CRON", "0 */6 * * *")      // A cada 6 horas
	viper.SetDefault("STATS_SYNC_REQUEST_DELAY_SECONDS", 1) // 1 segundo entre influenciadores
	viper.SetDefault("STATS_SYNC_MAX_CONCURRENT_JOBS", 2)   // 2 jobs concorrentes
	viper.SetDefault("STATS_SYNC_ENABLED", false)           // Sincronização periódica desabilitada

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
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Complete()

	return config, nil
}

// Complete preenche os campos derivados de outros valores da configuração
func (c *Config) Complete() {
	c.AppMetrica.RedirectHost = fmt.Sprintf("%s.%s", c.AppMetrica.AppID, c.AppMetrica.RedirectDomain)

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
}

// Validate verifica na inicialização os valores sem os quais a integração com o AppMetrica
// não tem como funcionar. Falhas transitórias continuam degradando para zero em tempo de chamada.
func (c *Config) Validate() error {
	required := map[string]string{
		"APPMETRICA_APP_ID":            c.AppMetrica.AppID,
		"APP_METRICA_AUTH_TOKEN":       c.AppMetrica.OAuthToken,
		"APPMETRICA_PUBLISHER":         c.AppMetrica.Publisher,
		"APPMETRICA_CAMPAIGN":          c.AppMetrica.Campaign,
		"APPMETRICA_INSTALL_TYPE":      c.AppMetrica.InstallType,
		"APPMETRICA_MASTER_TRACKER_ID": c.AppMetrica.MasterTrackerID,
		"AUTH_SECRET_KEY":              c.Auth.SecretKey,
	}

	missing := make([]string, 0)
	for key, value := range required {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%w: missing %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}

	if c.AppMetrica.RowLimit <= 0 {
		return fmt.Errorf("%w: APPMETRICA_ROW_LIMIT must be positive", ErrInvalidConfig)
	}

	if _, err := time.Parse(time.DateOnly, c.AppMetrica.DateSince); err != nil {
		return fmt.Errorf("%w: APPMETRICA_DATE_SINCE: %s", ErrInvalidConfig, err)
	}

	if _, err := time.Parse(time.DateOnly, c.AppMetrica.LogsDateUntil); err != nil {
		return fmt.Errorf("%w: APPMETRICA_LOGS_DATE_UNTIL: %s", ErrInvalidConfig, err)
	}

	if len(c.Auth.SecretKey) < minSecretKeyLength {
		return fmt.Errorf("%w: AUTH_SECRET_KEY must have at least %d bytes", ErrInvalidConfig, minSecretKeyLength)
	}

	// O lock precisa sobreviver ao fetch mais lento do dono, senão outra reconciliação entra no meio
	if c.Redis.Enabled {
		if minTTL := c.AppMetrica.RequestTimeout + lockSafetyMargin; c.Redis.LockTTL < minTTL {
			return fmt.Errorf("%w: REDIS_LOCK_TTL must be at least %s (APPMETRICA_REQUEST_TIMEOUT + %s)",
				ErrInvalidConfig, minTTL, lockSafetyMargin)
		}
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Info("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
