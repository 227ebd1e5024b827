package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Identificadores das origens de dados aceitos em LEDGER_SOURCES
const (
	SourceManualSheet = "manual_sheet"
	SourceFormSheet   = "form_sheet"
	SourceWorkbook    = "workbook"
	SourceSeaTable    = "seatable"
	SourcePostgres    = "postgres"
)

// Segredos menores que isso são fáceis de adivinhar para assinar tokens HS256
const minAuthSecretLength = 16

// insecureAuthSecrets são valores de exemplo que nunca podem assinar tokens em produção
var insecureAuthSecrets = map[string]struct{}{
	"your_secret_key": {},
	"secret":          {},
	"changeme":        {},
}

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	SeaTable     SeaTable     `mapstructure:",squash"`
	Sheets       Sheets       `mapstructure:",squash"`
	Workbook     Workbook     `mapstructure:",squash"`
	Ledger       Ledger       `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	WeeklyReport WeeklyReport `mapstructure:",squash"`
	LedgerWarmup LedgerWarmup `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Timezone string `mapstructure:"app_timezone"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Database struct {
	Enabled  bool   `mapstructure:"database_enabled"`
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type SeaTable struct {
	ServerURL       string  `mapstructure:"seatable_server_url"`
	APIToken        string  `mapstructure:"seatable_api_token"`
	TableName       string  `mapstructure:"seatable_table_name"`
	TimestampColumn string  `mapstructure:"seatable_timestamp_column"`
	RequestsPerSec  float64 `mapstructure:"seatable_requests_per_second"`
	PageSize        int     `mapstructure:"seatable_page_size"`
}

type Sheets struct {
	ManualCSVURL        string `mapstructure:"sheets_manual_csv_url"`
	FormCSVURL          string `mapstructure:"sheets_form_csv_url"`
	FormTimestampColumn string `mapstructure:"sheets_form_timestamp_column"`
}

type Workbook struct {
	Path  string `mapstructure:"workbook_path"`
	Sheet string `mapstructure:"workbook_sheet"`
}

// Ledger agrupa a configuração da reconciliação do livro de registros
type Ledger struct {
	// Sources em ordem de prioridade: a última vence em caso de conflito
	Sources          []string      `mapstructure:"ledger_sources"`
	CacheTTL         time.Duration `mapstructure:"ledger_cache_ttl"`
	FetchTimeout     time.Duration `mapstructure:"ledger_fetch_timeout"`
	SubmitTimeout    time.Duration `mapstructure:"ledger_submit_timeout"`
	SubmissionTarget string        `mapstructure:"ledger_submission_target"`

	// Falhas seguidas que abrem o disjuntor de uma origem e tempo até testá-la de novo
	BreakerFailures    uint32        `mapstructure:"ledger_breaker_failures"`
	BreakerOpenTimeout time.Duration `mapstructure:"ledger_breaker_open_timeout"`
}

type Auth struct {
	Password   string        `mapstructure:"auth_password"`
	Secret     string        `mapstructure:"auth_secret"`
	SessionTTL time.Duration `mapstructure:"auth_session_ttl"`
}

type WeeklyReport struct {
	CronSchedule string `mapstructure:"weekly_report_cron"`
	Enabled      bool   `mapstructure:"weekly_report_enabled"`
}

type LedgerWarmup struct {
	CronSchedule string `mapstructure:"ledger_warmup_cron"`
	Enabled      bool   `mapstructure:"ledger_warmup_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("APP_TIMEZONE", "Asia/Shanghai")

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/workload")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("SEATABLE_SERVER_URL", "https://cloud.seatable.cn")
	viper.SetDefault("SEATABLE_API_TOKEN", "")
	viper.SetDefault("SEATABLE_TABLE_NAME", "业务数据录入")
	viper.SetDefault("SEATABLE_TIMESTAMP_COLUMN", "")
	viper.SetDefault("SEATABLE_REQUESTS_PER_SECOND", 2.0)
	viper.SetDefault("SEATABLE_PAGE_SIZE", 1000)

	viper.SetDefault("SHEETS_MANUAL_CSV_URL", "")
	viper.SetDefault("SHEETS_FORM_CSV_URL", "")
	viper.SetDefault("SHEETS_FORM_TIMESTAMP_COLUMN", "时间戳记")

	viper.SetDefault("WORKBOOK_PATH", "")
	viper.SetDefault("WORKBOOK_SHEET", "")

	viper.SetDefault("LEDGER_SOURCES", SourceSeaTable)  // Ordem crescente de prioridade
	viper.SetDefault("LEDGER_CACHE_TTL", "24h")         // Lançamentos chegam uma vez por dia
	viper.SetDefault("LEDGER_FETCH_TIMEOUT", "20s")     // Origem lenta vira origem vazia
	viper.SetDefault("LEDGER_SUBMIT_TIMEOUT", "15s")    // Limite para gravação de um registro
	viper.SetDefault("LEDGER_SUBMISSION_TARGET", SourceSeaTable)
	viper.SetDefault("LEDGER_BREAKER_FAILURES", 3)
	viper.SetDefault("LEDGER_BREAKER_OPEN_TIMEOUT", "2m")

	viper.SetDefault("AUTH_PASSWORD", "")
	viper.SetDefault("AUTH_SECRET", "")
	viper.SetDefault("AUTH_SESSION_TTL", "12h")

	viper.SetDefault("WEEKLY_REPORT_CRON", "0 8 * * 5") // Toda sexta-feira às 8h
	viper.SetDefault("WEEKLY_REPORT_ENABLED", false)

	viper.SetDefault("LEDGER_WARMUP_CRON", "*/30 * * * *") // A cada 30 minutos
	viper.SetDefault("LEDGER_WARMUP_ENABLED", false)

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

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate verifica combinações de configuração que impedem a inicialização
func (c *Config) Validate() error {
	if c.Auth.Password == "" {
		return fmt.Errorf("config: AUTH_PASSWORD é obrigatório")
	}

	if _, insecure := insecureAuthSecrets[c.Auth.Secret]; insecure || len(c.Auth.Secret) < minAuthSecretLength {
		return fmt.Errorf("config: AUTH_SECRET deve ter ao menos %d caracteres e não pode ser um valor de exemplo", minAuthSecretLength)
	}

	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("config: fuso horário inválido %q: %w", c.App.Timezone, err)
	}

	for _, source := range c.Ledger.Sources {
		switch source {
		case SourceManualSheet, SourceFormSheet, SourceWorkbook, SourceSeaTable:
		case SourcePostgres:
			if !c.Database.Enabled {
				return fmt.Errorf("config: origem %q exige DATABASE_ENABLED=true", source)
			}
		default:
			return fmt.Errorf("config: origem desconhecida em LEDGER_SOURCES: %q", source)
		}
	}

	switch c.Ledger.SubmissionTarget {
	case SourceSeaTable:
	case SourcePostgres:
		if !c.Database.Enabled {
			return fmt.Errorf("config: destino %q exige DATABASE_ENABLED=true", c.Ledger.SubmissionTarget)
		}
	default:
		return fmt.Errorf("config: destino de envio inválido: %q", c.Ledger.SubmissionTarget)
	}

	// Um lançamento gravado fora das origens lidas nunca apareceria nos relatórios
	if !slices.Contains(c.Ledger.Sources, c.Ledger.SubmissionTarget) {
		return fmt.Errorf("config: destino de envio %q precisa estar em LEDGER_SOURCES", c.Ledger.SubmissionTarget)
	}

	return nil
}

// Location retorna o fuso horário usado para determinar a data de referência
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
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
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
