package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Instagram        Instagram        `mapstructure:",squash"`
	OpenAI           OpenAI           `mapstructure:",squash"`
	Email            Email            `mapstructure:",squash"`
	Reports          Reports          `mapstructure:",squash"`
	MetricsSync      MetricsSync      `mapstructure:",squash"`
	FeedbackAnalysis FeedbackAnalysis `mapstructure:",squash"`
	ReportSync       ReportSync       `mapstructure:",squash"`
	RetentionSweep   RetentionSweep   `mapstructure:",squash"`
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

type Instagram struct {
	BaseURL              string `mapstructure:"instagram_base_url"`
	URL                  string `mapstructure:"-"`
	Version              string `mapstructure:"instagram_version"`
	AppID                string `mapstructure:"instagram_app_id"`
	AppSecret            string `mapstructure:"instagram_app_secret"`
	RedirectURI          string `mapstructure:"instagram_redirect_uri"`
	DefaultTokenTTLHours int    `mapstructure:"instagram_default_token_ttl_hours"`
}

type OpenAI struct {
	APIKey      string  `mapstructure:"openai_api_key"`
	Model       string  `mapstructure:"openai_model"`
	Temperature float64 `mapstructure:"openai_temperature"`
}

type Email struct {
	Enabled  bool   `mapstructure:"email_enabled"`
	SMTPHost string `mapstructure:"email_smtp_host"`
	SMTPPort string `mapstructure:"email_smtp_port"`
	From     string `mapstructure:"email_from"`
	Password string `mapstructure:"email_password"`
}

type Reports struct {
	OutputDir string `mapstructure:"reports_output_dir"`
}

type MetricsSync struct {
	CronSchedule      string `mapstructure:"metrics_sync_cron"`
	MediaLimit        int    `mapstructure:"metrics_sync_media_limit"`
	MaxConcurrentJobs int    `mapstructure:"metrics_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"metrics_sync_enabled"`
}

type FeedbackAnalysis struct {
	CronSchedule      string `mapstructure:"feedback_analysis_cron"`
	MediaLimit        int    `mapstructure:"feedback_analysis_media_limit"`
	MaxConcurrentJobs int    `mapstructure:"feedback_analysis_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"feedback_analysis_enabled"`
}

type ReportSync struct {
	WeeklyCronSchedule  string `mapstructure:"report_sync_weekly_cron"`
	MonthlyCronSchedule string `mapstructure:"report_sync_monthly_cron"`
	Enabled             bool   `mapstructure:"report_sync_enabled"`
}

type RetentionSweep struct {
	CronSchedule         string `mapstructure:"retention_sweep_cron"`
	MetricsRetentionDays int    `mapstructure:"retention_metrics_days"`
	ReportsRetentionDays int    `mapstructure:"retention_reports_days"`
	Enabled              bool   `mapstructure:"retention_sweep_enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/creator_insights")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("INSTAGRAM_BASE_URL", "https://graph.instagram.com")
	viper.SetDefault("INSTAGRAM_VERSION", "v22.0")
	viper.SetDefault("INSTAGRAM_APP_ID", "your_app_id")
	viper.SetDefault("INSTAGRAM_APP_SECRET", "your_app_secret")
	viper.SetDefault("INSTAGRAM_REDIRECT_URI", "")
	viper.SetDefault("INSTAGRAM_DEFAULT_TOKEN_TTL_HOURS", 1440) // ~60 dias, padrão da plataforma

	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-3.5-turbo")
	viper.SetDefault("OPENAI_TEMPERATURE", 0.7)

	viper.SetDefault("EMAIL_ENABLED", false)
	viper.SetDefault("EMAIL_SMTP_HOST", "")
	viper.SetDefault("EMAIL_SMTP_PORT", "587")
	viper.SetDefault("EMAIL_FROM", "")
	viper.SetDefault("EMAIL_PASSWORD", "")

	viper.SetDefault("REPORTS_OUTPUT_DIR", "./reports")

	// Defaults para coleta de métricas
	viper.SetDefault("METRICS_SYNC_CRON", "0 * * * *")      // De hora em hora
	viper.SetDefault("METRICS_SYNC_MEDIA_LIMIT", 10)        // 10 publicações mais recentes
	viper.SetDefault("METRICS_SYNC_MAX_CONCURRENT_JOBS", 3) // 3 contas em paralelo
	viper.SetDefault("METRICS_SYNC_ENABLED", false)

	// Defaults para análise de feedback das publicações
	viper.SetDefault("FEEDBACK_ANALYSIS_CRON", "0 */2 * * *") // A cada 2 horas
	viper.SetDefault("FEEDBACK_ANALYSIS_MEDIA_LIMIT", 5)      // 5 publicações por conta
	viper.SetDefault("FEEDBACK_ANALYSIS_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("FEEDBACK_ANALYSIS_ENABLED", false)

	// Defaults para geração de relatórios
	viper.SetDefault("REPORT_SYNC_WEEKLY_CRON", "0 8 * * 1") // Segundas às 8h
	viper.SetDefault("REPORT_SYNC_MONTHLY_CRON", "0 9 1 * *") // Dia 1 às 9h
	viper.SetDefault("REPORT_SYNC_ENABLED", false)

	// Defaults para limpeza de dados antigos
	viper.SetDefault("RETENTION_SWEEP_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("RETENTION_METRICS_DAYS", 90)
	viper.SetDefault("RETENTION_REPORTS_DAYS", 180)
	viper.SetDefault("RETENTION_SWEEP_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
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

	config.Instagram.URL = fmt.Sprintf("%s/%s", config.Instagram.BaseURL, config.Instagram.Version)

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
