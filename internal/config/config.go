// Package config loads application configuration from file and environment.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store       StoreConfig       `yaml:"store" mapstructure:"store"`
	Ollama      OllamaConfig      `yaml:"ollama" mapstructure:"ollama"`
	Groq        HostedLLMConfig   `yaml:"groq" mapstructure:"groq"`
	Together    HostedLLMConfig   `yaml:"together" mapstructure:"together"`
	HuggingFace HostedLLMConfig   `yaml:"huggingface" mapstructure:"huggingface"`
	Anthropic   HostedLLMConfig   `yaml:"anthropic" mapstructure:"anthropic"`
	Mailgun     MailgunConfig     `yaml:"mailgun" mapstructure:"mailgun"`
	SMTP        SMTPConfig        `yaml:"smtp" mapstructure:"smtp"`
	Hunter      HunterConfig      `yaml:"hunter" mapstructure:"hunter"`
	Campaign    CampaignConfig    `yaml:"campaign" mapstructure:"campaign"`
	Server      ServerConfig      `yaml:"server" mapstructure:"server"`
	Log         LogConfig         `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// OllamaConfig holds local Ollama settings.
type OllamaConfig struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
	Model   string `yaml:"model" mapstructure:"model"`
}

// HostedLLMConfig holds credentials for a hosted completion provider.
type HostedLLMConfig struct {
	Key   string `yaml:"key" mapstructure:"key"`
	Model string `yaml:"model" mapstructure:"model"`
}

// MailgunConfig holds Mailgun API credentials.
type MailgunConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Domain    string `yaml:"domain" mapstructure:"domain"`
	FromEmail string `yaml:"from_email" mapstructure:"from_email"`
	FromName  string `yaml:"from_name" mapstructure:"from_name"`
}

// SMTPConfig holds settings for a plain SMTP relay.
type SMTPConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Host     string `yaml:"host" mapstructure:"host"`
	User     string `yaml:"user" mapstructure:"user"`
	Password string `yaml:"password" mapstructure:"password"`
}

// HunterConfig holds Hunter.io enrichment settings.
type HunterConfig struct {
	Key string `yaml:"key" mapstructure:"key"`
}

// CampaignConfig configures email composition and pacing.
type CampaignConfig struct {
	TemplatePath   string `yaml:"template_path" mapstructure:"template_path"`
	CC             string `yaml:"cc" mapstructure:"cc"`
	SchedulingLink string `yaml:"scheduling_link" mapstructure:"scheduling_link"`
	SendDelaySecs  int    `yaml:"send_delay_secs" mapstructure:"send_delay_secs"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from config.yaml (optional) and OUTREACH_*
// environment variables, applying defaults for everything else.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("OUTREACH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only resolves keys viper already knows about, so keys
	// without a default must be bound explicitly or env-only credentials
	// are lost during Unmarshal.
	for _, key := range []string{
		"groq.key",
		"together.key",
		"huggingface.key",
		"anthropic.key",
		"hunter.key",
		"mailgun.key",
		"mailgun.domain",
		"mailgun.from_email",
		"smtp.addr",
		"smtp.host",
		"smtp.user",
		"smtp.password",
		"campaign.template_path",
	} {
		_ = v.BindEnv(key)
	}

	// Defaults
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "outreach.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8000)
	v.SetDefault("ollama.base_url", "http://localhost:11434")
	v.SetDefault("ollama.model", "llama3.2")
	v.SetDefault("groq.model", "llama-3.3-70b-versatile")
	v.SetDefault("together.model", "meta-llama/Llama-2-7b-chat-hf")
	v.SetDefault("huggingface.model", "microsoft/DialoGPT-medium")
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("campaign.send_delay_secs", 3)
	v.SetDefault("campaign.scheduling_link", "https://timerex.net/s/jake_aff6/ee8be5cd/")
	v.SetDefault("campaign.cc", "joseph@omnilinks-group.com")
	v.SetDefault("mailgun.from_name", "Denpota Jacob Furugaki")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// From returns the From header value for outbound mail.
func (m MailgunConfig) From() string {
	if m.FromName == "" {
		return m.FromEmail
	}
	return m.FromName + " <" + m.FromEmail + ">"
}

// InitLogger configures the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
