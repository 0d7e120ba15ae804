package config

import (
	"fmt"
	"time"

	"github.com/Veer-w/Online-Chatbot-for-ticketing/internal/domain"
	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"   validate:"required"`
	Logger   LoggerConfig   `yaml:"logger"   validate:"required"`
	Gin      GinConfig      `yaml:"gin"      validate:"required"`
	Postgres PostgresConfig `yaml:"postgres" validate:"required"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	Telegram TelegramConfig `yaml:"telegram"`
	Payment  PaymentConfig  `yaml:"payment"  validate:"required"`
	Museum   MuseumConfig   `yaml:"museum"   validate:"required"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog" validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"required,oneof=debug info warn error"`
}

func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type PostgresConfig struct {
	Host         string `yaml:"host"           env:"DB_HOST"           env-default:"localhost"      validate:"required"`
	Port         int    `yaml:"port"           env:"DB_PORT"           env-default:"5432"           validate:"required,min=1,max=65535"`
	User         string `yaml:"user"           env:"DB_USER"           env-default:"postgres"       validate:"required"`
	Password     string `yaml:"password"       env:"DB_PASSWORD"       env-default:"postgres"       validate:"required"`
	Database     string `yaml:"database"       env:"DB_NAME"           env-default:"museum_tickets" validate:"required"`
	SSLMode      string `yaml:"sslmode"        env:"DB_SSLMODE"        env-default:"disable"        validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS" env-default:"10"             validate:"min=1"`
	MaxIdleConns int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS" env-default:"5"              validate:"min=1"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// SMTPConfig is optional: with no address or password the service runs with
// confirmation emails disabled.
type SMTPConfig struct {
	Host     string `yaml:"host"      env:"SMTP_HOST"      env-default:"smtp.gmail.com"`
	Port     int    `yaml:"port"      env:"SMTP_PORT"      env-default:"587"`
	From     string `yaml:"from"      env:"EMAIL_ADDRESS"  env-default:""`
	Password string `yaml:"password"  env:"EMAIL_PASSWORD" env-default:""`
	LogoPath string `yaml:"logo_path" env:"EMAIL_LOGO"     env-default:"web/static/museum.png"`
}

type TelegramConfig struct {
	BotToken    string `yaml:"bot_token"     env:"TELEGRAM_BOT_TOKEN"     env-default:""`
	StaffChatID int64  `yaml:"staff_chat_id" env:"TELEGRAM_STAFF_CHAT_ID" env-default:"0"`
}

type PaymentConfig struct {
	UPIID     string `yaml:"upi_id"     env:"UPI_ID"         env-default:"museum@upi" validate:"required"`
	PayeeName string `yaml:"payee_name" env:"UPI_PAYEE_NAME" env-default:"Museum"     validate:"required"`
}

type MuseumConfig struct {
	Name    string `yaml:"name"    env:"MUSEUM_NAME"    env-default:"City Art Museum"    validate:"required"`
	Address string `yaml:"address" env:"MUSEUM_ADDRESS" env-default:"Sector-12, Moshi, Pune" validate:"required"`
	Hours   string `yaml:"hours"   env:"MUSEUM_HOURS"   env-default:"9:00 AM - 5:00 PM, Tuesday through Sunday (Closed on Mondays)" validate:"required"`
	Phone   string `yaml:"phone"   env:"MUSEUM_PHONE"   env-default:"7083850807"         validate:"required"`
}

// Info converts the config section into the domain value handed to the dialog
// and the email notifier.
func (m MuseumConfig) Info() domain.MuseumInfo {
	return domain.MuseumInfo{
		Name:    m.Name,
		Address: m.Address,
		Hours:   m.Hours,
		Phone:   m.Phone,
	}
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
