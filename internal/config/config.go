package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"       validate:"required"`
	Logger      LoggerConfig      `yaml:"logger"       validate:"required"`
	Gin         GinConfig         `yaml:"gin"          validate:"required"`
	RecordStore RecordStoreConfig `yaml:"record_store" validate:"required"`
	Stripe      StripeConfig      `yaml:"stripe"       validate:"required"`
	Email       EmailConfig       `yaml:"email"`
	Storage     StorageConfig     `yaml:"storage"`
	Geo         GeoConfig         `yaml:"geo"`
	Copy        CopyConfig        `yaml:"copy"`
	Auth        AuthConfig        `yaml:"auth"         validate:"required"`
	Booking     BookingConfig     `yaml:"booking"`
	Scheduler   SchedulerConfig   `yaml:"scheduler"    validate:"required"`
	CORS        CORSConfig        `yaml:"cors"`
}

type ServerConfig struct {
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"30s"   validate:"gt=0"`
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

type RecordStoreConfig struct {
	APIKey        string        `yaml:"api_key"        env:"RECORD_STORE_API_KEY"  validate:"required"`
	BaseID        string        `yaml:"base_id"        env:"RECORD_STORE_BASE_ID"  validate:"required"`
	BookingsTable string        `yaml:"bookings_table" env:"RECORD_STORE_BOOKINGS" env-default:"Bookings" validate:"required"`
	UsersTable    string        `yaml:"users_table"    env:"RECORD_STORE_USERS"    env-default:"Users"    validate:"required"`
	RetryAttempts int           `yaml:"retry_attempts" env:"RECORD_STORE_RETRIES"  env-default:"3"        validate:"min=1"`
	RetryDelay    time.Duration `yaml:"retry_delay"    env:"RECORD_STORE_RETRY_DELAY" env-default:"500ms" validate:"gt=0"`
}

type StripeConfig struct {
	SecretKey                 string `yaml:"secret_key"                  env:"STRIPE_SECRET_KEY"       validate:"required"`
	WebhookSecret             string `yaml:"webhook_secret"              env:"STRIPE_WEBHOOK_SECRET"   validate:"required"`
	CancellationWebhookSecret string `yaml:"cancellation_webhook_secret" env:"STRIPE_CANCEL_WEBHOOK_SECRET"`
	Currency                  string `yaml:"currency"                    env:"STRIPE_CURRENCY"         env-default:"gbp"`
	SuccessURL                string `yaml:"success_url"                 env:"STRIPE_SUCCESS_URL"      env-default:"https://example.com/booking/success"`
	CancelURL                 string `yaml:"cancel_url"                  env:"STRIPE_CANCEL_URL"       env-default:"https://example.com/booking/cancelled"`
}

type EmailConfig struct {
	APIKey   string `yaml:"api_key"   env:"RESEND_API_KEY"`
	From     string `yaml:"from"      env:"EMAIL_FROM" env-default:"ShootBooker <bookings@shootbooker.example>"`
	OpsBCC   string `yaml:"ops_bcc"   env:"EMAIL_OPS_BCC" env-default:"ops@shootbooker.example"`
	Endpoint string `yaml:"endpoint"  env:"RESEND_ENDPOINT" env-default:"https://api.resend.com/emails"`
}

type StorageConfig struct {
	AppKey       string `yaml:"app_key"       env:"DROPBOX_APP_KEY"`
	AppSecret    string `yaml:"app_secret"    env:"DROPBOX_APP_SECRET"`
	RefreshToken string `yaml:"refresh_token" env:"DROPBOX_REFRESH_TOKEN"`
	RootFolder   string `yaml:"root_folder"   env:"DROPBOX_ROOT_FOLDER" env-default:"/shoots"`
}

type GeoConfig struct {
	APIKey      string            `yaml:"api_key"  env:"GETADDRESS_API_KEY"`
	Endpoint    string            `yaml:"endpoint" env:"GETADDRESS_ENDPOINT" env-default:"https://api.getaddress.io"`
	Territories map[string]string `yaml:"territories"`
}

type CopyConfig struct {
	APIKey string `yaml:"api_key" env:"OPENAI_API_KEY"`
	Model  string `yaml:"model"   env:"OPENAI_MODEL" env-default:"gpt-4o-mini"`
}

type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"JWT_SECRET"     validate:"required"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"JWT_TOKEN_TTL"  env-default:"1h" validate:"gt=0"`
}

type BookingConfig struct {
	Timezone string `yaml:"timezone" env:"BOOKING_TIMEZONE" env-default:"Europe/London"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1h" validate:"required,gt=0"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" env:"CORS_ALLOWED_ORIGINS"`
}

func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return &cfg
}
