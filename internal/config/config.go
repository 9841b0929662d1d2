package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type StorePolicy string

const (
	StorePolicyAllow StorePolicy = "allow"
	StorePolicyDeny  StorePolicy = "deny"
)

var ErrInvalidStorePolicy = errors.New("invalid store error policy")

type Config struct {
	ServiceName string          `env:"SERVICE_NAME" envDefault:"trust-bridge"`
	Server      ServerConfig    `envPrefix:"SERVER_"`
	Auth        AuthConfig      `envPrefix:"AUTH_"`
	Extension   ExtensionConfig `envPrefix:"EXTENSION_"`
	Limits      LimitsConfig    `envPrefix:"LIMITS_"`
	Abuse       AbuseConfig     `envPrefix:"ABUSE_"`
	Retention   RetentionConfig `envPrefix:"RETENTION_"`
	DB          DBConfig        `envPrefix:"POSTGRES_"`
	Redis       RedisConfig     `envPrefix:"REDIS_"`
	Email       EmailConfig     `envPrefix:"EMAIL_"`
	Jaeger      JaegerConfig    `envPrefix:"JAEGER_"`
}

type ServerConfig struct {
	Mode     string `env:"MODE"      envDefault:"dev"`
	Port     int    `env:"PORT"      envDefault:"8080"`
	GRPCPort int    `env:"GRPC_PORT" envDefault:"50050"`
	Scheme   string `env:"SCHEME"    envDefault:"http"`
	Domain   string `env:"DOMAIN"    envDefault:"localhost"`
}

type AuthConfig struct {
	AccessSecret   string        `env:"ACCESS_SECRET,required"`
	RefreshSecret  string        `env:"REFRESH_SECRET,required"`
	Issuer         string        `env:"ISSUER"           envDefault:"trust-bridge"`
	AccessTTL      time.Duration `env:"ACCESS_TTL"       envDefault:"24h"`
	RefreshTTL     time.Duration `env:"REFRESH_TTL"      envDefault:"168h"`
	ExtensionTTL   time.Duration `env:"EXTENSION_TTL"    envDefault:"1h"`
	RevokeOnRotate bool          `env:"REVOKE_ON_ROTATE" envDefault:"false"`
	TrialDays      int           `env:"TRIAL_DAYS"       envDefault:"7"`
	AdminKey       string        `env:"ADMIN_KEY"`
	CaptchaEnabled bool          `env:"CAPTCHA_ENABLED"  envDefault:"false"`
	CaptchaSecret  string        `env:"CAPTCHA_SECRET"`
	PasswordCost   int           `env:"PASSWORD_COST"    envDefault:"10"`
}

type ExtensionConfig struct {
	AllowedIDs          []string      `env:"ALLOWED_IDS"           envSeparator:","`
	AutoRegisterDevices bool          `env:"AUTO_REGISTER_DEVICES" envDefault:"true"`
	FingerprintRequired bool          `env:"FINGERPRINT_REQUIRED"  envDefault:"false"`
	MaxDevices          int           `env:"MAX_DEVICES"           envDefault:"5"`
	OnStoreError        StorePolicy   `env:"ON_STORE_ERROR"        envDefault:"allow"`
	WebLoginURL         string        `env:"WEB_LOGIN_URL"         envDefault:"http://localhost:3000/login"`
	SessionWindow       time.Duration `env:"SESSION_WINDOW"        envDefault:"24h"`
	HourlyLimitTrial    int           `env:"HOURLY_LIMIT_TRIAL"    envDefault:"50"`
	HourlyLimitPro      int           `env:"HOURLY_LIMIT_PRO"      envDefault:"200"`
	HourlyLimitPremium  int           `env:"HOURLY_LIMIT_PREMIUM"  envDefault:"500"`
}

type LimitsConfig struct {
	DailyTrial   int `env:"DAILY_TRIAL"   envDefault:"20"`
	DailyPro     int `env:"DAILY_PRO"     envDefault:"200"`
	DailyPremium int `env:"DAILY_PREMIUM" envDefault:"1000"`
}

type AbuseConfig struct {
	Window             time.Duration `env:"WINDOW"                 envDefault:"1h"`
	IPThreshold        int           `env:"IP_THRESHOLD"           envDefault:"200"`
	EndpointThreshold  int           `env:"ENDPOINT_THRESHOLD"     envDefault:"50"`
	UsersPerIP         int           `env:"USERS_PER_IP_THRESHOLD" envDefault:"10"`
	MinUALength        int           `env:"MIN_UA_LENGTH"          envDefault:"10"`
	ViolationThreshold int           `env:"VIOLATION_THRESHOLD"    envDefault:"5"`
	AlertWindow        time.Duration `env:"ALERT_WINDOW"           envDefault:"1h"`
	PreAuthWindow      time.Duration `env:"PREAUTH_EVENT_WINDOW"   envDefault:"1m"`
}

type RetentionConfig struct {
	RequestLogs   time.Duration `env:"REQUEST_LOGS"   envDefault:"2h"`
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"10m"`
}

type DBConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"5432"`
	User     string `env:"USER"     envDefault:"postgres"`
	Password string `env:"PASSWORD" envDefault:"postgres"`
	Database string `env:"DB"       envDefault:"trust_bridge"`
}

type RedisConfig struct {
	Addr string `env:"ADDR" envDefault:"localhost:6379"`
	Pass string `env:"PASS"`
	DB   int    `env:"DB"   envDefault:"0"`
}

type EmailConfig struct {
	Enabled bool   `env:"ENABLED" envDefault:"false"`
	Server  string `env:"SERVER"`
	Port    int    `env:"PORT"    envDefault:"587"`
	User    string `env:"USER"`
	Pass    string `env:"PASS"`
	Admin   string `env:"ADMIN"`
}

type JaegerConfig struct {
	Sampler struct {
		Type  string  `env:"TYPE"  envDefault:"const"`
		Param float64 `env:"PARAM" envDefault:"1"`
	} `envPrefix:"SAMPLER_"`
	Reporter struct {
		LogSpans           bool   `env:"LOG_SPANS"             envDefault:"false"`
		LocalAgentHostPort string `env:"LOCAL_AGENT_HOST_PORT" envDefault:"localhost:6831"`
	} `envPrefix:"REPORTER_"`
}

// Load reads an optional .env file and parses the environment into Config.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, err
		}
	}

	conf := Config{}
	if err := env.Parse(&conf); err != nil {
		return Config{}, err
	}

	if conf.Extension.OnStoreError != StorePolicyAllow && conf.Extension.OnStoreError != StorePolicyDeny {
		return Config{}, ErrInvalidStorePolicy
	}

	if conf.Retention.RequestLogs < conf.Abuse.Window {
		conf.Retention.RequestLogs = conf.Abuse.Window
	}

	return conf, nil
}

func MustLoad(envFiles ...string) Config {
	conf, err := Load(envFiles...)
	if err != nil {
		zap.L().Fatal("failed to load config", zap.Error(err))
	}
	return conf
}
