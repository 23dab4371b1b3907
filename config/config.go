package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Store drivers selectable with STORE_DRIVER
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMongo    = "mongo"
	StoreDriverMemory   = "memory"
)

type Config struct {
	App     AppConfig
	Store   StoreConfig
	DB      DBConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Session SessionConfig
	Notify  NotifyConfig
}

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string
	IsLocal  bool
}

// StoreConfig selects the backend and names the tables (or collections) it uses
type StoreConfig struct {
	Driver            string
	PatientsTable     string
	DoctorsTable      string
	AppointmentsTable string
	TransitionsTable  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

type NotifyConfig struct {
	Topic        string
	EmailTo      string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "3000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("IS_LOCAL", false)

	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("PATIENTS_TABLE", "PatientsTable")
	v.SetDefault("DOCTORS_TABLE", "DoctorsTable")
	v.SetDefault("APPOINTMENTS_TABLE", "AppointmentsTable")
	v.SetDefault("TRANSITIONS_TABLE", "AppointmentTransitionsTable")

	v.SetDefault("DB_HOST", "postgres")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "medtrack")

	v.SetDefault("MONGO_URI", "mongodb://mongo:27017")
	v.SetDefault("MONGO_DATABASE", "medtrack")

	v.SetDefault("REDIS_HOST", "redis")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SESSION_SECRET", "your-secret-key")
	v.SetDefault("SESSION_TTL", "24h")

	v.SetDefault("SMTP_PORT", 587)
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	return load(viper.New(), ".env")
}

func load(v *viper.Viper, file string) (*Config, error) {
	setDefaults(v)
	v.SetConfigFile(file)
	v.SetConfigType("env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	sessionTTL, err := time.ParseDuration(v.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 24 * time.Hour
	}

	config := &Config{
		App: AppConfig{
			Port:     v.GetString("APP_PORT"),
			Env:      v.GetString("APP_ENV"),
			LogLevel: v.GetString("LOG_LEVEL"),
			IsLocal:  v.GetBool("IS_LOCAL"),
		},
		Store: StoreConfig{
			Driver:            strings.ToLower(v.GetString("STORE_DRIVER")),
			PatientsTable:     v.GetString("PATIENTS_TABLE"),
			DoctorsTable:      v.GetString("DOCTORS_TABLE"),
			AppointmentsTable: v.GetString("APPOINTMENTS_TABLE"),
			TransitionsTable:  v.GetString("TRANSITIONS_TABLE"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
		},
		Mongo: MongoConfig{
			URI:      v.GetString("MONGO_URI"),
			Database: v.GetString("MONGO_DATABASE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Session: SessionConfig{
			Secret: v.GetString("SESSION_SECRET"),
			TTL:    sessionTTL,
		},
		Notify: NotifyConfig{
			Topic:        v.GetString("NOTIFY_TOPIC"),
			EmailTo:      v.GetString("NOTIFY_EMAIL_TO"),
			SMTPHost:     v.GetString("SMTP_HOST"),
			SMTPPort:     v.GetInt("SMTP_PORT"),
			SMTPUsername: v.GetString("SMTP_USERNAME"),
			SMTPPassword: v.GetString("SMTP_PASSWORD"),
			SMTPFrom:     v.GetString("SMTP_FROM"),
		},
	}

	// IS_LOCAL points every backend at services running on this machine
	if config.App.IsLocal {
		config.DB.Host = "localhost"
		config.Mongo.URI = "mongodb://localhost:27017"
		config.Redis.Host = "localhost"
	}

	return config, nil
}
