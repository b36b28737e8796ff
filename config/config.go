package config

import (
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	Storage StorageConfig
	Log     LogConfig
}

type AppConfig struct {
	Name string
	Env  string
}

type StorageConfig struct {
	DataDir          string
	PatientsFile     string
	AppointmentsFile string
	ScheduleFile     string
	FAQFile          string
}

type LogConfig struct {
	File  string
	Level string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	viper.SetDefault("APP_NAME", "Clinic Scheduler")
	viper.SetDefault("APP_ENV", "production")
	viper.SetDefault("DATA_DIR", ".")
	viper.SetDefault("PATIENTS_FILE", "pacientes.json")
	viper.SetDefault("APPOINTMENTS_FILE", "agendamentos.json")
	viper.SetDefault("SCHEDULE_FILE", "horarios.json")
	viper.SetDefault("FAQ_FILE", "faq.json")
	viper.SetDefault("LOG_FILE", "clinic-scheduler.log")
	viper.SetDefault("LOG_LEVEL", "info")

	// The .env file is optional; a fresh install starts on defaults.
	if err := viper.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(".env"); statErr == nil {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Name: viper.GetString("APP_NAME"),
			Env:  viper.GetString("APP_ENV"),
		},
		Storage: StorageConfig{
			DataDir:          viper.GetString("DATA_DIR"),
			PatientsFile:     viper.GetString("PATIENTS_FILE"),
			AppointmentsFile: viper.GetString("APPOINTMENTS_FILE"),
			ScheduleFile:     viper.GetString("SCHEDULE_FILE"),
			FAQFile:          viper.GetString("FAQ_FILE"),
		},
		Log: LogConfig{
			File:  viper.GetString("LOG_FILE"),
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return config, nil
}
