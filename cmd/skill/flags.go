package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"bitbucket.org/sotavant/kodi-skill/internal/kodi"
)

var flagRunAddr string
var flagLogLevel string
var flagAppID string

var flagKodiURL string
var flagKodiPort string
var flagKodiPath string
var flagKodiUser string
var flagKodiPassword string
var flagKodiTimeout time.Duration

var errBadTimeout = errors.New("kodi timeout must be a positive duration")

func parseFlags() error {
	// .env не обязателен, переменные окружения могут прийти и снаружи
	_ = godotenv.Load()

	flag.StringVar(&flagRunAddr, "a", ":8080", "address and port")
	flag.StringVar(&flagLogLevel, "l", "info", "log level")
	flag.StringVar(&flagAppID, "app-id", "", "accepted skill application id, empty disables the check")
	flag.StringVar(&flagKodiURL, "kodi-url", "", "kodi base url, https only")
	flag.StringVar(&flagKodiPort, "kodi-port", "8000", "kodi port")
	flag.StringVar(&flagKodiPath, "kodi-path", "kodi", "kodi resource path")
	flag.StringVar(&flagKodiUser, "kodi-user", "", "kodi username")
	flag.StringVar(&flagKodiPassword, "kodi-password", "", "kodi password, prefer KODI_PASSWORD")
	flag.DurationVar(&flagKodiTimeout, "kodi-timeout", kodi.DefaultTimeout, "kodi request timeout")
	flag.Parse()

	if envRunAddr := os.Getenv("RUN_ADDR"); envRunAddr != "" {
		flagRunAddr = envRunAddr
	}

	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		flagLogLevel = envLogLevel
	}

	if envAppID := os.Getenv("SKILL_APP_ID"); envAppID != "" {
		flagAppID = envAppID
	}

	if envKodiURL := os.Getenv("KODI_URL"); envKodiURL != "" {
		flagKodiURL = envKodiURL
	}

	if envKodiPort := os.Getenv("KODI_PORT"); envKodiPort != "" {
		flagKodiPort = envKodiPort
	}

	if envKodiPath := os.Getenv("KODI_PATH"); envKodiPath != "" {
		flagKodiPath = envKodiPath
	}

	if envKodiUser := os.Getenv("KODI_USER"); envKodiUser != "" {
		flagKodiUser = envKodiUser
	}

	if envKodiPassword := os.Getenv("KODI_PASSWORD"); envKodiPassword != "" {
		flagKodiPassword = envKodiPassword
	}

	if envKodiTimeout := os.Getenv("KODI_TIMEOUT"); envKodiTimeout != "" {
		d, err := time.ParseDuration(envKodiTimeout)
		if err != nil {
			return fmt.Errorf("%w: KODI_TIMEOUT=%q: %w", errBadTimeout, envKodiTimeout, err)
		}
		flagKodiTimeout = d
	}

	return nil
}

// checkConfig проверяет настройки до запуска сервера.
func checkConfig() error {
	if flagKodiTimeout <= 0 {
		return fmt.Errorf("%w: got %s", errBadTimeout, flagKodiTimeout)
	}
	return kodiEndpoint().Validate()
}

func kodiEndpoint() kodi.Endpoint {
	return kodi.Endpoint{
		BaseURL:      flagKodiURL,
		Port:         flagKodiPort,
		ResourcePath: flagKodiPath,
		Username:     flagKodiUser,
		Password:     flagKodiPassword,
	}
}
