package app

import (
	"strings"
	"time"

	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/utils"
)

type Config struct {
	ServiceName      string
	Environment      string
	JWTSecretKey     string
	AllowedOrigins   []string
	AnswerDebounce   time.Duration
	ReminderSchedule string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	environment := utils.GetEnv("ENVIRONMENT", "development", log)
	origins := utils.GetEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000", log)
	debounceMs := utils.GetEnvAsInt("ANSWER_DEBOUNCE_MS", 2000, log)
	reminderSchedule := utils.GetEnv("REMINDER_SWEEP_SCHEDULE", "@every 1m", log)

	return Config{
		ServiceName:      "venturepath-backend",
		Environment:      environment,
		JWTSecretKey:     jwtSecretKey,
		AllowedOrigins:   splitOrigins(origins),
		AnswerDebounce:   time.Duration(debounceMs) * time.Millisecond,
		ReminderSchedule: reminderSchedule,
	}
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			origins = append(origins, part)
		}
	}
	return origins
}
