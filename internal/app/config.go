package app

import (
	"time"

	"github.com/yungbote/recordstore-backend/internal/platform/logger"
	"github.com/yungbote/recordstore-backend/internal/utils"
)

type Config struct {
	JWTSecretKey string
	TokenTTL     time.Duration
	RedisAddr    string
	SessionTTL   time.Duration
	Port         string
	Environment  string
}

func LoadConfig(log *logger.Logger) Config {
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	tokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	redisAddr := utils.GetEnv("REDIS_ADDR", "", log)
	sessionTTLSeconds := utils.GetEnvAsInt("SESSION_TTL", 86400, log)
	port := utils.GetEnv("PORT", "8080", log)
	environment := utils.GetEnv("APP_ENV", "development", log)
	return Config{
		JWTSecretKey: jwtSecretKey,
		TokenTTL:     time.Duration(tokenTTLSeconds) * time.Second,
		RedisAddr:    redisAddr,
		SessionTTL:   time.Duration(sessionTTLSeconds) * time.Second,
		Port:         port,
		Environment:  environment,
	}
}
