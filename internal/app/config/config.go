package config

import (
	"medrecord-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "patientdb"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "patient-scans"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
			LifecycleFileName:   utils.GetEnvString("LOGGER_LIFECYCLE_FILENAME", "medrecord_lifecycle.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", ":8000"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "0.0.0.0"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 6),
			TokenMaxRequestsPerMinute:  utils.GetEnvInt("APP_TOKEN_MAX_REQUESTS_PER_MINUTE", 30),
		},
		JWT: JWT{
			Secret:          utils.GetEnvString("JWT_SECRET", "your-secret-key"),
			ExpTimeInMinute: utils.GetEnvInt("JWT_EXP_TIME_IN_MINUTE", 30),
		},
		Auth: Auth{
			Username: utils.GetEnvString("AUTH_STATIC_USERNAME", "testuser"),
			Password: utils.GetEnvString("AUTH_STATIC_PASSWORD", "testpassword"),
		},
		Classifier: Classifier{
			Command:          utils.GetEnvString("CLASSIFIER_COMMAND", "python3 scripts/predict.py"),
			ModelPath:        utils.GetEnvString("CLASSIFIER_MODEL_PATH", "models/brain_tumor_model.h5"),
			TimeoutInSeconds: utils.GetEnvInt("CLASSIFIER_TIMEOUT_IN_SECONDS", 30),
		},
		BMI: BMI{
			BaseURL:           utils.GetEnvString("BMI_API_BASE_URL", "https://body-mass-index-bmi-calculator.p.rapidapi.com/metric"),
			APIKey:            utils.GetEnvString("BMI_API_KEY", ""),
			APIHost:           utils.GetEnvString("BMI_API_HOST", "body-mass-index-bmi-calculator.p.rapidapi.com"),
			RequestsPerSecond: utils.GetEnvFloat("BMI_API_REQUESTS_PER_SECOND", 5),
		},
	}
}
