package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router          *chi.Mux
		MongoDB         *mongo.Client
		Redis           *redis.Client
		AMQP            *amqp.Connection
		Minio           *minio.Client
		Logger          *zap.Logger
		LifecycleLogger *logrus.Logger
		DriverConfig    *DriverConfig
		InternalConfig  *InternalConfig
	}

	InternalConfig struct {
		App        App
		JWT        JWT
		Auth       Auth
		Classifier Classifier
		BMI        BMI
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env                        string
		Port                       string
		Address                    string
		MaxRequests                int
		ShutdownTimeout            int
		RequestBodyLimitInMegabyte int
		TokenMaxRequestsPerMinute  int
	}

	JWT struct {
		Secret          string
		ExpTimeInMinute int
	}

	Auth struct {
		Username string
		Password string
	}

	Classifier struct {
		Command          string
		ModelPath        string
		TimeoutInSeconds int
	}

	BMI struct {
		BaseURL           string
		APIKey            string
		APIHost           string
		RequestsPerSecond float64
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
		LifecycleFileName   string
	}
)
