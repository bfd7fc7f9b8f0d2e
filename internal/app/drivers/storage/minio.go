package storage

import (
	"fmt"
	"log"
	"medrecord-service/internal/app/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

func NewMinioClient(driverConfig *config.DriverConfig) *minio.Client {
	endpoint := fmt.Sprintf("%s:%s", driverConfig.Minio.Host, driverConfig.Minio.Port)
	client, err := minio.New(endpoint, &minio.Options{
		Creds: credentials.NewStaticV4(
			driverConfig.Minio.Username,
			driverConfig.Minio.Password,
			"",
		),
		Secure: false,
	})
	if err != nil {
		log.Fatalf("Failed to create minio client: %s", err.Error())
	}
	return client
}
