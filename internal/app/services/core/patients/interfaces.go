package patients

import (
	"context"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/requests"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error)
	ListPatients(ctx context.Context) ([]models.Patient, error)
	GetPatient(ctx context.Context, patientID string) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error)
	DeletePatient(ctx context.Context, patientID string) (bool, error)
}

// PatientRepository is the record store adapter. FindByID and Update resolve a
// malformed identity the same way as a missing record: nil, nil.
type PatientRepository interface {
	FindAll(ctx context.Context) ([]models.Patient, error)
	Insert(ctx context.Context, patient *models.Patient) (*models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	Update(ctx context.Context, patientID string, fields map[string]interface{}) (*models.Patient, error)
	Delete(ctx context.Context, patientID string) (bool, error)
}
