package patients

import (
	"context"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/app/services/shared/auditqueue"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientRepository PatientRepository
	AuditPublisher    auditqueue.AuditPublisher
	Log               *zap.Logger
}

func NewPatientUsecase(
	patientRepository PatientRepository,
	auditPublisher auditqueue.AuditPublisher,
	log *zap.Logger,
) PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		AuditPublisher:    auditPublisher,
		Log:               log,
	}
}

func (uc *patientUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error) {
	patient, err := uc.PatientRepository.Insert(ctx, request.ToModel())
	if err != nil {
		return nil, err
	}
	uc.publishAudit(ctx, constvars.AuditActionCreate, patient.ID)
	return patient, nil
}

func (uc *patientUsecase) ListPatients(ctx context.Context) ([]models.Patient, error) {
	return uc.PatientRepository.FindAll(ctx)
}

func (uc *patientUsecase) GetPatient(ctx context.Context, patientID string) (*models.Patient, error) {
	return uc.PatientRepository.FindByID(ctx, patientID)
}

// UpdatePatient returns nil, nil both for an empty payload and for a missing
// record; the route layer folds both into the same error envelope. Updating a
// field to its current value still counts as a successful update.
func (uc *patientUsecase) UpdatePatient(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	fields := request.Fields()
	if len(fields) == 0 {
		return nil, nil
	}

	patient, err := uc.PatientRepository.Update(ctx, patientID, fields)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, nil
	}

	uc.publishAudit(ctx, constvars.AuditActionUpdate, patient.ID)
	return patient, nil
}

func (uc *patientUsecase) DeletePatient(ctx context.Context, patientID string) (bool, error) {
	deleted, err := uc.PatientRepository.Delete(ctx, patientID)
	if err != nil {
		return false, err
	}
	if deleted {
		uc.publishAudit(ctx, constvars.AuditActionDelete, patientID)
	}
	return deleted, nil
}

// publishAudit is fire-and-forget: a broken queue must never fail the request.
func (uc *patientUsecase) publishAudit(ctx context.Context, action, patientID string) {
	event := auditqueue.AuditEvent{
		ID:         uuid.NewString(),
		Action:     action,
		PatientID:  patientID,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.AuditPublisher.Publish(ctx, event); err != nil {
		uc.Log.Warn("failed to publish audit event",
			zap.String("action", action),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	}
}
