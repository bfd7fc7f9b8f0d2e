package patients

import (
	"context"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/app/services/shared/auditqueue"
	"medrecord-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) FindAll(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Insert(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	args := m.Called(ctx, patient)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Update(ctx context.Context, patientID string, fields map[string]interface{}) (*models.Patient, error) {
	args := m.Called(ctx, patientID, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Patient), args.Error(1)
}

func (m *MockPatientRepository) Delete(ctx context.Context, patientID string) (bool, error) {
	args := m.Called(ctx, patientID)
	return args.Bool(0), args.Error(1)
}

type MockAuditPublisher struct {
	mock.Mock
}

func (m *MockAuditPublisher) Publish(ctx context.Context, event auditqueue.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func validCreateRequest() *requests.CreatePatient {
	return &requests.CreatePatient{
		FirstName:       "Jane",
		LastName:        "Doe",
		DateOfBirth:     "1990-05-14",
		Gender:          "female",
		ContactNumber:   "555-0100",
		Email:           "jane.doe@example.com",
		Address:         "12 Elm Street",
		VisitDate:       "2026-08-01",
		DoctorName:      "Dr. Strange",
		Diagnosis:       "Migraine",
		Prescription:    "Ibuprofen",
		AppointmentDate: "2026-09-01",
		Purpose:         "Follow up",
		Notes:           "None",
	}
}

func TestCreatePatientPublishesAuditEvent(t *testing.T) {
	repo := new(MockPatientRepository)
	publisher := new(MockAuditPublisher)
	uc := NewPatientUsecase(repo, publisher, zap.NewNop())

	request := validCreateRequest()
	stored := request.ToModel()
	stored.ID = "64f1c0ffee0000000000aaaa"

	repo.On("Insert", mock.Anything, mock.Anything).Return(stored, nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	patient, err := uc.CreatePatient(context.Background(), request)
	assert.NoError(t, err)
	assert.Equal(t, stored.ID, patient.ID)
	assert.Equal(t, request.FirstName, patient.FirstName)

	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCreatePatientAuditFailureDoesNotFailRequest(t *testing.T) {
	repo := new(MockPatientRepository)
	publisher := new(MockAuditPublisher)
	uc := NewPatientUsecase(repo, publisher, zap.NewNop())

	stored := validCreateRequest().ToModel()
	stored.ID = "64f1c0ffee0000000000aaaa"

	repo.On("Insert", mock.Anything, mock.Anything).Return(stored, nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(assert.AnError)

	patient, err := uc.CreatePatient(context.Background(), validCreateRequest())
	assert.NoError(t, err)
	assert.NotNil(t, patient)
}

func TestUpdatePatientEmptyPayloadIsNoOp(t *testing.T) {
	repo := new(MockPatientRepository)
	publisher := new(MockAuditPublisher)
	uc := NewPatientUsecase(repo, publisher, zap.NewNop())

	patient, err := uc.UpdatePatient(context.Background(), "64f1c0ffee0000000000aaaa", &requests.UpdatePatient{})
	assert.NoError(t, err)
	assert.Nil(t, patient)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePatientUnknownIDReturnsNil(t *testing.T) {
	repo := new(MockPatientRepository)
	publisher := new(MockAuditPublisher)
	uc := NewPatientUsecase(repo, publisher, zap.NewNop())

	repo.On("Update", mock.Anything, "unknown-id", mock.Anything).Return(nil, nil)

	firstName := "Janet"
	patient, err := uc.UpdatePatient(context.Background(), "unknown-id", &requests.UpdatePatient{FirstName: &firstName})
	assert.NoError(t, err)
	assert.Nil(t, patient)

	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestUpdatePatientChangesOnlySuppliedFields(t *testing.T) {
	repo := new(MockPatientRepository)
	publisher := new(MockAuditPublisher)
	uc := NewPatientUsecase(repo, publisher, zap.NewNop())

	before := validCreateRequest().ToModel()
	before.ID = "64f1c0ffee0000000000aaaa"

	merged := *before
	merged.FirstName = "Janet"

	firstName := "Janet"
	request := &requests.UpdatePatient{FirstName: &firstName}

	repo.On("Update", mock.Anything, before.ID, map[string]interface{}{"first_name": "Janet"}).Return(&merged, nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	patient, err := uc.UpdatePatient(context.Background(), before.ID, request)
	assert.NoError(t, err)
	assert.Equal(t, "Janet", patient.FirstName)
	assert.Equal(t, before.LastName, patient.LastName)
	assert.Equal(t, before.Email, patient.Email)

	repo.AssertExpectations(t)
}

func TestDeletePatientUnknownIDSkipsAudit(t *testing.T) {
	repo := new(MockPatientRepository)
	publisher := new(MockAuditPublisher)
	uc := NewPatientUsecase(repo, publisher, zap.NewNop())

	repo.On("Delete", mock.Anything, "unknown-id").Return(false, nil)

	deleted, err := uc.DeletePatient(context.Background(), "unknown-id")
	assert.NoError(t, err)
	assert.False(t, deleted)

	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}
