package patients

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func storedPatientDoc(oid primitive.ObjectID) bson.D {
	return bson.D{
		{Key: "_id", Value: oid},
		{Key: "first_name", Value: "Jane"},
		{Key: "last_name", Value: "Doe"},
		{Key: "date_of_birth", Value: "1990-05-14"},
		{Key: "gender", Value: "female"},
		{Key: "contact_number", Value: "555-0100"},
		{Key: "email", Value: "jane.doe@example.com"},
		{Key: "address", Value: "12 Elm Street"},
		{Key: "visit_date", Value: "2026-08-01"},
		{Key: "doctor_name", Value: "Dr. Strange"},
		{Key: "diagnosis", Value: "Migraine"},
		{Key: "prescription", Value: "Ibuprofen"},
		{Key: "appointment_date", Value: "2026-09-01"},
		{Key: "purpose", Value: "Follow up"},
		{Key: "notes", Value: "None"},
	}
}

// Updating a field to the value it already holds still counts as a successful
// update: the store reports zero modified documents, and that count is
// deliberately not consulted.
func TestUpdateIdenticalValueStillSucceeds(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("identical value update", func(mt *mtest.T) {
		repo := &PatientMongoRepository{Collection: mt.Coll}
		oid := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "patientdb.patients", mtest.FirstBatch, storedPatientDoc(oid)),
			mtest.CreateSuccessResponse(
				bson.E{Key: "n", Value: 1},
				bson.E{Key: "nModified", Value: 0},
			),
		)

		patient, err := repo.Update(context.Background(), oid.Hex(), map[string]interface{}{"first_name": "Jane"})
		assert.NoError(mt, err)
		assert.NotNil(mt, patient)
		assert.Equal(mt, oid.Hex(), patient.ID)
		assert.Equal(mt, "Jane", patient.FirstName)
		assert.Equal(mt, "Doe", patient.LastName)
	})
}

func TestUpdateMergesSuppliedFieldsOverPreImage(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("partial update merge", func(mt *mtest.T) {
		repo := &PatientMongoRepository{Collection: mt.Coll}
		oid := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "patientdb.patients", mtest.FirstBatch, storedPatientDoc(oid)),
			mtest.CreateSuccessResponse(
				bson.E{Key: "n", Value: 1},
				bson.E{Key: "nModified", Value: 1},
			),
		)

		patient, err := repo.Update(context.Background(), oid.Hex(), map[string]interface{}{"diagnosis": "Tension headache"})
		assert.NoError(mt, err)
		assert.NotNil(mt, patient)
		assert.Equal(mt, "Tension headache", patient.Diagnosis)
		assert.Equal(mt, "Jane", patient.FirstName)
		assert.Equal(mt, "Ibuprofen", patient.Prescription)
	})
}

func TestUpdateMissingRecordReturnsNil(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("missing record", func(mt *mtest.T) {
		repo := &PatientMongoRepository{Collection: mt.Coll}
		oid := primitive.NewObjectID()

		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, "patientdb.patients", mtest.FirstBatch),
		)

		patient, err := repo.Update(context.Background(), oid.Hex(), map[string]interface{}{"first_name": "Janet"})
		assert.NoError(mt, err)
		assert.Nil(mt, patient)
	})
}

func TestRepositoryMalformedIDResolvesAsMissing(t *testing.T) {
	repo := &PatientMongoRepository{}

	patient, err := repo.FindByID(context.Background(), "not-a-hex-object-id")
	assert.NoError(t, err)
	assert.Nil(t, patient)

	patient, err = repo.Update(context.Background(), "not-a-hex-object-id", map[string]interface{}{"first_name": "Janet"})
	assert.NoError(t, err)
	assert.Nil(t, patient)

	deleted, err := repo.Delete(context.Background(), "not-a-hex-object-id")
	assert.NoError(t, err)
	assert.False(t, deleted)
}
