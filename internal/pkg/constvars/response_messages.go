package constvars

// Envelope messages for the patient record endpoints. The exact wording is part of
// the wire contract and is asserted by callers, so treat these as frozen strings.
const (
	PatientAddedSuccessMessage  = "Patient added successfully."
	PatientsRetrievedMessage    = "Patients data retrieved successfully"
	PatientEmptyListMessage     = "Empty list returned"
	PatientRetrievedMessage     = "Patient data retrieved successfully"
	PatientUpdatedMessage       = "Patient name updated successfully"
	PatientDeletedMessage       = "Patient deleted successfully"
	PatientUpdateConfirmFormat  = "Patient with ID: %s name update is successful"
	PatientDeleteConfirmFormat  = "Patient with ID: %s removed"
	PatientNotExistMessage      = "Patient doesn't exist."
	PatientUpdateErrorMessage   = "There was an error updating the patient data."
	PatientDeleteNotExistFormat = "Patient with id %s doesn't exist"

	EnvelopeErrorOccurred        = "An error occurred"
	EnvelopeErrorOccurredWithDot = "An error occurred."

	PrivateDataMessage     = "This is private data"
	ClassifierResultFormat = "This image represents  ------>>> %s"
)
