package models

// Patient is the sole persisted entity. The store assigns the identity; every
// date field holds an ISO-8601 calendar date string.
type Patient struct {
	ID              string `bson:"_id,omitempty" json:"id"`
	FirstName       string `bson:"first_name" json:"first_name"`
	LastName        string `bson:"last_name" json:"last_name"`
	DateOfBirth     string `bson:"date_of_birth" json:"date_of_birth"`
	Gender          string `bson:"gender" json:"gender"`
	ContactNumber   string `bson:"contact_number" json:"contact_number"`
	Email           string `bson:"email" json:"email"`
	Address         string `bson:"address" json:"address"`
	VisitDate       string `bson:"visit_date" json:"visit_date"`
	DoctorName      string `bson:"doctor_name" json:"doctor_name"`
	Diagnosis       string `bson:"diagnosis" json:"diagnosis"`
	Prescription    string `bson:"prescription" json:"prescription"`
	AppointmentDate string `bson:"appointment_date" json:"appointment_date"`
	Purpose         string `bson:"purpose" json:"purpose"`
	Notes           string `bson:"notes" json:"notes"`
}

// ApplyFields overlays a partial-update field set onto the record in memory,
// mirroring what the store's $set writes. Unknown keys are ignored.
func (p *Patient) ApplyFields(fields map[string]interface{}) {
	for key, value := range fields {
		text, ok := value.(string)
		if !ok {
			continue
		}
		switch key {
		case "first_name":
			p.FirstName = text
		case "last_name":
			p.LastName = text
		case "date_of_birth":
			p.DateOfBirth = text
		case "gender":
			p.Gender = text
		case "contact_number":
			p.ContactNumber = text
		case "email":
			p.Email = text
		case "address":
			p.Address = text
		case "visit_date":
			p.VisitDate = text
		case "doctor_name":
			p.DoctorName = text
		case "diagnosis":
			p.Diagnosis = text
		case "prescription":
			p.Prescription = text
		case "appointment_date":
			p.AppointmentDate = text
		case "purpose":
			p.Purpose = text
		case "notes":
			p.Notes = text
		}
	}
}
