package models

// Student represents a learner registered at the school. LevelID is "kg" or
// "primary"; Status is free text ("active" in practice) rather than an
// enforced enumeration.
type Student struct {
	ID               int     `db:"id" json:"id"`
	AdmissionNo      string  `db:"admission_no" json:"admissionNo"`
	FirstName        string  `db:"first_name" json:"firstName"`
	LastName         string  `db:"last_name" json:"lastName"`
	LevelID          string  `db:"level_id" json:"levelId"`
	GradeID          string  `db:"grade_id" json:"gradeId"`
	StreamID         *string `db:"stream_id" json:"streamId"`
	DOB              string  `db:"dob" json:"dob"`
	Gender           string  `db:"gender" json:"gender"`
	Status           string  `db:"status" json:"status"`
	Photo            *string `db:"photo" json:"photo"`
	ParentContact    *string `db:"parent_contact" json:"parentContact"`
	EmergencyContact *string `db:"emergency_contact" json:"emergencyContact"`
	MedicalNotes     *string `db:"medical_notes" json:"medicalNotes"`
}

// StudentPatch is a partial update; nil fields are left untouched when the
// patch is merged onto an existing record.
type StudentPatch struct {
	AdmissionNo      *string `json:"admissionNo"`
	FirstName        *string `json:"firstName"`
	LastName         *string `json:"lastName"`
	LevelID          *string `json:"levelId"`
	GradeID          *string `json:"gradeId"`
	StreamID         *string `json:"streamId"`
	DOB              *string `json:"dob"`
	Gender           *string `json:"gender"`
	Status           *string `json:"status"`
	Photo            *string `json:"photo"`
	ParentContact    *string `json:"parentContact"`
	EmergencyContact *string `json:"emergencyContact"`
	MedicalNotes     *string `json:"medicalNotes"`
}

// Apply merges the patch onto a student record.
func (p StudentPatch) Apply(s *Student) {
	if p.AdmissionNo != nil {
		s.AdmissionNo = *p.AdmissionNo
	}
	if p.FirstName != nil {
		s.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		s.LastName = *p.LastName
	}
	if p.LevelID != nil {
		s.LevelID = *p.LevelID
	}
	if p.GradeID != nil {
		s.GradeID = *p.GradeID
	}
	if p.StreamID != nil {
		s.StreamID = p.StreamID
	}
	if p.DOB != nil {
		s.DOB = *p.DOB
	}
	if p.Gender != nil {
		s.Gender = *p.Gender
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Photo != nil {
		s.Photo = p.Photo
	}
	if p.ParentContact != nil {
		s.ParentContact = p.ParentContact
	}
	if p.EmergencyContact != nil {
		s.EmergencyContact = p.EmergencyContact
	}
	if p.MedicalNotes != nil {
		s.MedicalNotes = p.MedicalNotes
	}
}
