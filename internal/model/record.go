package model

import "time"

// Record is a medical record. It always belongs to one Patient and one
// Doctor in the same store; both foreign keys are non-null columns.
type Record struct {
	ID        int64     `db:"id" json:"id"`
	PatientID int64     `db:"patient_id" json:"patient_id"`
	DoctorID  int64     `db:"doctor_id" json:"doctor_id"`
	Diagnosis *string   `db:"diagnosis" json:"diagnosis"`
	Treatment *string   `db:"treatment" json:"treatment"`
	Notes     *string   `db:"notes" json:"notes"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	Patient *Patient `db:"-" json:"patient"`
	Doctor  *Doctor  `db:"-" json:"doctor"`
}

type CreateRecordRequest struct {
	PatientID int64 `validate:"required"`
	DoctorID  int64 `validate:"required"`
	Diagnosis *string
	Treatment *string
	Notes     *string
}

type UpdateRecordRequest struct {
	PatientID *int64
	DoctorID  *int64
	Diagnosis *string
	Treatment *string
	Notes     *string
}
