package model

import "time"

const MedicineStatusPending = "Pending"

// Medicine is owned by the pharmacy service. PatientID is a weak
// cross-service reference into the admin service: there is no local
// patients table, no cascade and no synchronization. It is validated
// against the admin service only when written.
type Medicine struct {
	ID           int64     `db:"id" json:"id"`
	PatientID    int64     `db:"patient_id" json:"patient_id"`
	Name         string    `db:"name" json:"name"`
	Dosage       *string   `db:"dosage" json:"dosage"`
	Instructions *string   `db:"instructions" json:"instructions"`
	Status       string    `db:"status" json:"status"`
	Notes        *string   `db:"notes" json:"notes"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

type CreateMedicineRequest struct {
	PatientID    int64  `validate:"required"`
	Name         string `validate:"required"`
	Dosage       *string
	Instructions *string
	Status       *string
	Notes        *string
}

type UpdateMedicineRequest struct {
	PatientID    *int64
	Name         *string
	Dosage       *string
	Instructions *string
	Status       *string
	Notes        *string
}
