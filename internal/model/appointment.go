package model

import "time"

type AppointmentStatus = string

const (
	AppointmentStatusScheduled AppointmentStatus = "Scheduled"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmed"
	AppointmentStatusCompleted AppointmentStatus = "Completed"
	AppointmentStatusCancelled AppointmentStatus = "Cancelled"
)

// ValidAppointmentStatus reports whether s is one of the known statuses.
func ValidAppointmentStatus(s string) bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed,
		AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

type Appointment struct {
	ID        int64     `db:"id" json:"id"`
	PatientID int64     `db:"patient_id" json:"patient_id"`
	DoctorID  int64     `db:"doctor_id" json:"doctor_id"`
	Date      *string   `db:"date" json:"date"`
	Time      *string   `db:"time" json:"time"`
	Status    string    `db:"status" json:"status"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	Patient *Patient `db:"-" json:"patient"`
	Doctor  *Doctor  `db:"-" json:"doctor"`
}

type CreateAppointmentRequest struct {
	PatientID int64 `validate:"required"`
	DoctorID  int64 `validate:"required"`
	Date      *string
	Time      *string
	Status    *string
}

type UpdateAppointmentRequest struct {
	PatientID *int64
	DoctorID  *int64
	Date      *string
	Time      *string
	Status    *string
}
