package model

import "time"

type Doctor struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Specialization *string   `db:"specialization" json:"specialization"`
	Phone          *string   `db:"phone" json:"phone"`
	Email          *string   `db:"email" json:"email"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`

	Appointments []*Appointment `db:"-" json:"appointments"`
}

type CreateDoctorRequest struct {
	Name           string  `validate:"required"`
	Specialization *string
	Phone          *string
	Email          *string `validate:"omitempty,email"`
}

type UpdateDoctorRequest struct {
	Name           *string
	Specialization *string
	Phone          *string
	Email          *string `validate:"omitempty,email"`
}
