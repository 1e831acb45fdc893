package model

import "time"

// Patient is owned by the admin service. Records and Appointments are
// attached by the service layer when the patient is read with relations.
type Patient struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Age       *int      `db:"age" json:"age"`
	Gender    *string   `db:"gender" json:"gender"`
	Address   *string   `db:"address" json:"address"`
	Phone     *string   `db:"phone" json:"phone"`
	Disease   *string   `db:"disease" json:"disease"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	Records      []*Record      `db:"-" json:"records"`
	Appointments []*Appointment `db:"-" json:"appointments"`
}

type CreatePatientRequest struct {
	Name    string  `validate:"required"`
	Age     *int    `validate:"omitempty,gte=0"`
	Gender  *string
	Address *string
	Phone   *string
	Disease *string
}

// UpdatePatientRequest carries a partial update: nil fields are left
// unchanged.
type UpdatePatientRequest struct {
	Name    *string
	Age     *int
	Gender  *string
	Address *string
	Phone   *string
	Disease *string
}
