package postgres

import (
	"github.com/jmoiron/sqlx"

	"github.com/medisuite/hospital-services/internal/repository"
)

type patientRepository struct {
	db *sqlx.DB
}

type doctorRepository struct {
	db *sqlx.DB
}

type recordRepository struct {
	db *sqlx.DB
}

type appointmentRepository struct {
	db *sqlx.DB
}

type medicineRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func NewDoctorRepository(db *sqlx.DB) repository.DoctorRepository {
	return &doctorRepository{db: db}
}

func NewRecordRepository(db *sqlx.DB) repository.RecordRepository {
	return &recordRepository{db: db}
}

func NewAppointmentRepository(db *sqlx.DB) repository.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func NewMedicineRepository(db *sqlx.DB) repository.MedicineRepository {
	return &medicineRepository{db: db}
}
