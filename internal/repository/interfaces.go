package repository

import (
	"context"

	"github.com/medisuite/hospital-services/internal/model"
)

// All repository interfaces in one file.
//
// Get returns (nil, nil) when no row matches: an absent row is not an
// error. Update and Delete report the number of rows affected so callers
// can distinguish a no-op from a hit without string matching.
type (
	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		Get(ctx context.Context, id int64) (*model.Patient, error)
		List(ctx context.Context) ([]*model.Patient, error)
		ListByIDs(ctx context.Context, ids []int64) ([]*model.Patient, error)
		Update(ctx context.Context, id int64, req *model.UpdatePatientRequest) (int64, error)
		Delete(ctx context.Context, id int64) (int64, error)
	}

	DoctorRepository interface {
		Create(ctx context.Context, doctor *model.Doctor) error
		Get(ctx context.Context, id int64) (*model.Doctor, error)
		List(ctx context.Context) ([]*model.Doctor, error)
		ListByIDs(ctx context.Context, ids []int64) ([]*model.Doctor, error)
		Update(ctx context.Context, id int64, req *model.UpdateDoctorRequest) (int64, error)
		Delete(ctx context.Context, id int64) (int64, error)
	}

	RecordRepository interface {
		Create(ctx context.Context, record *model.Record) error
		Get(ctx context.Context, id int64) (*model.Record, error)
		List(ctx context.Context) ([]*model.Record, error)
		ListByPatients(ctx context.Context, patientIDs []int64) ([]*model.Record, error)
		Update(ctx context.Context, id int64, req *model.UpdateRecordRequest) (int64, error)
		Delete(ctx context.Context, id int64) (int64, error)
		DeleteByPatient(ctx context.Context, patientID int64) (int64, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		Get(ctx context.Context, id int64) (*model.Appointment, error)
		List(ctx context.Context) ([]*model.Appointment, error)
		ListByPatients(ctx context.Context, patientIDs []int64) ([]*model.Appointment, error)
		ListByDoctors(ctx context.Context, doctorIDs []int64) ([]*model.Appointment, error)
		Update(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) (int64, error)
		Delete(ctx context.Context, id int64) (int64, error)
		DeleteByPatient(ctx context.Context, patientID int64) (int64, error)
	}

	MedicineRepository interface {
		Create(ctx context.Context, medicine *model.Medicine) error
		Get(ctx context.Context, id int64) (*model.Medicine, error)
		List(ctx context.Context) ([]*model.Medicine, error)
		Update(ctx context.Context, id int64, req *model.UpdateMedicineRequest) (int64, error)
		Delete(ctx context.Context, id int64) (int64, error)
	}
)
