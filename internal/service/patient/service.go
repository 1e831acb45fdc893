package patient

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/medisuite/hospital-services/internal/model"
	"github.com/medisuite/hospital-services/internal/repository"
)

type PatientService interface {
	Create(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	Get(ctx context.Context, id int64) (*model.Patient, error)
	List(ctx context.Context) ([]*model.Patient, error)
	Update(ctx context.Context, id int64, req *model.UpdatePatientRequest) (*model.Patient, error)
	Delete(ctx context.Context, id int64) (*model.DeleteResult, error)
}

type Service struct {
	repo         repository.PatientRepository
	records      repository.RecordRepository
	appointments repository.AppointmentRepository
	validate     *validator.Validate
}

func NewService(repo repository.PatientRepository, records repository.RecordRepository, appointments repository.AppointmentRepository) *Service {
	return &Service{
		repo:         repo,
		records:      records,
		appointments: appointments,
		validate:     validator.New(),
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid patient data: %w", err)
	}

	patient := &model.Patient{
		Name:    req.Name,
		Age:     req.Age,
		Gender:  req.Gender,
		Address: req.Address,
		Phone:   req.Phone,
		Disease: req.Disease,
	}
	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	// A fresh patient has no related rows yet.
	patient.Records = []*model.Record{}
	patient.Appointments = []*model.Appointment{}
	return patient, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	if patient == nil {
		return nil, nil
	}
	if err := s.attachRelations(ctx, []*model.Patient{patient}); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	if err := s.attachRelations(ctx, patients); err != nil {
		return nil, err
	}
	return patients, nil
}

// Update applies only the fields present in req. An id that matches no
// row is not an error; the re-fetch simply comes back empty.
func (s *Service) Update(ctx context.Context, id int64, req *model.UpdatePatientRequest) (*model.Patient, error) {
	if _, err := s.repo.Update(ctx, id, req); err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	return s.Get(ctx, id)
}

// Delete removes the patient together with their records and
// appointments. Cascading in the service keeps the child tables' foreign
// keys satisfiable without ON DELETE CASCADE in the store.
func (s *Service) Delete(ctx context.Context, id int64) (*model.DeleteResult, error) {
	if _, err := s.records.DeleteByPatient(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete patient records: %w", err)
	}
	if _, err := s.appointments.DeleteByPatient(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to delete patient appointments: %w", err)
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete patient: %w", err)
	}
	if rows == 0 {
		return model.NotDeleted("patient", id), nil
	}
	return model.Deleted("patient", id), nil
}

func (s *Service) attachRelations(ctx context.Context, patients []*model.Patient) error {
	ids := make([]int64, 0, len(patients))
	for _, p := range patients {
		ids = append(ids, p.ID)
	}

	records, err := s.records.ListByPatients(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load patient records: %w", err)
	}
	appointments, err := s.appointments.ListByPatients(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load patient appointments: %w", err)
	}

	recordsByPatient := make(map[int64][]*model.Record, len(patients))
	for _, r := range records {
		recordsByPatient[r.PatientID] = append(recordsByPatient[r.PatientID], r)
	}
	appointmentsByPatient := make(map[int64][]*model.Appointment, len(patients))
	for _, a := range appointments {
		appointmentsByPatient[a.PatientID] = append(appointmentsByPatient[a.PatientID], a)
	}

	for _, p := range patients {
		p.Records = recordsByPatient[p.ID]
		if p.Records == nil {
			p.Records = []*model.Record{}
		}
		p.Appointments = appointmentsByPatient[p.ID]
		if p.Appointments == nil {
			p.Appointments = []*model.Appointment{}
		}
	}
	return nil
}
