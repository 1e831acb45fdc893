package appointment

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/medisuite/hospital-services/internal/model"
	"github.com/medisuite/hospital-services/internal/repository"
)

type AppointmentService interface {
	Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error)
	Get(ctx context.Context, id int64) (*model.Appointment, error)
	List(ctx context.Context) ([]*model.Appointment, error)
	Update(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) (*model.Appointment, error)
	Delete(ctx context.Context, id int64) (*model.DeleteResult, error)
}

type Service struct {
	repo     repository.AppointmentRepository
	patients repository.PatientRepository
	doctors  repository.DoctorRepository
	validate *validator.Validate
}

func NewService(repo repository.AppointmentRepository, patients repository.PatientRepository, doctors repository.DoctorRepository) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		doctors:  doctors,
		validate: validator.New(),
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid appointment data: %w", err)
	}
	if err := s.checkReferences(ctx, &req.PatientID, &req.DoctorID); err != nil {
		return nil, err
	}

	status := model.AppointmentStatusScheduled
	if req.Status != nil {
		if !model.ValidAppointmentStatus(*req.Status) {
			return nil, fmt.Errorf("invalid appointment status %q", *req.Status)
		}
		status = *req.Status
	}

	appointment := &model.Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      req.Date,
		Time:      req.Time,
		Status:    status,
	}
	if err := s.repo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	return s.Get(ctx, appointment.ID)
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	if appointment == nil {
		return nil, nil
	}
	if err := s.attachRelations(ctx, []*model.Appointment{appointment}); err != nil {
		return nil, err
	}
	return appointment, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Appointment, error) {
	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	if err := s.attachRelations(ctx, appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	if req.Status != nil && !model.ValidAppointmentStatus(*req.Status) {
		return nil, fmt.Errorf("invalid appointment status %q", *req.Status)
	}
	if err := s.checkReferences(ctx, req.PatientID, req.DoctorID); err != nil {
		return nil, err
	}
	if _, err := s.repo.Update(ctx, id, req); err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) (*model.DeleteResult, error) {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete appointment: %w", err)
	}
	if rows == 0 {
		return model.NotDeleted("appointment", id), nil
	}
	return model.Deleted("appointment", id), nil
}

func (s *Service) checkReferences(ctx context.Context, patientID, doctorID *int64) error {
	if patientID != nil {
		patient, err := s.patients.Get(ctx, *patientID)
		if err != nil {
			return fmt.Errorf("failed to check patient: %w", err)
		}
		if patient == nil {
			return fmt.Errorf("patient %d not found", *patientID)
		}
	}
	if doctorID != nil {
		doctor, err := s.doctors.Get(ctx, *doctorID)
		if err != nil {
			return fmt.Errorf("failed to check doctor: %w", err)
		}
		if doctor == nil {
			return fmt.Errorf("doctor %d not found", *doctorID)
		}
	}
	return nil
}

func (s *Service) attachRelations(ctx context.Context, appointments []*model.Appointment) error {
	patientIDs := make([]int64, 0, len(appointments))
	doctorIDs := make([]int64, 0, len(appointments))
	for _, a := range appointments {
		patientIDs = append(patientIDs, a.PatientID)
		doctorIDs = append(doctorIDs, a.DoctorID)
	}

	patients, err := s.patients.ListByIDs(ctx, patientIDs)
	if err != nil {
		return fmt.Errorf("failed to load appointment patients: %w", err)
	}
	doctors, err := s.doctors.ListByIDs(ctx, doctorIDs)
	if err != nil {
		return fmt.Errorf("failed to load appointment doctors: %w", err)
	}

	patientByID := make(map[int64]*model.Patient, len(patients))
	for _, p := range patients {
		patientByID[p.ID] = p
	}
	doctorByID := make(map[int64]*model.Doctor, len(doctors))
	for _, d := range doctors {
		doctorByID[d.ID] = d
	}

	for _, a := range appointments {
		a.Patient = patientByID[a.PatientID]
		a.Doctor = doctorByID[a.DoctorID]
	}
	return nil
}
