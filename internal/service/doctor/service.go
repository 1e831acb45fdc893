package doctor

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/medisuite/hospital-services/internal/model"
	"github.com/medisuite/hospital-services/internal/repository"
)

type DoctorService interface {
	Create(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error)
	Get(ctx context.Context, id int64) (*model.Doctor, error)
	List(ctx context.Context) ([]*model.Doctor, error)
	Update(ctx context.Context, id int64, req *model.UpdateDoctorRequest) (*model.Doctor, error)
	Delete(ctx context.Context, id int64) (*model.DeleteResult, error)
}

type Service struct {
	repo         repository.DoctorRepository
	appointments repository.AppointmentRepository
	validate     *validator.Validate
}

func NewService(repo repository.DoctorRepository, appointments repository.AppointmentRepository) *Service {
	return &Service{
		repo:         repo,
		appointments: appointments,
		validate:     validator.New(),
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateDoctorRequest) (*model.Doctor, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid doctor data: %w", err)
	}

	doctor := &model.Doctor{
		Name:           req.Name,
		Specialization: req.Specialization,
		Phone:          req.Phone,
		Email:          req.Email,
	}
	if err := s.repo.Create(ctx, doctor); err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}

	doctor.Appointments = []*model.Appointment{}
	return doctor, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	doctor, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	if doctor == nil {
		return nil, nil
	}
	if err := s.attachRelations(ctx, []*model.Doctor{doctor}); err != nil {
		return nil, err
	}
	return doctor, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Doctor, error) {
	doctors, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	if err := s.attachRelations(ctx, doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *model.UpdateDoctorRequest) (*model.Doctor, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid doctor data: %w", err)
	}
	if _, err := s.repo.Update(ctx, id, req); err != nil {
		return nil, fmt.Errorf("failed to update doctor: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) (*model.DeleteResult, error) {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete doctor: %w", err)
	}
	if rows == 0 {
		return model.NotDeleted("doctor", id), nil
	}
	return model.Deleted("doctor", id), nil
}

func (s *Service) attachRelations(ctx context.Context, doctors []*model.Doctor) error {
	ids := make([]int64, 0, len(doctors))
	for _, d := range doctors {
		ids = append(ids, d.ID)
	}

	appointments, err := s.appointments.ListByDoctors(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load doctor appointments: %w", err)
	}

	byDoctor := make(map[int64][]*model.Appointment, len(doctors))
	for _, a := range appointments {
		byDoctor[a.DoctorID] = append(byDoctor[a.DoctorID], a)
	}
	for _, d := range doctors {
		d.Appointments = byDoctor[d.ID]
		if d.Appointments == nil {
			d.Appointments = []*model.Appointment{}
		}
	}
	return nil
}
