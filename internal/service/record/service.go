package record

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/medisuite/hospital-services/internal/model"
	"github.com/medisuite/hospital-services/internal/repository"
)

type RecordService interface {
	Create(ctx context.Context, req *model.CreateRecordRequest) (*model.Record, error)
	Get(ctx context.Context, id int64) (*model.Record, error)
	List(ctx context.Context) ([]*model.Record, error)
	Update(ctx context.Context, id int64, req *model.UpdateRecordRequest) (*model.Record, error)
	Delete(ctx context.Context, id int64) (*model.DeleteResult, error)
}

type Service struct {
	repo     repository.RecordRepository
	patients repository.PatientRepository
	doctors  repository.DoctorRepository
	validate *validator.Validate
}

func NewService(repo repository.RecordRepository, patients repository.PatientRepository, doctors repository.DoctorRepository) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		doctors:  doctors,
		validate: validator.New(),
	}
}

func (s *Service) Create(ctx context.Context, req *model.CreateRecordRequest) (*model.Record, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid record data: %w", err)
	}
	if err := s.checkReferences(ctx, &req.PatientID, &req.DoctorID); err != nil {
		return nil, err
	}

	record := &model.Record{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Diagnosis: req.Diagnosis,
		Treatment: req.Treatment,
		Notes:     req.Notes,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}

	// Re-fetch so the created record comes back with its relations.
	return s.Get(ctx, record.ID)
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Record, error) {
	record, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	if record == nil {
		return nil, nil
	}
	if err := s.attachRelations(ctx, []*model.Record{record}); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Record, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	if err := s.attachRelations(ctx, records); err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *model.UpdateRecordRequest) (*model.Record, error) {
	if err := s.checkReferences(ctx, req.PatientID, req.DoctorID); err != nil {
		return nil, err
	}
	if _, err := s.repo.Update(ctx, id, req); err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) (*model.DeleteResult, error) {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete record: %w", err)
	}
	if rows == 0 {
		return model.NotDeleted("record", id), nil
	}
	return model.Deleted("record", id), nil
}

// checkReferences verifies that referenced rows exist in this store. Nil
// ids are skipped, which is what makes partial updates cheap.
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

func (s *Service) attachRelations(ctx context.Context, records []*model.Record) error {
	patientIDs := make([]int64, 0, len(records))
	doctorIDs := make([]int64, 0, len(records))
	for _, r := range records {
		patientIDs = append(patientIDs, r.PatientID)
		doctorIDs = append(doctorIDs, r.DoctorID)
	}

	patients, err := s.patients.ListByIDs(ctx, patientIDs)
	if err != nil {
		return fmt.Errorf("failed to load record patients: %w", err)
	}
	doctors, err := s.doctors.ListByIDs(ctx, doctorIDs)
	if err != nil {
		return fmt.Errorf("failed to load record doctors: %w", err)
	}

	patientByID := make(map[int64]*model.Patient, len(patients))
	for _, p := range patients {
		patientByID[p.ID] = p
	}
	doctorByID := make(map[int64]*model.Doctor, len(doctors))
	for _, d := range doctors {
		doctorByID[d.ID] = d
	}

	for _, r := range records {
		r.Patient = patientByID[r.PatientID]
		r.Doctor = doctorByID[r.DoctorID]
	}
	return nil
}
