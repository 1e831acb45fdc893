package medicine

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/medisuite/hospital-services/internal/model"
	"github.com/medisuite/hospital-services/internal/repository"
)

// PatientResolver looks up a patient that lives in the admin service's
// store. Resolve returns nil both when the patient does not exist and
// when the admin service cannot be reached; callers cannot tell the two
// apart, so a nil result on read must be treated as "no patient data".
type PatientResolver interface {
	Resolve(ctx context.Context, id string) *model.RemotePatient
	ResolveMany(ctx context.Context, ids []string) []*model.RemotePatient
}

type MedicineService interface {
	Create(ctx context.Context, req *model.CreateMedicineRequest) (*model.Medicine, error)
	Get(ctx context.Context, id int64) (*model.Medicine, error)
	List(ctx context.Context) ([]*model.Medicine, error)
	Update(ctx context.Context, id int64, req *model.UpdateMedicineRequest) (*model.Medicine, error)
	Delete(ctx context.Context, id int64) (*model.DeleteResult, error)
	ResolvePatient(ctx context.Context, patientID int64) *model.RemotePatient
}

type Service struct {
	repo     repository.MedicineRepository
	patients PatientResolver
	validate *validator.Validate
}

func NewService(repo repository.MedicineRepository, patients PatientResolver) *Service {
	return &Service{
		repo:     repo,
		patients: patients,
		validate: validator.New(),
	}
}

// Create inserts a medicine after confirming the referenced patient
// exists in the admin service. The check and the insert are two separate
// steps with no transaction spanning them; a patient deleted in between
// still yields a stored row.
func (s *Service) Create(ctx context.Context, req *model.CreateMedicineRequest) (*model.Medicine, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid medicine data: %w", err)
	}
	if s.ResolvePatient(ctx, req.PatientID) == nil {
		return nil, fmt.Errorf("patient with ID %d not found in admin service", req.PatientID)
	}

	status := model.MedicineStatusPending
	if req.Status != nil {
		status = *req.Status
	}

	medicine := &model.Medicine{
		PatientID:    req.PatientID,
		Name:         req.Name,
		Dosage:       req.Dosage,
		Instructions: req.Instructions,
		Status:       status,
		Notes:        req.Notes,
	}
	if err := s.repo.Create(ctx, medicine); err != nil {
		return nil, fmt.Errorf("failed to create medicine: %w", err)
	}
	return medicine, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Medicine, error) {
	medicine, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get medicine: %w", err)
	}
	return medicine, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Medicine, error) {
	medicines, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list medicines: %w", err)
	}
	return medicines, nil
}

// Update re-validates the cross-service reference only when the request
// actually changes patient_id; a status-only update never re-checks the
// stored reference.
func (s *Service) Update(ctx context.Context, id int64, req *model.UpdateMedicineRequest) (*model.Medicine, error) {
	if req.PatientID != nil {
		if s.ResolvePatient(ctx, *req.PatientID) == nil {
			return nil, fmt.Errorf("patient with ID %d not found in admin service", *req.PatientID)
		}
	}
	if _, err := s.repo.Update(ctx, id, req); err != nil {
		return nil, fmt.Errorf("failed to update medicine: %w", err)
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) (*model.DeleteResult, error) {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete medicine: %w", err)
	}
	if rows == 0 {
		return model.NotDeleted("medicine", id), nil
	}
	return model.Deleted("medicine", id), nil
}

// ResolvePatient hydrates a medicine's patient field at read time. The
// result may be nil long after the medicine was created: the reference is
// weak and can go stale without the pharmacy service being told.
func (s *Service) ResolvePatient(ctx context.Context, patientID int64) *model.RemotePatient {
	return s.patients.Resolve(ctx, strconv.FormatInt(patientID, 10))
}
