package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/medisuite/hospital-services/internal/model"
)

func (r *medicineRepository) Create(ctx context.Context, medicine *model.Medicine) error {
	query := `
		INSERT INTO medicines (patient_id, name, dosage, instructions, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	medicine.CreatedAt = time.Now()
	medicine.UpdatedAt = time.Now()

	err := r.db.QueryRowxContext(ctx, query,
		medicine.PatientID,
		medicine.Name,
		medicine.Dosage,
		medicine.Instructions,
		medicine.Status,
		medicine.Notes,
		medicine.CreatedAt,
		medicine.UpdatedAt,
	).Scan(&medicine.ID)
	if err != nil {
		return fmt.Errorf("failed to create medicine: %w", err)
	}
	return nil
}

func (r *medicineRepository) Get(ctx context.Context, id int64) (*model.Medicine, error) {
	query := `SELECT * FROM medicines WHERE id = $1`
	var medicine model.Medicine
	err := r.db.GetContext(ctx, &medicine, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get medicine: %w", err)
	}
	return &medicine, nil
}

func (r *medicineRepository) List(ctx context.Context) ([]*model.Medicine, error) {
	query := `SELECT * FROM medicines ORDER BY id`
	medicines := []*model.Medicine{}
	if err := r.db.SelectContext(ctx, &medicines, query); err != nil {
		return nil, fmt.Errorf("failed to list medicines: %w", err)
	}
	return medicines, nil
}

func (r *medicineRepository) Update(ctx context.Context, id int64, req *model.UpdateMedicineRequest) (int64, error) {
	b := &setBuilder{}
	if req.PatientID != nil {
		b.add("patient_id", *req.PatientID)
	}
	if req.Name != nil {
		b.add("name", *req.Name)
	}
	if req.Dosage != nil {
		b.add("dosage", *req.Dosage)
	}
	if req.Instructions != nil {
		b.add("instructions", *req.Instructions)
	}
	if req.Status != nil {
		b.add("status", *req.Status)
	}
	if req.Notes != nil {
		b.add("notes", *req.Notes)
	}

	query, args := b.build("medicines", id)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update medicine: %w", err)
	}
	return result.RowsAffected()
}

func (r *medicineRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM medicines WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete medicine: %w", err)
	}
	return result.RowsAffected()
}
