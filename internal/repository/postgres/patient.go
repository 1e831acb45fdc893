package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/medisuite/hospital-services/internal/model"
)

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (name, age, gender, address, phone, disease, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	patient.CreatedAt = time.Now()
	patient.UpdatedAt = time.Now()

	err := r.db.QueryRowxContext(ctx, query,
		patient.Name,
		patient.Age,
		patient.Gender,
		patient.Address,
		patient.Phone,
		patient.Disease,
		patient.CreatedAt,
		patient.UpdatedAt,
	).Scan(&patient.ID)
	if err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) Get(ctx context.Context, id int64) (*model.Patient, error) {
	query := `SELECT * FROM patients WHERE id = $1`
	var patient model.Patient
	err := r.db.GetContext(ctx, &patient, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return &patient, nil
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	query := `SELECT * FROM patients ORDER BY id`
	patients := []*model.Patient{}
	if err := r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) ListByIDs(ctx context.Context, ids []int64) ([]*model.Patient, error) {
	if len(ids) == 0 {
		return []*model.Patient{}, nil
	}
	query, args, err := sqlx.In(`SELECT * FROM patients WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build patient query: %w", err)
	}
	patients := []*model.Patient{}
	if err := r.db.SelectContext(ctx, &patients, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list patients by ids: %w", err)
	}
	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, id int64, req *model.UpdatePatientRequest) (int64, error) {
	b := &setBuilder{}
	if req.Name != nil {
		b.add("name", *req.Name)
	}
	if req.Age != nil {
		b.add("age", *req.Age)
	}
	if req.Gender != nil {
		b.add("gender", *req.Gender)
	}
	if req.Address != nil {
		b.add("address", *req.Address)
	}
	if req.Phone != nil {
		b.add("phone", *req.Phone)
	}
	if req.Disease != nil {
		b.add("disease", *req.Disease)
	}

	query, args := b.build("patients", id)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update patient: %w", err)
	}
	return result.RowsAffected()
}

func (r *patientRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete patient: %w", err)
	}
	return result.RowsAffected()
}
