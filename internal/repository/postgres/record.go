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

func (r *recordRepository) Create(ctx context.Context, record *model.Record) error {
	query := `
		INSERT INTO records (patient_id, doctor_id, diagnosis, treatment, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	record.CreatedAt = time.Now()
	record.UpdatedAt = time.Now()

	err := r.db.QueryRowxContext(ctx, query,
		record.PatientID,
		record.DoctorID,
		record.Diagnosis,
		record.Treatment,
		record.Notes,
		record.CreatedAt,
		record.UpdatedAt,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("failed to create record: %w", err)
	}
	return nil
}

func (r *recordRepository) Get(ctx context.Context, id int64) (*model.Record, error) {
	query := `SELECT * FROM records WHERE id = $1`
	var record model.Record
	err := r.db.GetContext(ctx, &record, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return &record, nil
}

func (r *recordRepository) List(ctx context.Context) ([]*model.Record, error) {
	query := `SELECT * FROM records ORDER BY id`
	records := []*model.Record{}
	if err := r.db.SelectContext(ctx, &records, query); err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

func (r *recordRepository) ListByPatients(ctx context.Context, patientIDs []int64) ([]*model.Record, error) {
	if len(patientIDs) == 0 {
		return []*model.Record{}, nil
	}
	query, args, err := sqlx.In(`SELECT * FROM records WHERE patient_id IN (?) ORDER BY id`, patientIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to build record query: %w", err)
	}
	records := []*model.Record{}
	if err := r.db.SelectContext(ctx, &records, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list records by patients: %w", err)
	}
	return records, nil
}

func (r *recordRepository) Update(ctx context.Context, id int64, req *model.UpdateRecordRequest) (int64, error) {
	b := &setBuilder{}
	if req.PatientID != nil {
		b.add("patient_id", *req.PatientID)
	}
	if req.DoctorID != nil {
		b.add("doctor_id", *req.DoctorID)
	}
	if req.Diagnosis != nil {
		b.add("diagnosis", *req.Diagnosis)
	}
	if req.Treatment != nil {
		b.add("treatment", *req.Treatment)
	}
	if req.Notes != nil {
		b.add("notes", *req.Notes)
	}

	query, args := b.build("records", id)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update record: %w", err)
	}
	return result.RowsAffected()
}

func (r *recordRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete record: %w", err)
	}
	return result.RowsAffected()
}

func (r *recordRepository) DeleteByPatient(ctx context.Context, patientID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM records WHERE patient_id = $1`, patientID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete patient records: %w", err)
	}
	return result.RowsAffected()
}
