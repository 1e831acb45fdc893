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

func (r *doctorRepository) Create(ctx context.Context, doctor *model.Doctor) error {
	query := `
		INSERT INTO doctors (name, specialization, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	doctor.CreatedAt = time.Now()
	doctor.UpdatedAt = time.Now()

	err := r.db.QueryRowxContext(ctx, query,
		doctor.Name,
		doctor.Specialization,
		doctor.Phone,
		doctor.Email,
		doctor.CreatedAt,
		doctor.UpdatedAt,
	).Scan(&doctor.ID)
	if err != nil {
		return fmt.Errorf("failed to create doctor: %w", err)
	}
	return nil
}

func (r *doctorRepository) Get(ctx context.Context, id int64) (*model.Doctor, error) {
	query := `SELECT * FROM doctors WHERE id = $1`
	var doctor model.Doctor
	err := r.db.GetContext(ctx, &doctor, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get doctor: %w", err)
	}
	return &doctor, nil
}

func (r *doctorRepository) List(ctx context.Context) ([]*model.Doctor, error) {
	query := `SELECT * FROM doctors ORDER BY id`
	doctors := []*model.Doctor{}
	if err := r.db.SelectContext(ctx, &doctors, query); err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) ListByIDs(ctx context.Context, ids []int64) ([]*model.Doctor, error) {
	if len(ids) == 0 {
		return []*model.Doctor{}, nil
	}
	query, args, err := sqlx.In(`SELECT * FROM doctors WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build doctor query: %w", err)
	}
	doctors := []*model.Doctor{}
	if err := r.db.SelectContext(ctx, &doctors, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list doctors by ids: %w", err)
	}
	return doctors, nil
}

func (r *doctorRepository) Update(ctx context.Context, id int64, req *model.UpdateDoctorRequest) (int64, error) {
	b := &setBuilder{}
	if req.Name != nil {
		b.add("name", *req.Name)
	}
	if req.Specialization != nil {
		b.add("specialization", *req.Specialization)
	}
	if req.Phone != nil {
		b.add("phone", *req.Phone)
	}
	if req.Email != nil {
		b.add("email", *req.Email)
	}

	query, args := b.build("doctors", id)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update doctor: %w", err)
	}
	return result.RowsAffected()
}

func (r *doctorRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM doctors WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete doctor: %w", err)
	}
	return result.RowsAffected()
}
