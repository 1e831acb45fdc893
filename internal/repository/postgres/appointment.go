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

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) error {
	query := `
		INSERT INTO appointments (patient_id, doctor_id, date, time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = time.Now()

	err := r.db.QueryRowxContext(ctx, query,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.Date,
		appointment.Time,
		appointment.Status,
		appointment.CreatedAt,
		appointment.UpdatedAt,
	).Scan(&appointment.ID)
	if err != nil {
		return fmt.Errorf("failed to create appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) Get(ctx context.Context, id int64) (*model.Appointment, error) {
	query := `SELECT * FROM appointments WHERE id = $1`
	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	query := `SELECT * FROM appointments ORDER BY id`
	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) ListByPatients(ctx context.Context, patientIDs []int64) ([]*model.Appointment, error) {
	return r.listByColumn(ctx, "patient_id", patientIDs)
}

func (r *appointmentRepository) ListByDoctors(ctx context.Context, doctorIDs []int64) ([]*model.Appointment, error) {
	return r.listByColumn(ctx, "doctor_id", doctorIDs)
}

func (r *appointmentRepository) listByColumn(ctx context.Context, column string, ids []int64) ([]*model.Appointment, error) {
	if len(ids) == 0 {
		return []*model.Appointment{}, nil
	}
	query, args, err := sqlx.In(
		fmt.Sprintf(`SELECT * FROM appointments WHERE %s IN (?) ORDER BY id`, column), ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build appointment query: %w", err)
	}
	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, r.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(ctx context.Context, id int64, req *model.UpdateAppointmentRequest) (int64, error) {
	b := &setBuilder{}
	if req.PatientID != nil {
		b.add("patient_id", *req.PatientID)
	}
	if req.DoctorID != nil {
		b.add("doctor_id", *req.DoctorID)
	}
	if req.Date != nil {
		b.add("date", *req.Date)
	}
	if req.Time != nil {
		b.add("time", *req.Time)
	}
	if req.Status != nil {
		b.add("status", *req.Status)
	}

	query, args := b.build("appointments", id)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to update appointment: %w", err)
	}
	return result.RowsAffected()
}

func (r *appointmentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete appointment: %w", err)
	}
	return result.RowsAffected()
}

func (r *appointmentRepository) DeleteByPatient(ctx context.Context, patientID int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE patient_id = $1`, patientID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete patient appointments: %w", err)
	}
	return result.RowsAffected()
}
