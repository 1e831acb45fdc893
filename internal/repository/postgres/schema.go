package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema reconciliation is additive: statements only create what is
// missing and never drop or rewrite existing tables.

var adminSchema = []string{
	`CREATE TABLE IF NOT EXISTS patients (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		age INTEGER,
		gender TEXT,
		address TEXT,
		phone TEXT,
		disease TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS doctors (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		specialization TEXT,
		phone TEXT,
		email TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS records (
		id BIGSERIAL PRIMARY KEY,
		patient_id BIGINT NOT NULL REFERENCES patients(id),
		doctor_id BIGINT NOT NULL REFERENCES doctors(id),
		diagnosis TEXT,
		treatment TEXT,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS appointments (
		id BIGSERIAL PRIMARY KEY,
		patient_id BIGINT NOT NULL REFERENCES patients(id),
		doctor_id BIGINT NOT NULL REFERENCES doctors(id),
		date TEXT,
		time TEXT,
		status TEXT NOT NULL DEFAULT 'Scheduled',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_records_patient_id ON records (patient_id)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_patient_id ON appointments (patient_id)`,
	`CREATE INDEX IF NOT EXISTS idx_appointments_doctor_id ON appointments (doctor_id)`,
}

// patient_id on medicines is a weak cross-service reference: the row it
// points at lives in the admin service, so there is deliberately no
// foreign key constraint here.
var pharmacySchema = []string{
	`CREATE TABLE IF NOT EXISTS medicines (
		id BIGSERIAL PRIMARY KEY,
		patient_id BIGINT NOT NULL,
		name TEXT NOT NULL,
		dosage TEXT,
		instructions TEXT,
		status TEXT NOT NULL DEFAULT 'Pending',
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_medicines_patient_id ON medicines (patient_id)`,
}

func MigrateAdmin(ctx context.Context, db *sqlx.DB) error {
	return migrate(ctx, db, adminSchema)
}

func MigratePharmacy(ctx context.Context, db *sqlx.DB) error {
	return migrate(ctx, db, pharmacySchema)
}

func migrate(ctx context.Context, db *sqlx.DB, statements []string) error {
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to reconcile schema: %w", err)
		}
	}
	return nil
}
