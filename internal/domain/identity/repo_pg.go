package identity

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collagendirect/portal/internal/platform/db"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// =========== Clinician Repository ===========

type clinicianRepoPG struct{ pool *pgxpool.Pool }

func NewClinicianRepoPG(pool *pgxpool.Pool) ClinicianRepository {
	return &clinicianRepoPG{pool: pool}
}

func (r *clinicianRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const clinicianCols = `id, first_name, last_name, email, practice_name, npi,
	sign_name, sign_title, created_at, updated_at`

func scanClinician(row pgx.Row) (*Clinician, error) {
	var c Clinician
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.PracticeName, &c.NPI,
		&c.SignName, &c.SignTitle, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &c, err
}

func (r *clinicianRepoPG) Create(ctx context.Context, c *Clinician) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO users (id, first_name, last_name, email, practice_name, npi,
			sign_name, sign_title, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		c.ID, c.FirstName, c.LastName, c.Email, c.PracticeName, c.NPI,
		c.SignName, c.SignTitle, c.CreatedAt, c.UpdatedAt)
	return err
}

func (r *clinicianRepoPG) GetByID(ctx context.Context, id string) (*Clinician, error) {
	return scanClinician(r.conn(ctx).QueryRow(ctx, `SELECT `+clinicianCols+` FROM users WHERE id = $1`, id))
}

func (r *clinicianRepoPG) Update(ctx context.Context, c *Clinician) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE users SET first_name=$2, last_name=$3, email=$4, practice_name=$5,
			npi=$6, sign_name=$7, sign_title=$8, updated_at=NOW()
		WHERE id = $1`,
		c.ID, c.FirstName, c.LastName, c.Email, c.PracticeName,
		c.NPI, c.SignName, c.SignTitle)
	return err
}

// =========== Patient Repository ===========

type patientRepoPG struct{ pool *pgxpool.Pool }

func NewPatientRepoPG(pool *pgxpool.Pool) PatientRepository {
	return &patientRepoPG{pool: pool}
}

func (r *patientRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const patientCols = `id, user_id, first_name, last_name, dob, mrn, phone, email,
	address, city, state, zip, insurance_provider, insurance_member_id,
	insurance_group_id, insurance_payer_phone, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.DOB, &p.MRN, &p.Phone, &p.Email,
		&p.Address, &p.City, &p.State, &p.Zip, &p.InsuranceProvider, &p.InsuranceMemberID,
		&p.InsuranceGroupID, &p.InsurancePayerPhone, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO patients (id, user_id, first_name, last_name, dob, mrn, phone, email,
			address, city, state, zip, insurance_provider, insurance_member_id,
			insurance_group_id, insurance_payer_phone, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`,
		p.ID, p.UserID, p.FirstName, p.LastName, p.DOB, p.MRN, p.Phone, p.Email,
		p.Address, p.City, p.State, p.Zip, p.InsuranceProvider, p.InsuranceMemberID,
		p.InsuranceGroupID, p.InsurancePayerPhone, p.CreatedAt, p.UpdatedAt)
	return err
}

func (r *patientRepoPG) GetByID(ctx context.Context, id string) (*Patient, error) {
	return scanPatient(r.conn(ctx).QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

func (r *patientRepoPG) GetForClinician(ctx context.Context, id, clinicianID string) (*Patient, error) {
	return scanPatient(r.conn(ctx).QueryRow(ctx,
		`SELECT `+patientCols+` FROM patients WHERE id = $1 AND user_id = $2`, id, clinicianID))
}

func (r *patientRepoPG) ListByClinician(ctx context.Context, clinicianID string, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM patients WHERE user_id = $1`, clinicianID).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+patientCols+` FROM patients WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		clinicianID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, nil
}
