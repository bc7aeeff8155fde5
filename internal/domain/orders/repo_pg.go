package orders

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

type orderRepoPG struct{ pool *pgxpool.Pool }

func NewOrderRepoPG(pool *pgxpool.Pool) OrderRepository {
	return &orderRepoPG{pool: pool}
}

func (r *orderRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const orderCols = `id, patient_id, user_id, product, product_id, product_price, cpt,
	status, shipments_remaining, delivery_mode, payment_type,
	wound_location, wound_laterality, wound_notes, icd10_primary, icd10_secondary,
	wound_length_cm, wound_width_cm, wound_depth_cm, wound_type, wound_stage, last_eval_date,
	start_date, frequency_per_week, qty_per_change, duration_days, refills_allowed, additional_instructions,
	shipping_name, shipping_phone, shipping_address, shipping_city, shipping_state, shipping_zip,
	sign_name, sign_title, signed_at, created_at, updated_at`

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	err := row.Scan(
		&o.ID, &o.PatientID, &o.UserID, &o.Product, &o.ProductID, &o.ProductPrice, &o.CPT,
		&o.Status, &o.ShipmentsRemaining, &o.DeliveryMode, &o.PaymentType,
		&o.WoundLocation, &o.WoundLaterality, &o.WoundNotes, &o.ICD10Primary, &o.ICD10Secondary,
		&o.WoundLengthCM, &o.WoundWidthCM, &o.WoundDepthCM, &o.WoundType, &o.WoundStage, &o.LastEvalDate,
		&o.StartDate, &o.FrequencyPerWeek, &o.QtyPerChange, &o.DurationDays, &o.RefillsAllowed, &o.AdditionalInstructions,
		&o.ShippingName, &o.ShippingPhone, &o.ShippingAddress, &o.ShippingCity, &o.ShippingState, &o.ShippingZip,
		&o.SignName, &o.SignTitle, &o.SignedAt, &o.CreatedAt, &o.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &o, err
}

func (r *orderRepoPG) Create(ctx context.Context, o *Order) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO orders (`+orderCols+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,
			$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,
			$21,$22,$23,$24,$25,$26,$27,$28,$29,$30,
			$31,$32,$33,$34,$35,$36,$37,$38,$39)`,
		o.ID, o.PatientID, o.UserID, o.Product, o.ProductID, o.ProductPrice, o.CPT,
		o.Status, o.ShipmentsRemaining, o.DeliveryMode, o.PaymentType,
		o.WoundLocation, o.WoundLaterality, o.WoundNotes, o.ICD10Primary, o.ICD10Secondary,
		o.WoundLengthCM, o.WoundWidthCM, o.WoundDepthCM, o.WoundType, o.WoundStage, o.LastEvalDate,
		o.StartDate, o.FrequencyPerWeek, o.QtyPerChange, o.DurationDays, o.RefillsAllowed, o.AdditionalInstructions,
		o.ShippingName, o.ShippingPhone, o.ShippingAddress, o.ShippingCity, o.ShippingState, o.ShippingZip,
		o.SignName, o.SignTitle, o.SignedAt, o.CreatedAt, o.UpdatedAt)
	return err
}

func (r *orderRepoPG) GetByID(ctx context.Context, id string) (*Order, error) {
	return scanOrder(r.conn(ctx).QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE id = $1`, id))
}

func (r *orderRepoPG) ListByClinician(ctx context.Context, clinicianID string, limit, offset int) ([]*Order, int, error) {
	return r.list(ctx, `user_id`, clinicianID, limit, offset)
}

func (r *orderRepoPG) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*Order, int, error) {
	return r.list(ctx, `patient_id`, patientID, limit, offset)
}

func (r *orderRepoPG) list(ctx context.Context, col, id string, limit, offset int) ([]*Order, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE `+col+` = $1`, id).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT `+orderCols+` FROM orders
		WHERE `+col+` = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, id, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, o)
	}
	return items, total, nil
}

func (r *orderRepoPG) CountByClinician(ctx context.Context, clinicianID string) (int, error) {
	var n int
	err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, clinicianID).Scan(&n)
	return n, err
}
