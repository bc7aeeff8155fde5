package catalog

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

type productRepoPG struct{ pool *pgxpool.Pool }

func NewProductRepoPG(pool *pgxpool.Pool) ProductRepository {
	return &productRepoPG{pool: pool}
}

func (r *productRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	if c := db.ConnFromContext(ctx); c != nil {
		return c
	}
	return r.pool
}

const productCols = `id, name, size, uom, price_admin, cpt_code, active`

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Size, &p.UOM, &p.PriceAdmin, &p.CPTCode, &p.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *productRepoPG) Create(ctx context.Context, p *Product) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO products (id, name, size, uom, price_admin, cpt_code, active)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		p.ID, p.Name, p.Size, p.UOM, p.PriceAdmin, p.CPTCode, p.Active)
	return err
}

func (r *productRepoPG) GetByID(ctx context.Context, id int) (*Product, error) {
	return scanProduct(r.conn(ctx).QueryRow(ctx, `SELECT `+productCols+` FROM products WHERE id = $1`, id))
}

func (r *productRepoPG) GetActive(ctx context.Context, id int) (*Product, error) {
	return scanProduct(r.conn(ctx).QueryRow(ctx,
		`SELECT `+productCols+` FROM products WHERE id = $1 AND active = TRUE`, id))
}

func (r *productRepoPG) List(ctx context.Context, limit, offset int) ([]*Product, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx, `SELECT `+productCols+` FROM products ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, nil
}

func (r *productRepoPG) SetActive(ctx context.Context, id int, active bool) error {
	tag, err := r.conn(ctx).Exec(ctx, `UPDATE products SET active = $2 WHERE id = $1`, id, active)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
