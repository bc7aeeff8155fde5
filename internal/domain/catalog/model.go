package catalog

// Product is a catalog entry for an orderable wound-care supply. Only
// active products can be ordered; deactivation hides a product from new
// orders without touching historical order snapshots.
type Product struct {
	ID         int      `db:"id" json:"id"`
	Name       string   `db:"name" json:"name"`
	Size       *string  `db:"size" json:"size,omitempty"`
	UOM        *string  `db:"uom" json:"uom,omitempty"`
	PriceAdmin *float64 `db:"price_admin" json:"price_admin,omitempty"`
	CPTCode    *string  `db:"cpt_code" json:"cpt_code,omitempty"`
	Active     bool     `db:"active" json:"active"`
}

// DisplayName returns the product name with its size appended, the way
// order confirmations render it.
func (p *Product) DisplayName() string {
	if p.Size == nil || *p.Size == "" {
		return p.Name
	}
	return p.Name + " " + *p.Size
}
