package catalog

// Product is a sellable item. Identity is assigned by the database on insert.
type Product struct {
	ID    int64   `json:"id" db:"id"`
	Name  string  `json:"name" db:"name"`
	Value float64 `json:"value" db:"value"`
}
