package entity

// Category representa una categoría de productos. Referenciada (no poseída) por Product.
type Category struct {
	ID          int64
	Name        string
	Description string
}
