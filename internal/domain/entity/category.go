package entity

// Category identificador canónico de una categoría del catálogo (TOP, OUTER, ...).
// El conjunto de valores válidos es fijo; ver el paquete domain/category.
type Category string

const (
	CategoryTop       Category = "TOP"
	CategoryOuter     Category = "OUTER"
	CategoryBottom    Category = "BOTTOM"
	CategorySneakers  Category = "SNEAKERS"
	CategoryBag       Category = "BAG"
	CategoryHat       Category = "HAT"
	CategorySocks     Category = "SOCKS"
	CategoryAccessory Category = "ACCESSORY"
)

func (c Category) String() string {
	return string(c)
}
