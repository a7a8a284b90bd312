package repository

// TxFunc recibe repositorios atados a una única transacción (o instantánea de lectura).
type TxFunc func(brands BrandRepository, products ProductRepository) error
