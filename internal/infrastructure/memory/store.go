// Package memory implementa el almacenamiento del catálogo en memoria.
//
// Modelo arena/índice: los productos viven en un único mapa por ID, con índices
// secundarios marca -> productos y (marca, categoría) -> producto. Borrar una marca
// elimina en un solo paso su entrada de índice y todos sus productos.
//
// Las transacciones de escritura se serializan con un único candado y trabajan sobre una
// copia del estado que sólo se publica si la función termina sin error (todo o nada).
// Las lecturas (ReadOnly) comparten el candado de lectura y ven una instantánea estable.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jhoicas/brand-catalog-api/internal/domain/category"
	"github.com/jhoicas/brand-catalog-api/internal/domain/entity"
	"github.com/jhoicas/brand-catalog-api/internal/domain/repository"
)

var errReadOnly = errors.New("memory: escritura en una transacción de sólo lectura")

type brandCategory struct {
	brandID  string
	category entity.Category
}

type state struct {
	brands          map[string]entity.Brand // por ID
	brandByName     map[string]string       // nombre -> ID
	products        map[string]entity.Product
	productsByBrand map[string]map[string]struct{}
	productByPair   map[brandCategory]string
}

func newState() *state {
	return &state{
		brands:          make(map[string]entity.Brand),
		brandByName:     make(map[string]string),
		products:        make(map[string]entity.Product),
		productsByBrand: make(map[string]map[string]struct{}),
		productByPair:   make(map[brandCategory]string),
	}
}

func (s *state) clone() *state {
	c := &state{
		brands:          make(map[string]entity.Brand, len(s.brands)),
		brandByName:     make(map[string]string, len(s.brandByName)),
		products:        make(map[string]entity.Product, len(s.products)),
		productsByBrand: make(map[string]map[string]struct{}, len(s.productsByBrand)),
		productByPair:   make(map[brandCategory]string, len(s.productByPair)),
	}
	for k, v := range s.brands {
		c.brands[k] = v
	}
	for k, v := range s.brandByName {
		c.brandByName[k] = v
	}
	for k, v := range s.products {
		c.products[k] = v
	}
	for k, ids := range s.productsByBrand {
		set := make(map[string]struct{}, len(ids))
		for id := range ids {
			set[id] = struct{}{}
		}
		c.productsByBrand[k] = set
	}
	for k, v := range s.productByPair {
		c.productByPair[k] = v
	}
	return c
}

// withBrandName devuelve una copia del producto con BrandName resuelto.
func (s *state) withBrandName(p entity.Product) *entity.Product {
	p.BrandName = s.brands[p.BrandID].Name
	return &p
}

// Store almacenamiento en memoria; implementa el TxRunner del catálogo.
type Store struct {
	mu sync.RWMutex
	st *state
}

// NewStore construye un almacenamiento vacío.
func NewStore() *Store {
	return &Store{st: newState()}
}

// Run ejecuta fn con repositorios sobre una copia del estado y la publica sólo si fn no
// devuelve error.
func (s *Store) Run(ctx context.Context, fn repository.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.st.clone()
	if err := fn(&BrandRepo{st: work}, &ProductRepo{st: work}); err != nil {
		return err
	}
	s.st = work
	return nil
}

// ReadOnly ejecuta fn sobre una instantánea consistente; cualquier escritura falla.
func (s *Store) ReadOnly(ctx context.Context, fn repository.TxFunc) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&BrandRepo{st: s.st, readOnly: true}, &ProductRepo{st: s.st, readOnly: true})
}

func sortProducts(list []*entity.Product) {
	order := make(map[entity.Category]int, category.Count())
	for i, c := range category.All() {
		order[c] = i
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].BrandName != list[j].BrandName {
			return list[i].BrandName < list[j].BrandName
		}
		return order[list[i].Category] < order[list[j].Category]
	})
}
