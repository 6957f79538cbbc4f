// File: selector.go
// Role: tag-based dispatch across concrete product constructors.
//
// Concurrency:
//   - products is guarded by mu; Create holds the read lock only while
//     resolving the product function, never while invoking it.

package family

import (
	"sort"
	"sync"

	"github.com/katalvlaran/forge/entity"
)

// ProductFunc creates one product for a Selector entry.
type ProductFunc func() (entity.Entity, error)

// Selector maps tags to product constructors and creates by tag.
// The zero value is an empty, usable Selector.
type Selector struct {
	mu       sync.RWMutex
	products map[string]ProductFunc
}

// NewSelector returns an empty Selector.
func NewSelector() *Selector {
	return &Selector{products: make(map[string]ProductFunc)}
}

// NewCarSelector returns a Selector wired with the Audi and BMW factories.
func NewCarSelector() *Selector {
	s := NewSelector()
	for _, f := range []*BrandFactory{NewAudi(), NewBMW()} {
		s.products[f.Brand()] = f.OrderCar
	}

	return s
}

// RegisterCarFactory registers f.OrderCar under f.Brand().
// A nil f, including a nil *BrandFactory, fails with ErrNilProduct.
func (s *Selector) RegisterCarFactory(f CarFactory) error {
	if f == nil {
		return familyErrorf(MethodRegister, "", ErrNilProduct)
	}
	if bf, ok := f.(*BrandFactory); ok && bf == nil {
		return familyErrorf(MethodRegister, "", ErrNilProduct)
	}

	return s.Register(f.Brand(), f.OrderCar)
}

// Register adds or replaces the product constructor for tag.
func (s *Selector) Register(tag string, fn ProductFunc) error {
	if tag == "" {
		return familyErrorf(MethodRegister, "", ErrEmptyTag)
	}
	if fn == nil {
		return familyErrorf(MethodRegister, "tag "+tag, ErrNilProduct)
	}
	s.mu.Lock()
	if s.products == nil {
		s.products = make(map[string]ProductFunc)
	}
	s.products[tag] = fn
	s.mu.Unlock()

	return nil
}

// Create builds the product registered under tag.
// Fails with ErrUnknownVariant when tag is not registered; product errors are
// returned wrapped with the tag.
func (s *Selector) Create(tag string) (entity.Entity, error) {
	s.mu.RLock()
	fn, ok := s.products[tag]
	s.mu.RUnlock()
	if !ok {
		return entity.Entity{}, familyErrorf(MethodCreate, "tag "+tag, ErrUnknownVariant)
	}
	e, err := fn()
	if err != nil {
		return entity.Entity{}, familyErrorf(MethodCreate, "tag "+tag, err)
	}

	return e, nil
}

// Tags returns the registered tags sorted ascending.
func (s *Selector) Tags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tags := make([]string, 0, len(s.products))
	for tag := range s.products {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	return tags
}

// ForFamily resolves a character family tag ("Good", "Evil") to a fresh Factory.
func ForFamily(tag string) (Factory, error) {
	switch tag {
	case FamilyGood:
		return NewGood(), nil
	case FamilyEvil:
		return NewEvil(), nil
	default:
		return nil, familyErrorf(MethodForFamily, "tag "+tag, ErrUnknownVariant)
	}
}

// Families lists the tags ForFamily accepts.
func Families() []string {
	return []string{FamilyEvil, FamilyGood}
}
