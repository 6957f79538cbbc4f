// File: impl_cars.go
// Role: single-category vehicle families (one factory per brand).

package family

import "github.com/katalvlaran/forge/entity"

// BrandFactory orders cars of one model, tagged with the brand.
type BrandFactory struct {
	brand string
	model string
}

// NewCarFactory binds brand and model. Fails with ErrEmptyFamily for an empty
// brand and ErrEmptyCategory for an empty model.
func NewCarFactory(brand, model string) (*BrandFactory, error) {
	if brand == "" {
		return nil, familyErrorf(MethodNewCarFactory, "", ErrEmptyFamily)
	}
	if model == "" {
		return nil, familyErrorf(MethodNewCarFactory, "brand "+brand, ErrEmptyCategory)
	}

	return &BrandFactory{brand: brand, model: model}, nil
}

// NewAudi returns the Audi factory (model A4).
func NewAudi() *BrandFactory { return &BrandFactory{brand: BrandAudi, model: ModelAudi} }

// NewBMW returns the BMW factory (model 3 Series).
func NewBMW() *BrandFactory { return &BrandFactory{brand: BrandBMW, model: ModelBMW} }

// Brand returns the bound brand tag.
func (f *BrandFactory) Brand() string { return f.brand }

// Model returns the model name given to every car.
func (f *BrandFactory) Model() string { return f.model }

// OrderCar returns a new car: name = model, category = "Car", family = brand.
func (f *BrandFactory) OrderCar() (entity.Entity, error) {
	return entity.New(f.model, CategoryCar, f.brand), nil
}
