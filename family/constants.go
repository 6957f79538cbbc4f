package family

// Method tokens used as error context prefixes.
const (
	MethodCreatePrimary   = "CreatePrimary"
	MethodCreateSecondary = "CreateSecondary"
	MethodOrderCar        = "OrderCar"
	MethodNewFamily       = "NewCharacterFamily"
	MethodNewCarFactory   = "NewCarFactory"
	MethodRegister        = "Register"
	MethodCreate          = "Create"
	MethodForFamily       = "ForFamily"
)

// Character family tags and categories.
const (
	FamilyGood = "Good"
	FamilyEvil = "Evil"

	CategoryWarrior = "Warrior"
	CategoryMage    = "Mage"
)

// Car brands, default models and the shared vehicle category.
const (
	BrandAudi = "Audi"
	BrandBMW  = "BMW"

	ModelAudi = "A4"
	ModelBMW  = "3 Series"

	CategoryCar = "Car"
)
