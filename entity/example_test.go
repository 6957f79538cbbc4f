package entity_test

import (
	"fmt"

	"github.com/katalvlaran/forge/entity"
)

// ExampleEntity_WithTrait shows that modifiers leave the original untouched.
func ExampleEntity_WithTrait() {
	orc := entity.New("Azog", "Orc", "Evil", entity.WithAccessoryA("Axe"))
	wounded := orc.WithTrait("hp", "3")

	fmt.Println(orc)
	fmt.Println(wounded)

	// Output:
	// Entity{name:"Azog" category:"Orc" family:"Evil" accessoryA:"Axe"}
	// Entity{name:"Azog" category:"Orc" family:"Evil" accessoryA:"Axe" traits:[hp=3]}
}
