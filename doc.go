// Package forge is a small toolkit of object-construction strategies that all
// produce one immutable entity model.
//
// What is in the box?
//
//	entity/     the immutable Entity value: name, category, family tag,
//	            two accessories and a persistent trait set
//	family/     factory families (Good, Evil, custom) whose every product
//	            carries the family tag, plus car factories behind a selector
//	builder/    an incremental, chainable builder that is finalized once
//	prototype/  a thread-safe registry that hands out independent clones
//	singleton/  construct-once guards, a lazy variant and the process-wide
//	            connection
//	cmd/forge   a CLI over all four strategies
//
// The strategies never call each other; they share only entity.Entity.
//
// Quick example:
//
//	good, _ := family.ForFamily(family.FamilyGood)
//	aragorn, _ := good.CreatePrimary("Aragorn")     // Warrior, Good
//
//	arthur, err := builder.New("Arthur", "Warrior").
//		SetFamily("Good").
//		SetAccessoryA("Sword").
//		Build()
//
//	reg := prototype.NewCharacterRegistry()
//	orc, _ := reg.Create(prototype.TagOrc)          // independent clone
//
//	conn, _ := singleton.Connect("conn1")
//	_, err = singleton.Connect("conn2")             // ErrAlreadyInitialized
//
// Errors are package sentinels wrapped with method context; branch on them
// with errors.Is.
package forge
