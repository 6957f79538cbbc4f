// Package entity defines the immutable value type produced by every creation
// strategy in forge (family factories, the incremental builder, the prototype
// registry) together with the naming schemes used when many entities are
// stamped out of a single exemplar.
//
// An Entity describes a flat, value-like object such as a game character or a
// vehicle:
//
//	name        – display name ("Arthur", "A4")
//	category    – what it is ("Warrior", "Mage", "Car")
//	family      – identity tag of the producer ("Good", "Evil", "Audi")
//	accessoryA  – optional first accessory (a character's weapon)
//	accessoryB  – optional second accessory (a character's armor)
//	traits      – optional ordered key/value attributes ("hp" = "50")
//
// Value semantics:
//
//   - All fields are unexported; read them through accessors.
//   - With* methods return a modified copy and never touch the receiver.
//   - Traits live in a persistent sorted map (github.com/benbjohnson/immutable),
//     so copies share structure but can never observe each other's writes.
//   - Equal compares field-wise, traits included; == must not be used.
//
// Naming schemes (NameFn):
//
//	DecimalNameFn      "0","1","2",...
//	ExcelColumnNameFn  "A",...,"Z","AA",...
//	HexNameFn          "0",...,"a",...,"ff"
//	AlphanumericNameFn "0",...,"z","10",...
//
// Entities are safe to share across goroutines without synchronization.
package entity
