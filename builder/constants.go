// Package builder defines shared constants used to give builder errors a
// consistent method context and field naming.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the method name for context.
//-----------------------------------------------------------------------------

const (
	// MethodNew is the canonical name for the New constructor.
	MethodNew = "New"
	// MethodSetFamily is the canonical name for SetFamily.
	MethodSetFamily = "SetFamily"
	// MethodSetAccessoryA is the canonical name for SetAccessoryA.
	MethodSetAccessoryA = "SetAccessoryA"
	// MethodSetAccessoryB is the canonical name for SetAccessoryB.
	MethodSetAccessoryB = "SetAccessoryB"
	// MethodSetTrait is the canonical name for SetTrait.
	MethodSetTrait = "SetTrait"
	// MethodApply is the canonical name for Apply.
	MethodApply = "Apply"
	// MethodBuild is the canonical name for Build.
	MethodBuild = "Build"
)

//-----------------------------------------------------------------------------
// Field names reported by ErrMissingField
//-----------------------------------------------------------------------------

const (
	FieldName     = "name"
	FieldCategory = "category"
	FieldTraitKey = "trait key"
)
