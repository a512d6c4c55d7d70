package rescale

import "github.com/arloliu/rescale/types"

// Re-export types from the types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing subpackages to
// depend on `types` without depending on the root `rescale` package, while
// still providing a convenient `rescale.MappingTable`, `rescale.Logger`, etc.
// for users.
type (
	IndexSet      = types.IndexSet
	MappingTable  = types.MappingTable
	KeyGroupRange = types.KeyGroupRange
)

// Re-export interfaces from the types package for convenience.
type (
	SubtaskMapper    = types.SubtaskMapper
	KeyGroupAssigner = types.KeyGroupAssigner
	Logger           = types.Logger
	MetricsCollector = types.MetricsCollector
)
