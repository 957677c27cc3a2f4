// Package blockstate builds placement documents, which map the property
// states of a block to the models rendered for them.
//
// Two shapes exist. A multi-variant document picks exactly one variant per
// state, either unconditionally or through a Dispatch table keyed by property
// values. A multi-part document layers any number of parts, each applied when
// its Condition holds, so several parts can render at once.
//
// Dispatch tables are checked for completeness when built: every combination
// of the declared axis domains must be selected.
package blockstate
