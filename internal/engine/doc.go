// Package engine drives the palette through the recipe stages and collects
// every produced document into the two key registries.
//
// Recipe application is single-threaded and deterministic: stages run in
// order, and inside a stage every subject runs every recipe in declaration
// order. The first fatal error aborts the run.
package engine
