// Package pipeline streams fragments from a Source through normalize and
// classify workers, and emits the surviving rows in fragment-sized batches.
package pipeline
