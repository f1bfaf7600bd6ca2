// Package writers turns classified rows into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV columns, JSONL).
//   • The classifier stays domain-only; the pipeline stays orchestration-only.
//   • JSONL goes through pkg/api (v1) for a stable wire format.
//   • Each writer runs on its own goroutine fed by a channel, and keeps
//     draining after an error so producers never block.
package writers
