// Package outcome provides a two-variant Result[T, E] value representing
// either a success payload or a failure payload, plus the combinators to
// inspect, transform, and chain such values without exceptions for ordinary
// control flow.
//
// Highlights:
// - Success/Failure/FromTuple: construct Result[T, E]
// - IsSuccess/IsFailure, GetRef, Unwrap, Expect: inspect and extract
// - Map/MapFailure (and *Ref forms): transform one side, pass the other through
// - Chain/ChainFailure: short-circuiting monadic sequencing
// - SuccessIter/FailureIter: zero-or-one iter.Seq views
// - MapOpt/MapSlice/MapSlice2/ForEachSlice2: fail-fast traversal helpers
// - ToEither: convert to the either.Either collaborator
//
// Extracting the wrong variant or passing misaligned slices to the paired
// helpers is caller misuse: it raises a *Violation panic, recoverable at a
// boundary with Catch. Modeled failures never panic.
package outcome
