// Package flow provides a minimal fluent Chain[T, E] for synchronous
// composition of outcome.Result values.
//
// Highlights:
// - Start/FromValue: create a Chain
// - Then/Map/While: compose same-type steps as methods
// - Then/Map/ThenTry (free functions): switch the payload type
// - Ensure: trigger side effects without changing the result
// - Finally: reduce to a concrete value via success/failure handlers
//
// Every step short-circuits once the carried result is a failure.
package flow
