// Package task models units of work and orders them so every dependency
// lands before its dependents, breaking ties by declared priority, then
// deadline, then estimated effort.
//
// The pipeline behind Prioritize runs three stages in a fixed order:
// validation (unique IDs, parseable deadlines, priorities within bounds,
// referentially complete dependencies, non-negative effort), cycle
// detection over the dependency graph, and greedy best-ready-next ranking.
// Any stage failure aborts the call with a classified *Error; nothing is
// partially computed. Calls are stateless and independent, so the package
// is safe for concurrent use with independent inputs.
package task
