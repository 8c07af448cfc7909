// Package services provides domain services that work across aggregates.
//
// The package includes:
//   - AssignmentEngine: matches pending orders to delivery partners in one batch pass
//     and returns an AssignmentPlan instead of mutating its inputs
package services
