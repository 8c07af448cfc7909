// Package order provides the Order aggregate for the dispatch system.
//
// The package includes:
//   - Order: the aggregate root holding customer, area, items and lifecycle
//   - Item and Customer: value objects built through validating constructors
//   - Status: the pending → assigned → picked → delivered state machine
//
// Key business rules:
//   - New orders start Pending and have no partner
//   - Only Pending orders can be assigned, so an order is never assigned twice
//   - Order totals are exact decimal sums of quantity × unit price
package order
