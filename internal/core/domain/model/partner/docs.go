// Package partner provides the delivery Partner aggregate.
//
// A partner is eligible for an order when it is active, carries fewer than Capacity
// orders, covers the order's area and is on shift at the order's scheduled time.
// The aggregate answers each of these questions separately so the assignment engine
// can classify why an order could not be matched.
package partner
