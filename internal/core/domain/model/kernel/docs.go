// Package kernel provides the value objects shared by the dispatch domain model.
//
// The package includes:
//   - UUID: identifier for orders, partners and assignment records
//   - Area and AreaSet: the closed set of delivery zones and a bitset of covered zones
//   - TimeOfDay: an "HH:MM" wall-clock time held as minutes since midnight
//   - ShiftWindow: an inclusive, same-day interval of TimeOfDay values
//
// All values are immutable and validated at construction, so the assignment engine can
// compare areas and times without re-parsing or re-checking them.
package kernel
