// Package assignment holds the append-only record of matching outcomes and the
// aggregation that turns the record log into dispatch metrics.
package assignment
