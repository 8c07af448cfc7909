package partner

import (
	"errors"

	"dispatch/internal/pkg/errs"
)

const (
	MinRating = 0.0
	MaxRating = 5.0
)

// Metrics is the performance record of a partner.
type Metrics struct {
	rating    float64
	completed int
	cancelled int
}

// NewMetrics validates rating ∈ [0, 5] and non-negative counters.
func NewMetrics(rating float64, completed, cancelled int) (Metrics, error) {
	var errRating, errCompleted, errCancelled error
	if rating < MinRating || rating > MaxRating {
		errRating = errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	if completed < 0 {
		errCompleted = errs.NewValueIsOutOfRangeError("completed orders", completed, 0, "∞")
	}
	if cancelled < 0 {
		errCancelled = errs.NewValueIsOutOfRangeError("cancelled orders", cancelled, 0, "∞")
	}
	if err := errors.Join(errRating, errCompleted, errCancelled); err != nil {
		return Metrics{}, err
	}
	return Metrics{rating: rating, completed: completed, cancelled: cancelled}, nil
}

func (m Metrics) Rating() float64     { return m.rating }
func (m Metrics) CompletedOrders() int { return m.completed }
func (m Metrics) CancelledOrders() int { return m.cancelled }
