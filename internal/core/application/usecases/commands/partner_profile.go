package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
)

// PartnerProfileInput carries the editable partner fields as received from the API.
type PartnerProfileInput struct {
	Name       string
	Email      string
	Phone      string
	Areas      []string
	ShiftStart string
	ShiftEnd   string
	Rating     float64
}

// partnerProfile is the parsed form of PartnerProfileInput shared by the create and
// update commands.
type partnerProfile struct {
	name   string
	email  string
	phone  string
	areas  kernel.AreaSet
	shift  kernel.ShiftWindow
	rating float64
}

func parsePartnerProfile(in PartnerProfileInput) (partnerProfile, error) {
	areas, errAreas := kernel.ParseAreaSet(in.Areas)
	shift, errShift := kernel.ParseShiftWindow(in.ShiftStart, in.ShiftEnd)
	if err := errors.Join(errAreas, errShift); err != nil {
		return partnerProfile{}, err
	}
	return partnerProfile{
		name:   in.Name,
		email:  in.Email,
		phone:  in.Phone,
		areas:  areas,
		shift:  shift,
		rating: in.Rating,
	}, nil
}
