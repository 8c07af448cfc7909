package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/pkg/guard"
)

var ErrUpdatePartnerCommandIsNotConstructed = errors.New(
	"UpdatePartnerCommand must be created via NewUpdatePartnerCommand constructor",
)

// UpdatePartnerCommand replaces a partner's profile and sets its status.
// Load and delivery counters are not editable.
type UpdatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	profile   partnerProfile
	status    partner.Status

	guard guard.ConstructorGuard
}

// NewUpdatePartnerCommand parses the profile and the "active"/"inactive" status.
func NewUpdatePartnerCommand(partnerID kernel.UUID, in PartnerProfileInput, status string) (UpdatePartnerCommand, error) {
	profile, errProfile := parsePartnerProfile(in)
	st, errStatus := partner.ParseStatus(status)
	if err := errors.Join(partnerID.Validate(), errProfile, errStatus); err != nil {
		return UpdatePartnerCommand{}, err
	}
	return UpdatePartnerCommand{
		partnerID: partnerID,
		profile:   profile,
		status:    st,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner to update.
func (c UpdatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}

// Status returns the requested status.
func (c UpdatePartnerCommand) Status() partner.Status {
	return c.status
}
