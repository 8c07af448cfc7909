package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrCreatePartnerCommandIsNotConstructed = errors.New(
	"CreatePartnerCommand must be created via NewCreatePartnerCommand constructor",
)

// CreatePartnerCommand registers a new delivery partner.
// Area names and shift times are parsed when the command is built.
//
// Example:
//
//	cmd, err := NewCreatePartnerCommand(kernel.NewUUID(), PartnerProfileInput{
//	    Name: "Sam Ortiz", Email: "sam@example.com", Phone: "+1 555 0101",
//	    Areas: []string{"Downtown", "Midtown"}, ShiftStart: "09:00", ShiftEnd: "17:00",
//	    Rating: 4.6,
//	})
type CreatePartnerCommand struct { //nolint:recvcheck //using for validation
	partnerID kernel.UUID
	profile   partnerProfile

	guard guard.ConstructorGuard
}

// NewCreatePartnerCommand validates the identifier, areas and shift.
// Contact details and rating are validated by the aggregate.
func NewCreatePartnerCommand(partnerID kernel.UUID, in PartnerProfileInput) (CreatePartnerCommand, error) {
	profile, errProfile := parsePartnerProfile(in)
	if err := errors.Join(partnerID.Validate(), errProfile); err != nil {
		return CreatePartnerCommand{}, err
	}
	return CreatePartnerCommand{
		partnerID: partnerID,
		profile:   profile,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePartnerCommand) Validate() error {
	return c.guard.Validate(ErrCreatePartnerCommandIsNotConstructed)
}

// PartnerID returns the identifier of the partner to create.
func (c CreatePartnerCommand) PartnerID() kernel.UUID {
	return c.partnerID
}
