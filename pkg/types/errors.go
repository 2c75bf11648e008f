package types

import "errors"

var (
	ErrVolunteerNotFound = errors.New("volunteer not found")
	ErrAreaNotFound      = errors.New("area not found")
	ErrDonationNotFound  = errors.New("donation not found")
)
