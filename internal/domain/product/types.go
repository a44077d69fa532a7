package product

import (
	"authentithief/internal/pkg/errs"
)

var (
	ErrEmptyName    = errs.Mark(errs.New("product name cannot be empty"), errs.ErrValidation)
	ErrNameTooLong  = errs.Mark(errs.New("product name exceeds maximum length"), errs.ErrValidation)
	ErrEmptyBrand   = errs.Mark(errs.New("brand cannot be empty when brand keying is enabled"), errs.ErrValidation)
	ErrBrandTooLong = errs.Mark(errs.New("brand exceeds maximum length"), errs.ErrValidation)
	ErrDescTooLong  = errs.Mark(errs.New("description exceeds maximum length"), errs.ErrValidation)
	ErrExpiration   = errs.Mark(errs.New("expiration timestamp must be positive"), errs.ErrValidation)
	ErrEmptyOwner   = errs.Mark(errs.New("receipt owner cannot be empty"), errs.ErrValidation)
	ErrRegisteredAt = errs.Mark(errs.New("receipt registration timestamp must be positive"), errs.ErrValidation)
	ErrKeyScheme    = errs.New("unknown identity key scheme")
)

const (
	MaxNameLength        = 128
	MaxBrandLength       = 128
	MaxDescriptionLength = 1000
)
