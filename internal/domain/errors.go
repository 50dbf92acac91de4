package domain

import "errors"

var (
	ErrUnsupportedFormat   = errors.New("unsupported image format")
	ErrDecodeFailed        = errors.New("image could not be decoded")
	ErrThumbnailGeneration = errors.New("thumbnail generation failed")
	ErrInvalidDuration     = errors.New("expiry duration must be a positive number of seconds")
	ErrInvalidSignature    = errors.New("link signature is invalid")
	ErrLinkExpired         = errors.New("link has expired")
	ErrTierNotFound        = errors.New("tier not found")
	ErrInvalidTier         = errors.New("invalid tier definition")
	ErrTierAlreadyExists   = errors.New("tier already exists")
	ErrTierInUse           = errors.New("tier is assigned to existing users")
	ErrImageNotFound       = errors.New("image not found")
	ErrThumbnailNotFound   = errors.New("thumbnail not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrTokenInvalid        = errors.New("token invalid")
)
