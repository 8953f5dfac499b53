// Package profile holds the per-request account identity and resolved
// profile data. Nothing here outlives a single request.
package profile

import (
	"strconv"

	apperrors "anniversary-backend/pkg/errors"
)

// FID is a Farcaster account identifier, a positive integer.
type FID uint64

// ParseFID validates and parses an identifier supplied by the caller.
// Anything that is not a positive integer is a terminal input error.
func ParseFID(raw string) (FID, error) {
	if raw == "" {
		return 0, apperrors.NewInvalidIdentifierError("fid is required")
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return 0, apperrors.NewInvalidIdentifierError("fid must be a positive integer")
	}
	return FID(n), nil
}

// FIDFromInt validates an identifier already decoded as a number.
func FIDFromInt(n int64) (FID, error) {
	if n <= 0 {
		return 0, apperrors.NewInvalidIdentifierError("fid must be a positive integer")
	}
	return FID(n), nil
}

// String renders the identifier in its wire form.
func (f FID) String() string {
	return strconv.FormatUint(uint64(f), 10)
}
