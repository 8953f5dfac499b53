package profile

import "time"

// UserProfile is the merged result of the two upstream lookups. CreatedAt is
// mandatory for the anniversary calculation; the name fields are optional
// decoration and stay empty when the social-graph lookup yields nothing.
type UserProfile struct {
	FID                FID
	CreatedAt          time.Time
	Username           string // registered fname from the earliest transfer
	ProfileName        string
	ProfileDisplayName string
	ProfileImage       string
}

// DisplayName prefers the social-graph display name, then the profile name,
// then the registry fname.
func (p UserProfile) DisplayName() string {
	if p.ProfileDisplayName != "" {
		return p.ProfileDisplayName
	}
	if p.ProfileName != "" {
		return p.ProfileName
	}
	return p.Username
}
