package anniversary

// tier maps an inclusive FID ceiling to its celebratory message. Lower
// ceilings are checked first; the first match wins.
type tier struct {
	ceiling uint64
	message string
}

var tiers = []tier{
	{1000, "Wow! You are a true Farcaster pioneer, one of the first 1,000!"},
	{5000, "Amazing! You are among the first 5,000 on Farcaster!"},
	{10000, "You are an early adopter, within the first 10,000!"},
	{50000, "You joined during the early days, within the first 50,000!"},
	{100000, "Great! You are one of the first 100,000 Farcaster members!"},
	{500000, "You are part of the first 500,000 of the growing Farcaster community!"},
}

const defaultTierMessage = "Welcome to Farcaster! You are part of an awesome community!"

// TierMessage classifies an FID into one of the fixed congratulatory
// messages. The classification depends on the identifier alone, not on the
// computed duration, and is total over the non-negative integers.
func TierMessage(fid uint64) string {
	for _, t := range tiers {
		if fid <= t.ceiling {
			return t.message
		}
	}
	return defaultTierMessage
}
