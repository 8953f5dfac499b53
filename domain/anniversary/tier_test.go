package anniversary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierMessage_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		fid  uint64
		want string
	}{
		{"first tier lower bound", 1, tiers[0].message},
		{"first tier ceiling", 1000, tiers[0].message},
		{"just past first tier", 1001, tiers[1].message},
		{"second tier ceiling", 5000, tiers[1].message},
		{"third tier ceiling", 10000, tiers[2].message},
		{"fourth tier ceiling", 50000, tiers[3].message},
		{"fifth tier ceiling", 100000, tiers[4].message},
		{"sixth tier ceiling", 500000, tiers[5].message},
		{"just past sixth tier", 500001, defaultTierMessage},
		{"very large fid", 10_000_000, defaultTierMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TierMessage(tt.fid))
		})
	}
}

// Every non-negative identifier selects exactly one message.
func TestTierMessage_Total(t *testing.T) {
	for fid := uint64(0); fid <= 501000; fid += 250 {
		assert.NotEmpty(t, TierMessage(fid))
	}
}
