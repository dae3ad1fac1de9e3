// models/badge_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgeWellFormed(t *testing.T) {
	cases := []struct {
		name  string
		badge Badge
		ok    bool
	}{
		{"point threshold", Badge{MinPoints: 100}, true},
		{"mission count", Badge{MinMissions: 3}, true},
		{"category scoped", Badge{MinMissions: 3, Category: "Recycling"}, true},
		{"both thresholds", Badge{MinPoints: 100, MinMissions: 3}, true},
		{"no criteria", Badge{}, false},
		{"category without count", Badge{Category: "Recycling"}, false},
		{"negative points", Badge{MinPoints: -1}, false},
		{"negative missions", Badge{MinMissions: -1}, false},
		{"negative bonus", Badge{MinPoints: 10, BonusPoints: -5}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, tc.badge.WellFormed())
		})
	}
}
