package utils

import (
	"fmt"
	"strings"
	"time"
)

var locations map[string]*time.Location = map[string]*time.Location{}

func init() {
	for i := time.Duration(-12); i < 15; i++ {
		name := fmt.Sprintf("GMT%+d", i)
		locations[name] = time.FixedZone(name, int((i * time.Hour).Seconds()))
	}
}

// GetLocation returns a location of a GMT-X format timezone. Offsets with
// minutes (GMT+5:30) and IANA names (Asia/Jakarta) are accepted too.
func GetLocation(timezone string) *time.Location {
	name := strings.ToUpper(strings.TrimSpace(timezone))
	if tz, ok := locations[name]; ok {
		return tz
	}

	if strings.HasPrefix(name, "GMT") {
		var hour, minute int
		if n, _ := fmt.Sscanf(name, "GMT%d:%d", &hour, &minute); n == 2 && minute >= 0 && minute < 60 && hour >= -12 && hour <= 14 {
			offset := hour*3600 + minute*60
			if strings.HasPrefix(name, "GMT-") {
				offset = hour*3600 - minute*60
			}
			return time.FixedZone(name, offset)
		}
		return nil
	}

	if tz, err := time.LoadLocation(strings.TrimSpace(timezone)); err == nil && timezone != "" {
		return tz
	}
	return nil
}
