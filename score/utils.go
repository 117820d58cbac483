package score

func clamp(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// StatusChanged checks if two percents fall in different status buckets.
// Currently,
// Healthy:  0 ~ 25
// Fair:    26 ~ 50
// Poor:    51 ~ 75
// Bad:     76 ~ 100
func StatusChanged(oldPercent, newPercent int) bool {
	oldStatus, _ := Bucket(oldPercent)
	newStatus, _ := Bucket(newPercent)
	return oldStatus != newStatus
}
