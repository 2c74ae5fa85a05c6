package catalog

var slots = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00",
}

// Slots returns the bookable time-of-day labels in order.
func Slots() []string {
	out := make([]string, len(slots))
	copy(out, slots)
	return out
}

func IsSlot(label string) bool {
	for _, s := range slots {
		if s == label {
			return true
		}
	}
	return false
}
