package booking

import "fabulous/models"

// GenerateTimeSlots enumerates candidate slot start times for a day:
// startHour*60, stepping by interval minutes, strictly before endHour*60.
// The slot at exactly closing time is excluded; a slot that starts before
// closing but runs past it is not (capacity past closing is not enforced
// here). GenerateTimeSlots(9, 19, 30) yields "09:00" through "18:30".
func GenerateTimeSlots(startHour, endHour, interval int) []string {
	slots := []string{}
	end := endHour * 60
	for current := startHour * 60; current < end; current += interval {
		slots = append(slots, MinutesToTime(current))
	}
	return slots
}

// FilterAvailableSlots keeps the candidate slots that can host an
// appointment of requiredDuration minutes against every blocked
// interval, preserving input order.
//
// The buffer is added to BOTH sides of each comparison, so the enforced
// gap between appointments is 2×buffer, not buffer. Existing bookings
// were accepted under this rule; changing it to a single-sided buffer
// needs a product decision first.
func FilterAvailableSlots(allSlots []string, blocked []models.BlockedSlot, requiredDuration, buffer int) []string {
	available := []string{}

	for _, slot := range allSlots {
		slotStart := TimeToMinutes(slot)
		free := true
		for _, b := range blocked {
			if Overlaps(slotStart, requiredDuration+buffer, TimeToMinutes(b.Start), b.Duration+buffer) {
				free = false
				break
			}
		}
		if free {
			available = append(available, slot)
		}
	}
	return available
}
