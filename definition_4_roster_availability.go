package timeslot

// GetAvailability returns:
//   - (nil, true)   = Fully available (no booked slot overlaps the search interval)
//   - (slots, false) = Partially available (returns free time slots inside the search interval)
//   - (nil, false)  = Completely unavailable (requested interval is fully booked)
//
// Free slots are reported at the search interval's offset.
func (roster *Roster) GetAvailability(searchInterval *TimeInterval) ([]TimeInterval, bool) {
	searchStart := searchInterval.GetUTCTimeStart()
	searchEnd := searchInterval.GetUTCTimeEnd()

	busySlots := roster.index.QueryIntervalsOverlapping(searchStart, searchEnd)
	if len(busySlots) == 0 {
		return nil,
			true
	}

	var availableIntervals []TimeInterval

	currentStart := searchStart

	for _, busy := range busySlots {
		busyStart := busy.GetUTCTimeStart()

		if busyStart > currentStart {
			availableIntervals = append(
				availableIntervals,
				TimeInterval{
					TimeStart:     currentStart + searchInterval.SecondsOffset,
					TimeEnd:       busyStart + searchInterval.SecondsOffset,
					SecondsOffset: searchInterval.SecondsOffset,
				},
			)
		}

		currentStart = max(currentStart, busy.GetUTCTimeEnd())
	}

	if currentStart < searchEnd {
		availableIntervals = append(
			availableIntervals,
			TimeInterval{
				TimeStart:     currentStart + searchInterval.SecondsOffset,
				TimeEnd:       searchEnd + searchInterval.SecondsOffset,
				SecondsOffset: searchInterval.SecondsOffset,
			},
		)
	}

	return availableIntervals,
		false
}
