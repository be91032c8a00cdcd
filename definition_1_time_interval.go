package timeslot

type TimeInterval struct {
	TimeStart     int64
	TimeEnd       int64
	SecondsOffset int64
}

func (interval *TimeInterval) GetUTCTimeStart() int64 {
	return interval.TimeStart - interval.SecondsOffset
}

func (interval *TimeInterval) GetUTCTimeEnd() int64 {
	return interval.TimeEnd - interval.SecondsOffset
}

// ContainsTimestamp compares in UTC. Start is inclusive, end exclusive.
func (interval *TimeInterval) ContainsTimestamp(atTimestamp int64) bool {
	return interval.GetUTCTimeStart() <= atTimestamp &&
		atTimestamp < interval.GetUTCTimeEnd()
}

// Overlaps compares in UTC. Intervals sharing only a boundary do not overlap.
func (interval *TimeInterval) Overlaps(other *TimeInterval) bool {
	return interval.GetUTCTimeStart() < other.GetUTCTimeEnd() &&
		other.GetUTCTimeStart() < interval.GetUTCTimeEnd()
}

// BreakDown splits the interval into consecutive slots of secondsDuration.
// A trailing remainder shorter than secondsDuration is dropped.
func (interval *TimeInterval) BreakDown(secondsDuration int64) []TimeInterval {
	if secondsDuration <= 0 {
		return nil
	}

	var result []TimeInterval

	for timeStart := interval.TimeStart; timeStart+secondsDuration <= interval.TimeEnd; timeStart = timeStart + secondsDuration {
		result = append(
			result,
			TimeInterval{
				TimeStart:     timeStart,
				TimeEnd:       timeStart + secondsDuration,
				SecondsOffset: interval.SecondsOffset,
			},
		)
	}

	return result
}
