package timeslot

// _NoAvailability is returned when no start time fits the searched window.
const _NoAvailability = int64(-1)

type ParamsFindAvailableTime struct {
	TimeStart        int64
	MaximumTimeStart int64
	SecondsDuration  int64
	SecondsOffset    int64

	IsLatest bool
}

// FindAvailableTime returns the earliest, or with IsLatest the latest, start
// time between TimeStart and MaximumTimeStart where a free stretch of
// SecondsDuration begins. Params and result are at SecondsOffset local time.
func (roster *Roster) FindAvailableTime(params *ParamsFindAvailableTime) int64 {
	if params.TimeStart > params.MaximumTimeStart || params.SecondsDuration <= 0 {
		return _NoAvailability
	}

	intervals, available := roster.GetAvailability(
		&TimeInterval{
			TimeStart:     params.TimeStart,
			TimeEnd:       params.MaximumTimeStart + params.SecondsDuration,
			SecondsOffset: params.SecondsOffset,
		},
	)
	if available {
		return params.TimeStart // Immediate availability
	}

	if len(intervals) == 0 {
		return _NoAvailability
	}

	if params.IsLatest {
		for i := len(intervals) - 1; i >= 0; i-- {
			interval := intervals[i]

			if interval.TimeEnd-interval.TimeStart >= params.SecondsDuration {
				startTime := min(
					interval.TimeEnd-params.SecondsDuration,
					params.MaximumTimeStart,
				)

				if startTime >= params.TimeStart && startTime <= params.MaximumTimeStart {
					return startTime
				}
			}
		}

		return _NoAvailability
	}

	for _, interval := range intervals {
		if interval.TimeEnd-interval.TimeStart >= params.SecondsDuration {
			if interval.TimeStart <= params.MaximumTimeStart {
				return interval.TimeStart
			}
		}
	}

	return _NoAvailability
}
