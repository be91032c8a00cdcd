package timeslot

const (
	now      = 1756000000
	halfHour = 1800
	oneHour  = 3600
	oneDay   = 24 * oneHour
)
