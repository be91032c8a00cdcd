package timeslot

import (
	"fmt"
	"sort"
	"strings"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// Roster is an immutable set of accepted timeslots behind an interval index.
// Changing a roster means building a new one; readers share a built roster
// freely.
type Roster struct {
	Name string

	slots []*Timeslot
	index *IntervalTree[*Timeslot]
}

type ParamsNewRoster struct {
	Name string `valid:"required"`

	Slots []*Timeslot
}

// NewRoster indexes the passed slots. Zero slots is a valid empty roster.
func NewRoster(params *ParamsNewRoster) (*Roster, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Timeslots",
				Caller:      "NewRoster",
				Issue:       errValidation,
			}
	}

	for ix, slot := range params.Slots {
		if slot == nil {
			return nil,
				goerrors.ErrValidation{
					Caller: "NewRoster",
					Issue: goerrors.ErrNilInput{
						InputName: fmt.Sprintf("Slots[%d]", ix),
					},
				}
		}
	}

	index, errBuild := NewIntervalTree(params.Slots)
	if errBuild != nil {
		return nil,
			errBuild
	}

	return &Roster{
			Name: params.Name,

			slots: params.Slots,
			index: index,
		},
		nil
}

// OnDutyAt returns the slots covering the passed UTC timestamp.
func (roster *Roster) OnDutyAt(atTimestamp int64) []*Timeslot {
	return roster.index.QueryIntervalsContaining(atTimestamp)
}

// ConflictsWith returns the booked slots overlapping the proposed interval.
// Slots only touching a boundary of the interval do not conflict.
func (roster *Roster) ConflictsWith(interval *TimeInterval) []*Timeslot {
	return roster.index.QueryIntervalsOverlapping(
		interval.GetUTCTimeStart(),
		interval.GetUTCTimeEnd(),
	)
}

// ConflictsFrom returns every booked slot still open at or after the passed
// UTC timestamp.
func (roster *Roster) ConflictsFrom(timeStart int64) []*Timeslot {
	return roster.index.QueryIntervalsOverlappingFrom(timeStart)
}

func (roster *Roster) GetSize() int {
	return roster.index.GetSize()
}

func (roster *Roster) GetHeight() int {
	return roster.index.GetHeight()
}

func (roster *Roster) GetSchedule() string {
	if len(roster.slots) == 0 {
		return "Schedule: (empty)"
	}

	ordered := make([]*Timeslot, len(roster.slots))
	copy(ordered, roster.slots)

	sort.Slice(
		ordered,
		func(i, j int) bool {
			if ordered[i].GetUTCTimeStart() != ordered[j].GetUTCTimeStart() {
				return ordered[i].GetUTCTimeStart() < ordered[j].GetUTCTimeStart()
			}

			return ordered[i].ID < ordered[j].ID
		},
	)

	var sb strings.Builder
	sb.WriteString("Schedule:\n")

	for _, slot := range ordered {
		sb.WriteString(
			fmt.Sprintf(
				"- [%d-%d] (UTC %d-%d) Offset %.1fh → %s (slot %d)\n",

				slot.TimeStart,
				slot.TimeEnd,
				slot.GetUTCTimeStart(),
				slot.GetUTCTimeEnd(),
				float64(slot.SecondsOffset)/3600,
				slot.Name,
				slot.ID,
			),
		)
	}

	return sb.String()
}
