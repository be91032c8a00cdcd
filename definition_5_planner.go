package timeslot

import (
	"context"
	"errors"
	"fmt"
	"sync"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
	"github.com/google/btree"
)

// Planner books and releases timeslots, rejecting overlaps. Accepted slots
// live in an ordered set; after every accepted change the immutable roster
// index is rebuilt and swapped. Snapshot hands the current roster to readers,
// which keep querying it lock free while the planner moves on.
type Planner struct {
	Name string

	mu       sync.Mutex
	accepted *btree.BTreeG[*Timeslot]
	roster   *Roster
}

func lessTimeslot(a, b *Timeslot) bool {
	if a.GetUTCTimeStart() != b.GetUTCTimeStart() {
		return a.GetUTCTimeStart() < b.GetUTCTimeStart()
	}

	return a.ID < b.ID
}

type ParamsNewPlanner struct {
	Name string `valid:"required"`

	Slots []*Timeslot
}

// NewPlanner seeds the planner with already booked slots. Seed slots are
// trusted history and may overlap each other; duplicate IDs are rejected.
func NewPlanner(params *ParamsNewPlanner) (*Planner, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Timeslots",
				Caller:      "NewPlanner",
				Issue:       errValidation,
			}
	}

	planner := Planner{
		Name:     params.Name,
		accepted: btree.NewG(2, lessTimeslot),
	}

	for ix, slot := range params.Slots {
		if slot == nil {
			return nil,
				goerrors.ErrValidation{
					Caller: "NewPlanner",
					Issue: goerrors.ErrNilInput{
						InputName: fmt.Sprintf("Slots[%d]", ix),
					},
				}
		}

		if _, exists := planner.findByID(slot.ID); exists {
			return nil,
				fmt.Errorf(
					"slot ID %d already exists",
					slot.ID,
				)
		}

		planner.accepted.ReplaceOrInsert(slot)
	}

	if errRebuild := planner.rebuildRoster(); errRebuild != nil {
		return nil,
			errRebuild
	}

	return &planner,
		nil
}

type ParamsAddTimeslot struct {
	TimeInterval

	Name string
	ID   int64
}

// AddTimeslot books a new slot. On overlap nothing is booked and the
// conflicting slots come back with the error.
func (planner *Planner) AddTimeslot(_ context.Context, params *ParamsAddTimeslot) ([]*Timeslot, error) {
	if params.TimeStart >= params.TimeEnd {
		return nil,
			goerrors.ErrInvalidInput{
				Caller:     "AddTimeslot",
				InputName:  "TimeEnd",
				InputValue: params.TimeEnd,
				Issue: errors.New(
					"time start greater or equal to time end",
				),
			}
	}

	if params.ID <= 0 {
		return nil,
			goerrors.ErrInvalidInput{
				Caller:     "AddTimeslot",
				InputName:  "ID",
				InputValue: params.ID,
				Issue: goerrors.ErrNegativeInput{
					InputName: "ID",
				},
			}
	}

	if len(params.Name) == 0 {
		return nil,
			goerrors.ErrValidation{
				Caller: "AddTimeslot",
				Issue: goerrors.ErrNilInput{
					InputName: "Name",
				},
			}
	}

	planner.mu.Lock()
	defer planner.mu.Unlock()

	if _, exists := planner.findByID(params.ID); exists {
		return nil,
			fmt.Errorf(
				"slot ID %d already exists",
				params.ID,
			)
	}

	conflicts := planner.roster.ConflictsWith(&params.TimeInterval)
	if len(conflicts) > 0 {
		return conflicts,
			errors.New("requested time slot is busy")
	}

	planner.accepted.ReplaceOrInsert(
		&Timeslot{
			TimeInterval: TimeInterval{
				TimeStart:     params.TimeStart,
				TimeEnd:       params.TimeEnd,
				SecondsOffset: params.SecondsOffset,
			},

			Name: params.Name,
			ID:   params.ID,
		},
	)

	return nil,
		planner.rebuildRoster()
}

// RemoveTimeslot releases a booked slot and reindexes.
func (planner *Planner) RemoveTimeslot(_ context.Context, slotID int64) error {
	planner.mu.Lock()
	defer planner.mu.Unlock()

	slot, exists := planner.findByID(slotID)
	if !exists {
		return fmt.Errorf(
			"slot %d not found in schedule",
			slotID,
		)
	}

	planner.accepted.Delete(slot)

	return planner.rebuildRoster()
}

// Snapshot returns the current immutable roster. Queries against a snapshot
// stay consistent while the planner keeps booking.
func (planner *Planner) Snapshot() *Roster {
	planner.mu.Lock()
	defer planner.mu.Unlock()

	return planner.roster
}

func (planner *Planner) OnDutyAt(atTimestamp int64) []*Timeslot {
	return planner.Snapshot().OnDutyAt(atTimestamp)
}

func (planner *Planner) ConflictsWith(interval *TimeInterval) []*Timeslot {
	return planner.Snapshot().ConflictsWith(interval)
}

func (planner *Planner) GetAvailability(searchInterval *TimeInterval) ([]TimeInterval, bool) {
	return planner.Snapshot().GetAvailability(searchInterval)
}

func (planner *Planner) GetSchedule() string {
	return planner.Snapshot().GetSchedule()
}

// rebuildRoster runs under the planner lock, or on the construction path
// before the planner escapes.
func (planner *Planner) rebuildRoster() error {
	slots := make([]*Timeslot, 0, planner.accepted.Len())

	planner.accepted.Ascend(
		func(slot *Timeslot) bool {
			slots = append(slots, slot)

			return true
		},
	)

	roster, errBuild := NewRoster(
		&ParamsNewRoster{
			Name:  planner.Name,
			Slots: slots,
		},
	)
	if errBuild != nil {
		return errBuild
	}

	planner.roster = roster

	return nil
}

func (planner *Planner) findByID(slotID int64) (*Timeslot, bool) {
	var found *Timeslot

	planner.accepted.Ascend(
		func(slot *Timeslot) bool {
			if slot.ID == slotID {
				found = slot

				return false
			}

			return true
		},
	)

	return found,
		found != nil
}
