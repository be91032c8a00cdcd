package timeslot

import (
	"errors"
	"fmt"

	goerrors "github.com/TudorHulban/go-errors"
	"github.com/asaskevich/govalidator"
)

// Timeslot is one booked assignment, a person or crew holding
// [TimeStart, TimeEnd) at the recorded offset.
type Timeslot struct {
	TimeInterval

	Name string
	ID   int64
}

type ParamsNewTimeslot struct {
	Name string `valid:"required"`

	TimeStart     int64
	TimeEnd       int64
	SecondsOffset int64

	ID int64 `valid:"required"`
}

func NewTimeslot(params *ParamsNewTimeslot) (*Timeslot, error) {
	if _, errValidation := govalidator.ValidateStruct(params); errValidation != nil {
		return nil,
			goerrors.ErrServiceValidation{
				ServiceName: "Timeslots",
				Caller:      "NewTimeslot",
				Issue:       errValidation,
			}
	}

	if params.TimeStart >= params.TimeEnd {
		return nil,
			goerrors.ErrInvalidInput{
				Caller:     "NewTimeslot",
				InputName:  "TimeEnd",
				InputValue: params.TimeEnd,
				Issue: errors.New(
					"time start greater or equal to time end",
				),
			}
	}

	return &Timeslot{
			TimeInterval: TimeInterval{
				TimeStart:     params.TimeStart,
				TimeEnd:       params.TimeEnd,
				SecondsOffset: params.SecondsOffset,
			},

			Name: params.Name,
			ID:   params.ID,
		},
		nil
}

func (slot *Timeslot) String() string {
	return fmt.Sprintf(
		"%s [%d-%d] (UTC %d-%d) → slot %d%s",

		slot.Name,
		slot.TimeStart,
		slot.TimeEnd,
		slot.GetUTCTimeStart(),
		slot.GetUTCTimeEnd(),
		slot.ID,
		ternary(
			slot.SecondsOffset == 0,

			"",
			fmt.Sprintf(" offset %.1fh", float64(slot.SecondsOffset)/3600),
		),
	)
}
