// Package report computes monthly worked-hours reports from raw attendance
// events. It is the only piece of the service with real logic: pairing
// check-in/check-out events per calendar day and aggregating hours and pay.
package report

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/shiftwise/timeclock/internal/models"
)

// ErrBadPeriod is returned for a year/month outside the valid Gregorian
// range. The HTTP boundary maps it to 400.
var ErrBadPeriod = errors.New("invalid year/month")

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// Store is the slice of persistence the builder needs.
type Store interface {
	GetEmployee(ctx context.Context, id int64) (models.Employee, error)
	ListEventsInRange(ctx context.Context, employeeID int64, from, to time.Time) ([]models.AttendanceEvent, error)
}

// Builder produces monthly reports for one employee at a time.
type Builder struct {
	store Store
}

func NewBuilder(store Store) *Builder {
	return &Builder{store: store}
}

// MonthRange returns the half-open timestamp interval covering the calendar
// month, [first day 00:00:00, first day of next month 00:00:00). AddDate
// handles month lengths and leap years.
func MonthRange(year, month int, loc *time.Location) (time.Time, time.Time, error) {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return time.Time{}, time.Time{}, ErrBadPeriod
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 1, 0), nil
}

// daySlots holds the surviving check-in/check-out times for one date.
// Events are applied in timestamp order and a later event of the same action
// overwrites an earlier one, so each slot ends up holding the last
// occurrence. Days with only one slot filled contribute zero hours.
type daySlots struct {
	checkIn  *time.Time
	checkOut *time.Time
}

// Build computes the report for (employeeID, year, month).
//
// Errors: store.ErrNotFound for an unknown employee, ErrBadPeriod for an
// out-of-range period, otherwise storage errors verbatim.
func (b *Builder) Build(ctx context.Context, employeeID int64, year, month int) (models.Report, error) {
	from, to, err := MonthRange(year, month, time.Local)
	if err != nil {
		return models.Report{}, err
	}

	emp, err := b.store.GetEmployee(ctx, employeeID)
	if err != nil {
		return models.Report{}, err
	}

	events, err := b.store.ListEventsInRange(ctx, employeeID, from, to)
	if err != nil {
		return models.Report{}, err
	}

	// Group by calendar date; last event per action wins.
	days := map[string]*daySlots{}
	for _, ev := range events {
		ts := ev.Timestamp.In(time.Local)
		date := ts.Format(dateLayout)
		slots := days[date]
		if slots == nil {
			slots = &daySlots{}
			days[date] = slots
		}
		switch ev.Action {
		case models.ActionCheckIn:
			t := ts
			slots.checkIn = &t
		case models.ActionCheckOut:
			t := ts
			slots.checkOut = &t
		}
	}

	dates := make([]string, 0, len(days))
	for d := range days {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	var totalHours float64
	out := make([]models.ReportDay, 0, len(dates))
	for _, date := range dates {
		slots := days[date]
		day := models.ReportDay{
			Date:     date,
			CheckIn:  clockString(slots.checkIn),
			CheckOut: clockString(slots.checkOut),
		}
		if slots.checkIn != nil && slots.checkOut != nil {
			// A check-out earlier than its check-in would yield a negative
			// duration; such days count as zero worked hours.
			hours := slots.checkOut.Sub(*slots.checkIn).Hours()
			if hours < 0 {
				hours = 0
			}
			day.Hours = round2(hours)
			totalHours += hours
		}
		out = append(out, day)
	}

	totalHours = round2(totalHours)
	return models.Report{
		EmployeeID:   emp.ID,
		EmployeeName: emp.Name,
		HourlyRate:   emp.HourlyRate,
		Month:        from.Format("2006-01"),
		TotalHours:   totalHours,
		TotalPay:     round2(totalHours * emp.HourlyRate),
		Days:         out,
	}, nil
}

func clockString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(timeLayout)
	return &s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
