package query

import (
	"time"

	"github.com/AWLL-inc/work-management-sub003/internal/types"
)

// PeriodWindow translates a dashboard period shorthand into a concrete
// inclusive [start, end] date window. Weeks start on Monday. The custom
// period requires explicit startDate/endDate in YYYY-MM-DD form.
func PeriodWindow(period, startDate, endDate string, now time.Time) (time.Time, time.Time, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch period {
	case types.PeriodToday:
		return today, today, nil

	case types.PeriodWeek:
		start := startOfWeek(today)
		return start, start.AddDate(0, 0, 6), nil

	case types.PeriodLastWeek:
		start := startOfWeek(today).AddDate(0, 0, -7)
		return start, start.AddDate(0, 0, 6), nil

	case types.PeriodMonth:
		start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, -1), nil

	case types.PeriodLastMonth:
		firstOfMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		return firstOfMonth.AddDate(0, -1, 0), firstOfMonth.AddDate(0, 0, -1), nil

	case types.PeriodCustom:
		start, ok := ParseDate(startDate)
		if !ok {
			return time.Time{}, time.Time{}, NewValidationError("startDate", "startDate is required for period=custom")
		}
		end, ok := ParseDate(endDate)
		if !ok {
			return time.Time{}, time.Time{}, NewValidationError("endDate", "endDate is required for period=custom")
		}
		if start.After(end) {
			return time.Time{}, time.Time{}, NewValidationError("startDate", "startDate must not be after endDate")
		}
		return start, end, nil

	default:
		return time.Time{}, time.Time{}, NewValidationError("period", "period must be one of today, week, month, lastWeek, lastMonth, custom")
	}
}

func startOfWeek(day time.Time) time.Time {
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week that started the previous Monday
	}
	return day.AddDate(0, 0, 1-weekday)
}
