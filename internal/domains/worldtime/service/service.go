package service

import (
	"context"
	"fmt"
	"time"
	"zeit/infras/otel"
	"zeit/internal/domains/worldtime/model"
	"zeit/shared/constant"
	"zeit/shared/failure"

	"github.com/rs/zerolog/log"
)

// WorldTime resolves timezone identifiers against the platform zone database
// and decomposes an instant into the calendar facts of one zone.
type WorldTime interface {
	Report(ctx context.Context, timezone string, at time.Time) (model.TimeReport, error)
	IsValid(timezone string) bool
	Zones(ctx context.Context) []string
}

type serviceImpl struct {
	otel otel.Otel
}

func New(otel otel.Otel) WorldTime {
	return &serviceImpl{
		otel: otel,
	}
}

const (
	isoDateTimeMillis = "2006-01-02T15:04:05.000"
)

// IsValid reports whether the platform zone database knows the identifier.
// "Local" is not an IANA name and is excluded.
func (s *serviceImpl) IsValid(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return false
	}

	_, err := time.LoadLocation(timezone)

	return err == nil
}

func (s *serviceImpl) Report(ctx context.Context, timezone string, at time.Time) (report model.TimeReport, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Report")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelTimezoneAttribute, timezone)

	if !s.IsValid(timezone) {
		return report, failure.BadRequestFromString(fmt.Sprintf("Invalid timezone '%s'. Please provide a valid IANA timezone identifier.", timezone))
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		log.Error().Err(err).Str("timezone", timezone).Msg("failed to load validated timezone")

		return report, failure.InternalError(fmt.Errorf("loading timezone %q: %w", timezone, err))
	}

	// One snapshot, millisecond resolution. Every field below derives from
	// instant so local time, UTC time, and offset describe the same moment.
	instant := at.Truncate(time.Millisecond)
	local := instant.In(loc)

	abbreviation, offsetSeconds := local.Zone()
	offsetMinutes := roundOffsetToMinutes(offsetSeconds)
	isoYear, isoWeek := local.ISOWeek()

	year, month, day := local.Date()
	startOfDay := time.Date(year, month, day, 0, 0, 0, 0, loc)
	endOfDay := time.Date(year, month, day, 23, 59, 59, int(999*time.Millisecond), loc)

	report = model.TimeReport{
		Timezone:      timezone,
		LocalTime:     local.Format(isoDateTimeMillis) + offsetSuffix(offsetMinutes),
		UTCTime:       instant.UTC().Format(isoDateTimeMillis) + "Z",
		UTCOffset:     "UTC" + offsetSuffix(offsetMinutes),
		OffsetMinutes: offsetMinutes,
		Abbreviation:  abbreviation,
		DayOfWeek:     local.Weekday().String(),
		DayOfYear:     local.YearDay(),
		ISOWeek:       isoWeek,
		ISOYear:       isoYear,
		DaysInMonth:   daysInMonth(year, month),
		DaysInYear:    daysInYear(year),
		LeapYear:      isLeapYear(year),
		StartOfDay:    formatWithOwnOffset(startOfDay),
		EndOfDay:      formatWithOwnOffset(endOfDay),
		UnixMillis:    instant.UnixMilli(),
	}

	return report, nil
}

// roundOffsetToMinutes rounds a zone offset in seconds to the nearest whole
// minute. Offsets with second precision exist only in pre-1937 history, but
// the rounding keeps the contract explicit.
func roundOffsetToMinutes(seconds int) int {
	if seconds >= 0 {
		return (seconds + 30) / 60
	}

	return -((-seconds + 30) / 60)
}

// offsetSuffix renders signed minutes as a ±HH:MM ISO 8601 offset suffix.
func offsetSuffix(offsetMinutes int) string {
	sign := "+"
	if offsetMinutes < 0 {
		sign = "-"
		offsetMinutes = -offsetMinutes
	}

	return fmt.Sprintf("%s%02d:%02d", sign, offsetMinutes/60, offsetMinutes%60)
}

// formatWithOwnOffset formats t with the offset in force at t itself. On DST
// transition days the day boundaries can sit on a different offset than the
// queried instant.
func formatWithOwnOffset(t time.Time) string {
	_, offsetSeconds := t.Zone()

	return t.Format(isoDateTimeMillis) + offsetSuffix(roundOffsetToMinutes(offsetSeconds))
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysInYear(year int) int {
	if isLeapYear(year) {
		return 366
	}

	return 365
}

// daysInMonth uses the day-zero normalization of time.Date: day 0 of the next
// month is the last day of this one.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
