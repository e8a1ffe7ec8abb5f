package model

// TimeReport is the canonical response record for one (instant, timezone)
// pair. Offsets are reported in whole minutes; the instant itself travels as
// a millisecond Unix timestamp. All string times are ISO 8601.
type TimeReport struct {
	Timezone      string `json:"timezone"`
	LocalTime     string `json:"local_time"`
	UTCTime       string `json:"utc_time"`
	UTCOffset     string `json:"utc_offset"`
	OffsetMinutes int    `json:"offset_minutes"`
	Abbreviation  string `json:"abbreviation"`
	DayOfWeek     string `json:"day_of_week"`
	DayOfYear     int    `json:"day_of_year"`
	ISOWeek       int    `json:"iso_week"`
	ISOYear       int    `json:"iso_year"`
	DaysInMonth   int    `json:"days_in_month"`
	DaysInYear    int    `json:"days_in_year"`
	LeapYear      bool   `json:"leap_year"`
	StartOfDay    string `json:"start_of_day"`
	EndOfDay      string `json:"end_of_day"`
	UnixMillis    int64  `json:"unix_ms"`
}
