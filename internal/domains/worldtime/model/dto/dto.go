package dto

// TimezonesResponse lists every identifier the platform zone database
// supports; the documentation page renders it live.
type TimezonesResponse struct {
	Count     int      `json:"count"`
	Timezones []string `json:"timezones"`
}
