package model

// Interval identifies a candlestick bucket width using the exchange wire
// notation: minutes as numbers ("1".."720"), "D" (day), "W" (week), "M" (month).
type Interval string

// DefaultInterval is the fallback applied when an unknown interval is
// encountered at download time.
const DefaultInterval = Interval("D")

var intervalSeconds = map[Interval]int64{
	"1":   60,
	"3":   180,
	"5":   300,
	"15":  900,
	"30":  1800,
	"60":  3600,
	"120": 7200,
	"240": 14400,
	"360": 21600,
	"720": 43200,
	"D":   86400,
	"W":   604800,
	"M":   2592000,
}

// Seconds returns the bucket width in seconds and whether the interval is known.
func (i Interval) Seconds() (int64, bool) {
	s, ok := intervalSeconds[i]
	return s, ok
}

// Valid reports whether i is a known interval.
func (i Interval) Valid() bool {
	_, ok := intervalSeconds[i]
	return ok
}
