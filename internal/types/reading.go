package types

// Reading is a single temperature measurement as logged by the station to
// registro.txt. Date and Time are kept as the tokens found in the file
// (dd/mm/yyyy and hh:mm:ss); they are never validated as a real calendar
// date. Trend is the station's own classification of the reading and is
// carried through untouched.
type Reading struct {
	Date        string  `json:"date" msgpack:"date"`
	Time        string  `json:"time" msgpack:"time"`
	Temperature float32 `json:"temperature" msgpack:"temperature"`
	Trend       string  `json:"trend" msgpack:"trend"`
}

// Trend tokens written by the station.
const (
	TrendNoData = "sin datos"
	TrendHigh   = "alta"
	TrendLow    = "baja"
	TrendSteady = "estable"
)
