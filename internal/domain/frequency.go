package domain

// RecurringFrequency represents how often a recurring schedule repeats
type RecurringFrequency string

const (
	FrequencyWeekly      RecurringFrequency = "WEEKLY"
	FrequencyBiWeekly    RecurringFrequency = "BIWEEKLY"
	FrequencySemiMonthly RecurringFrequency = "SEMIMONTHLY"
	FrequencyMonthly     RecurringFrequency = "MONTHLY"
	FrequencyQuarterly   RecurringFrequency = "QUARTERLY"
	FrequencyAnnually    RecurringFrequency = "ANNUALLY"
)

// DayStep returns the fixed day interval for day-count frequencies and ok=false
// for the calendar-aware ones (Monthly/Quarterly/Annually), which advance by
// calendar unit instead of a fixed number of days.
//
// NOTE: SemiMonthly is a flat 15-day approximation, not true 1st/15th
// twice-per-month semantics. It drifts over multi-month ranges.
func (f RecurringFrequency) DayStep() (days int, ok bool) {
	switch f {
	case FrequencyWeekly:
		return 7, true
	case FrequencyBiWeekly:
		return 14, true
	case FrequencySemiMonthly:
		return 15, true
	}
	return 0, false
}

// MonthStep returns the calendar month interval for calendar-aware frequencies
// and ok=false for the day-count ones.
func (f RecurringFrequency) MonthStep() (months int, ok bool) {
	switch f {
	case FrequencyMonthly:
		return 1, true
	case FrequencyQuarterly:
		return 3, true
	case FrequencyAnnually:
		return 12, true
	}
	return 0, false
}

// Valid reports whether the frequency is one of the known variants.
func (f RecurringFrequency) Valid() bool {
	_, dayOK := f.DayStep()
	_, monthOK := f.MonthStep()
	return dayOK || monthOK
}
