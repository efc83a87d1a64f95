package core

// Organization-wide projection assumptions. These constants determine the
// externally visible dollar figure and are part of the public contract.
const (
	EngineerCount            = 100
	CommitsPerEngineerPerDay = 10
	WorkingDaysPerMonth      = 20
	AnnualSalaryUSD          = 150000
	WorkWeeksPerYear         = 52
	WorkHoursPerWeek         = 40
)

// MonthlySavingsUSD projects the averaged per-commit time delta into an
// organization-wide monthly dollar estimate, truncated to whole dollars.
func MonthlySavingsUSD(avgCurrentSeconds, avgSmartSeconds int) int {
	savedPerCommit := float64(avgCurrentSeconds - avgSmartSeconds)
	monthlySeconds := savedPerCommit * CommitsPerEngineerPerDay * EngineerCount * WorkingDaysPerMonth
	hourlyRate := float64(AnnualSalaryUSD) / (WorkWeeksPerYear * WorkHoursPerWeek)
	return int(monthlySeconds / 3600.0 * hourlyRate)
}
