package domain

// Summary is the combined view over signup, retained and (optionally)
// publication totals.
type Summary struct {
	TotalSignupUsers        int64
	TotalRetainedUsers      int64
	TotalRetainedWithTokens int64
	TotalSignupCountries    int64
	TotalRetainedCountries  int64
	TotalBridgeSignups      int64

	SignupCountries   []string
	RetainedCountries []string

	GroupBy string
	Buckets []SummaryBucket

	// nil when no publisher is deployed
	Publications *PublicationTotals
}

// SummaryBucket holds both counts for one key of the merged breakdown.
// For date buckets, Stats holds the per-country counts of that date.
type SummaryBucket struct {
	Key           string
	SignupUsers   int64
	RetainedUsers int64
	Stats         []CountryStats
}

type CountryStats struct {
	Country       string
	SignupUsers   int64
	RetainedUsers int64
}

type PublicationTotals struct {
	Total     int64
	Published int64
	Failed    int64
}
