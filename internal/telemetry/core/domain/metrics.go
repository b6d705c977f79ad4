package domain

import "time"

const (
	GroupByCountry = "country"
	GroupByDate    = "date"

	GranularityDay   = "day"
	GranularityMonth = "month"
)

// MetricsQuery is the filter set forwarded to the vault metrics endpoints.
type MetricsQuery struct {
	StartDate   string // YYYY-MM-DD
	EndDate     string // YYYY-MM-DD
	CountryCode string // "" or ISO 3166-1 alpha-2
	Granularity string // "day" / "month"
	GroupBy     string // "country" / "date"
	Type        string
	Origin      string

	// Shaping only; never forwarded upstream.
	Top      *int
	Page     int
	PageSize int
}

// PublicationsQuery is the filter set forwarded to the publisher.
type PublicationsQuery struct {
	StartDate     string
	EndDate       string
	CountryCode   string
	PlatformName  string
	Source        string
	Status        string // "published" / "failed"
	GatewayClient string

	Page     int
	PageSize int
}

// CountMetric is a single bucket; Key is a country code or a date/month.
// Countries breaks a date bucket down per country; it is empty for
// country buckets.
type CountMetric struct {
	Key       string
	Count     int64
	Countries []CountryCount
}

type CountryCount struct {
	Country string
	Count   int64
}

type SignupResult struct {
	Total          int64
	CountriesTotal int64
	BridgeSignups  int64
	Countries      []string
	Buckets        []CountMetric
}

type RetainedResult struct {
	Total           int64
	TotalWithTokens int64
	CountriesTotal  int64
	Countries       []string
	Buckets         []CountMetric
}

type PublicationRecord struct {
	ID            int64
	CountryCode   string
	PlatformName  string
	Source        string
	Status        string
	GatewayClient string
	Timestamp     time.Time
}

type PublicationsResult struct {
	Total     int64
	Published int64
	Failed    int64
	Records   []PublicationRecord
}
