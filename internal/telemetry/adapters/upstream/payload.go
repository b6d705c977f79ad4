package upstream

import (
	"bytes"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"time"

	"telemetry-gateway/internal/telemetry/core/domain"
)

// Wire shapes of the upstream metrics endpoints. Totals are pointers so a
// body missing them is reported as a decode failure instead of a zero.

type signupPayload struct {
	TotalSignupCount        *int64    `json:"total_signup_count"`
	TotalCountryCount       int64     `json:"total_country_count"`
	TotalSignupsFromBridges int64     `json:"total_signups_from_bridges"`
	Countries               []string  `json:"countries"`
	Data                    dateTable `json:"data"`
}

type retainedPayload struct {
	TotalRetainedUserCount       *int64    `json:"total_retained_user_count"`
	TotalRetainedUsersWithTokens int64     `json:"total_retained_users_with_tokens"`
	TotalCountryCount            int64     `json:"total_country_count"`
	Countries                    []string  `json:"countries"`
	Data                         dateTable `json:"data"`
}

// dateTable is the vault "data" object: date -> country -> count.
// An empty list or null is read as no data.
type dateTable map[string]map[string]countEntry

func (t *dateTable) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) || bytes.Equal(b, []byte("[]")) {
		*t = nil
		return nil
	}
	var m map[string]map[string]countEntry
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	*t = m
	return nil
}

// countEntry is either a bare number or {"signup_count": n} /
// {"retained_user_count": n}.
type countEntry int64

func (e *countEntry) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		var n int64
		if err := json.Unmarshal(b, &n); err != nil {
			return err
		}
		*e = countEntry(n)
		return nil
	}

	var obj struct {
		SignupCount       *int64 `json:"signup_count"`
		RetainedUserCount *int64 `json:"retained_user_count"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	switch {
	case obj.SignupCount != nil:
		*e = countEntry(*obj.SignupCount)
	case obj.RetainedUserCount != nil:
		*e = countEntry(*obj.RetainedUserCount)
	default:
		return errors.New("count entry has neither signup_count nor retained_user_count")
	}
	return nil
}

// buckets folds the table into the requested grouping. Date buckets are
// most recent first and keep their per-country rows; country buckets are
// summed over all dates, largest first.
func (t dateTable) buckets(groupBy string) []domain.CountMetric {
	if groupBy == domain.GroupByCountry {
		totals := make(map[string]int64)
		for _, countries := range t {
			for country, n := range countries {
				totals[country] += int64(n)
			}
		}
		out := make([]domain.CountMetric, 0, len(totals))
		for country, n := range totals {
			out = append(out, domain.CountMetric{Key: country, Count: n})
		}
		slices.SortFunc(out, func(a, b domain.CountMetric) int {
			if a.Count != b.Count {
				if a.Count > b.Count {
					return -1
				}
				return 1
			}
			return strings.Compare(a.Key, b.Key)
		})
		return out
	}

	out := make([]domain.CountMetric, 0, len(t))
	for date, countries := range t {
		b := domain.CountMetric{Key: date, Countries: make([]domain.CountryCount, 0, len(countries))}
		for country, n := range countries {
			b.Count += int64(n)
			b.Countries = append(b.Countries, domain.CountryCount{Country: country, Count: int64(n)})
		}
		slices.SortFunc(b.Countries, func(x, y domain.CountryCount) int {
			return strings.Compare(x.Country, y.Country)
		})
		out = append(out, b)
	}
	slices.SortFunc(out, func(a, b domain.CountMetric) int {
		return strings.Compare(b.Key, a.Key)
	})
	return out
}

// countries lists the distinct countries present in the table, sorted.
func (t dateTable) countries() []string {
	seen := make(map[string]struct{})
	for _, countries := range t {
		for country := range countries {
			seen[country] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for country := range seen {
		out = append(out, country)
	}
	slices.Sort(out)
	return out
}

type publicationRow struct {
	ID            int64  `json:"id"`
	CountryCode   string `json:"country_code"`
	PlatformName  string `json:"platform_name"`
	Source        string `json:"source"`
	Status        string `json:"status"`
	GatewayClient string `json:"gateway_client"`
	DateTime      string `json:"date_time"`
}

type publicationsPayload struct {
	TotalPublications *int64           `json:"total_publications"`
	TotalPublished    int64            `json:"total_published"`
	TotalFailed       int64            `json:"total_failed"`
	Data              []publicationRow `json:"data"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02 15:04:05.999999",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, true
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
