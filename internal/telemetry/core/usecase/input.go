package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"telemetry-gateway/internal/telemetry/core/domain"
)

var (
	ErrInvalidDate        = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange   = errors.New("start_date must not be after end_date")
	ErrInvalidCountryCode = errors.New("country_code must be an ISO 3166-1 alpha-2 code")
	ErrInvalidGranularity = errors.New("granularity must be one of: day, month")
	ErrInvalidGroupBy     = errors.New("group_by must be one of: country, date")
	ErrInvalidStatus      = errors.New("status must be one of: published, failed")
	ErrTopWithPagination  = errors.New("top cannot be used with page or page_size")
	ErrInvalidTop         = errors.New("top must be greater than zero")
	ErrInvalidPagination  = errors.New("page must be >= 1 and page_size between 10 and 100")
)

const (
	dateLayout = "2006-01-02"

	DefaultPage     = 1
	DefaultPageSize = 10
	MinPageSize     = 10
	MaxPageSize     = 100
)

// GetMetricsInput is shared by the signup and retained endpoints.
type GetMetricsInput struct {
	StartDate   string
	EndDate     string
	CountryCode string
	Granularity string // "" -> day
	GroupBy     string // "" -> date
	Type        string
	Origin      string

	Top      *int
	Page     *int
	PageSize *int
}

type GetSummaryInput struct {
	StartDate   string
	EndDate     string
	CountryCode string
	Granularity string
	GroupBy     string
	Type        string
	Origin      string
}

type GetPublicationsInput struct {
	StartDate     string
	EndDate       string
	CountryCode   string
	PlatformName  string
	Source        string
	Status        string
	GatewayClient string

	Page     *int
	PageSize *int
}

func (in GetMetricsInput) toQuery() (domain.MetricsQuery, error) {
	base, err := GetSummaryInput{
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		CountryCode: in.CountryCode,
		Granularity: in.Granularity,
		GroupBy:     in.GroupBy,
		Type:        in.Type,
		Origin:      in.Origin,
	}.toQuery()
	if err != nil {
		return domain.MetricsQuery{}, err
	}

	if in.Top != nil && (in.Page != nil || in.PageSize != nil) {
		return domain.MetricsQuery{}, ErrTopWithPagination
	}
	if in.Top != nil {
		if *in.Top < 1 {
			return domain.MetricsQuery{}, ErrInvalidTop
		}
		top := *in.Top
		base.Top = &top
		return base, nil
	}

	base.Page, base.PageSize, err = resolvePage(in.Page, in.PageSize)
	if err != nil {
		return domain.MetricsQuery{}, err
	}
	return base, nil
}

func (in GetSummaryInput) toQuery() (domain.MetricsQuery, error) {
	if err := validateDateRange(in.StartDate, in.EndDate); err != nil {
		return domain.MetricsQuery{}, err
	}

	country, err := normalizeCountryCode(in.CountryCode)
	if err != nil {
		return domain.MetricsQuery{}, err
	}

	granularity := in.Granularity
	switch granularity {
	case "":
		granularity = domain.GranularityDay
	case domain.GranularityDay, domain.GranularityMonth:
	default:
		return domain.MetricsQuery{}, ErrInvalidGranularity
	}

	groupBy := in.GroupBy
	switch groupBy {
	case "":
		groupBy = domain.GroupByDate
	case domain.GroupByDate, domain.GroupByCountry:
	default:
		return domain.MetricsQuery{}, ErrInvalidGroupBy
	}

	return domain.MetricsQuery{
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		CountryCode: country,
		Granularity: granularity,
		GroupBy:     groupBy,
		Type:        strings.TrimSpace(in.Type),
		Origin:      strings.TrimSpace(in.Origin),
	}, nil
}

func (in GetPublicationsInput) toQuery() (domain.PublicationsQuery, error) {
	if err := validateDateRange(in.StartDate, in.EndDate); err != nil {
		return domain.PublicationsQuery{}, err
	}

	country, err := normalizeCountryCode(in.CountryCode)
	if err != nil {
		return domain.PublicationsQuery{}, err
	}

	switch in.Status {
	case "", "published", "failed":
	default:
		return domain.PublicationsQuery{}, ErrInvalidStatus
	}

	page, pageSize, err := resolvePage(in.Page, in.PageSize)
	if err != nil {
		return domain.PublicationsQuery{}, err
	}

	return domain.PublicationsQuery{
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		CountryCode:   country,
		PlatformName:  strings.TrimSpace(in.PlatformName),
		Source:        strings.TrimSpace(in.Source),
		Status:        in.Status,
		GatewayClient: strings.TrimSpace(in.GatewayClient),
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

func validateDateRange(startDate, endDate string) error {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return fmt.Errorf("start_date: %w", ErrInvalidDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return fmt.Errorf("end_date: %w", ErrInvalidDate)
	}
	if start.After(end) {
		return ErrInvalidDateRange
	}
	return nil
}

// normalizeCountryCode returns the canonical upper-case region code, or ""
// when no country filter was given.
func normalizeCountryCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", nil
	}
	if len(code) != 2 {
		return "", ErrInvalidCountryCode
	}
	region, err := language.ParseRegion(code)
	if err != nil || !region.IsCountry() {
		return "", ErrInvalidCountryCode
	}
	return region.String(), nil
}

func resolvePage(page, pageSize *int) (int, int, error) {
	p, size := DefaultPage, DefaultPageSize
	if page != nil {
		p = *page
	}
	if pageSize != nil {
		size = *pageSize
	}
	if p < 1 || size < MinPageSize || size > MaxPageSize {
		return 0, 0, ErrInvalidPagination
	}
	return p, size, nil
}
