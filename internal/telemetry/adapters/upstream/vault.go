package upstream

import (
	"context"
	"errors"
	"net/url"

	"telemetry-gateway/internal/telemetry/core/domain"
)

const (
	ServiceSignup   = "signup"
	ServiceRetained = "retained"

	signupPath   = "/v3/signup-metrics"
	retainedPath = "/v3/retained-user-metrics"
)

// VaultClient reads signup and retained metrics from the vault service.
type VaultClient struct {
	c *client
}

func NewVaultClient(opts Options) (*VaultClient, error) {
	c, err := newClient(opts)
	if err != nil {
		return nil, err
	}
	return &VaultClient{c: c}, nil
}

func (v *VaultClient) FetchSignup(ctx context.Context, q domain.MetricsQuery) (*domain.SignupResult, error) {
	var out *domain.SignupResult
	err := v.c.get(ctx, ServiceSignup, signupPath, metricsParams(q), func(body []byte) error {
		var p signupPayload
		if err := decodeJSON(body, &p); err != nil {
			return err
		}
		if p.TotalSignupCount == nil {
			return errors.New("missing total_signup_count")
		}

		out = &domain.SignupResult{
			Total:          *p.TotalSignupCount,
			CountriesTotal: p.TotalCountryCount,
			BridgeSignups:  p.TotalSignupsFromBridges,
			Countries:      countriesOf(p.Countries, p.Data),
			Buckets:        p.Data.buckets(q.GroupBy),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (v *VaultClient) FetchRetained(ctx context.Context, q domain.MetricsQuery) (*domain.RetainedResult, error) {
	var out *domain.RetainedResult
	err := v.c.get(ctx, ServiceRetained, retainedPath, metricsParams(q), func(body []byte) error {
		var p retainedPayload
		if err := decodeJSON(body, &p); err != nil {
			return err
		}
		if p.TotalRetainedUserCount == nil {
			return errors.New("missing total_retained_user_count")
		}

		out = &domain.RetainedResult{
			Total:           *p.TotalRetainedUserCount,
			TotalWithTokens: p.TotalRetainedUsersWithTokens,
			CountriesTotal:  p.TotalCountryCount,
			Countries:       countriesOf(p.Countries, p.Data),
			Buckets:         p.Data.buckets(q.GroupBy),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// metricsParams serializes the filters; paging and top stay local.
func metricsParams(q domain.MetricsQuery) url.Values {
	v := url.Values{}
	v.Set("start_date", q.StartDate)
	v.Set("end_date", q.EndDate)
	setIfNotEmpty(v, "country_code", q.CountryCode)
	setIfNotEmpty(v, "granularity", q.Granularity)
	setIfNotEmpty(v, "group_by", q.GroupBy)
	setIfNotEmpty(v, "type", q.Type)
	setIfNotEmpty(v, "origin", q.Origin)
	return v
}

// countriesOf prefers the upstream country list and falls back to the
// countries present in data.
func countriesOf(listed []string, data dateTable) []string {
	if listed != nil {
		return listed
	}
	return data.countries()
}
