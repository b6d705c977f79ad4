package usecase

import (
	"context"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"telemetry-gateway/internal/telemetry/core/domain"
	"telemetry-gateway/internal/telemetry/core/ports"
)

type GetSummaryUseCase struct {
	signup       ports.SignupReaderPort
	retained     ports.RetainedReaderPort
	publications ports.PublicationsReaderPort // optional
}

// NewGetSummaryUseCase builds the summary aggregator. publications may be nil
// when no publisher is deployed; the summary then carries no publication totals.
func NewGetSummaryUseCase(
	signup ports.SignupReaderPort,
	retained ports.RetainedReaderPort,
	publications ports.PublicationsReaderPort,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		signup:       signup,
		retained:     retained,
		publications: publications,
	}
}

// Execute queries every upstream concurrently, waits for all of them and
// merges the results. If any call fails the summary fails with the first
// error in signup, retained, publications order.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, in GetSummaryInput) (*domain.Summary, error) {
	q, err := in.toQuery()
	if err != nil {
		return nil, err
	}

	var (
		signup   *domain.SignupResult
		retained *domain.RetainedResult
		pubs     *domain.PublicationsResult

		signupErr, retainedErr, pubsErr error
	)

	// A failing call does not cancel its siblings: every slot must hold its
	// own outcome so the reported error does not depend on completion order.
	var g errgroup.Group

	g.Go(func() error {
		signup, signupErr = uc.signup.FetchSignup(ctx, q)
		return signupErr
	})
	g.Go(func() error {
		retained, retainedErr = uc.retained.FetchRetained(ctx, q)
		return retainedErr
	})
	if uc.publications != nil {
		pq := domain.PublicationsQuery{
			StartDate:   q.StartDate,
			EndDate:     q.EndDate,
			CountryCode: q.CountryCode,
		}
		g.Go(func() error {
			pubs, pubsErr = uc.publications.FetchPublications(ctx, pq)
			return pubsErr
		})
	}

	_ = g.Wait()

	for _, err := range []error{signupErr, retainedErr, pubsErr} {
		if err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := &domain.Summary{
		TotalSignupUsers:        signup.Total,
		TotalRetainedUsers:      retained.Total,
		TotalRetainedWithTokens: retained.TotalWithTokens,
		TotalSignupCountries:    signup.CountriesTotal,
		TotalRetainedCountries:  retained.CountriesTotal,
		TotalBridgeSignups:      signup.BridgeSignups,
		SignupCountries:         signup.Countries,
		RetainedCountries:       retained.Countries,
		GroupBy:                 q.GroupBy,
		Buckets:                 mergeBuckets(q.GroupBy, signup.Buckets, retained.Buckets),
	}
	if pubs != nil {
		summary.Publications = &domain.PublicationTotals{
			Total:     pubs.Total,
			Published: pubs.Published,
			Failed:    pubs.Failed,
		}
	}

	return summary, nil
}

// mergeBuckets joins signup and retained buckets over the union of their keys.
// A key missing from one side counts as 0 there; the per-country rows of a
// date bucket are joined the same way. Date keys are ordered most recent
// first; country keys keep first-seen order.
func mergeBuckets(groupBy string, signup, retained []domain.CountMetric) []domain.SummaryBucket {
	index := make(map[string]int, len(signup)+len(retained))
	statIndex := make(map[string]map[string]int)
	merged := make([]domain.SummaryBucket, 0, len(signup)+len(retained))

	slot := func(key string) *domain.SummaryBucket {
		i, ok := index[key]
		if !ok {
			i = len(merged)
			index[key] = i
			merged = append(merged, domain.SummaryBucket{Key: key})
		}
		return &merged[i]
	}

	stat := func(b *domain.SummaryBucket, country string) *domain.CountryStats {
		idx, ok := statIndex[b.Key]
		if !ok {
			idx = make(map[string]int)
			statIndex[b.Key] = idx
		}
		i, ok := idx[country]
		if !ok {
			i = len(b.Stats)
			idx[country] = i
			b.Stats = append(b.Stats, domain.CountryStats{Country: country})
		}
		return &b.Stats[i]
	}

	for _, m := range signup {
		b := slot(m.Key)
		b.SignupUsers += m.Count
		for _, c := range m.Countries {
			stat(b, c.Country).SignupUsers += c.Count
		}
	}
	for _, m := range retained {
		b := slot(m.Key)
		b.RetainedUsers += m.Count
		for _, c := range m.Countries {
			stat(b, c.Country).RetainedUsers += c.Count
		}
	}

	if groupBy == domain.GroupByDate {
		slices.SortStableFunc(merged, func(a, b domain.SummaryBucket) int {
			return strings.Compare(b.Key, a.Key)
		})
	}

	return merged
}
