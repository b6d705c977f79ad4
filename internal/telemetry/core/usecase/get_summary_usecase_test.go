package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"testing"
	"time"

	"telemetry-gateway/internal/telemetry/core/domain"
	"telemetry-gateway/internal/telemetry/core/usecase"
)

func summaryInput() usecase.GetSummaryInput {
	return usecase.GetSummaryInput{
		StartDate: "2024-01-01",
		EndDate:   "2024-01-31",
	}
}

// ------------------------------------------------------------
// MERGE: union of keys, zero fill, most recent date first
// ------------------------------------------------------------

func TestGetSummary_MergeByDate(t *testing.T) {
	vault := &fakeVault{
		SignupFn: func(ctx context.Context, q domain.MetricsQuery) (*domain.SignupResult, error) {
			return &domain.SignupResult{
				Total:          5,
				CountriesTotal: 1,
				Countries:      []string{"US"},
				Buckets:        []domain.CountMetric{{Key: "2024-01-01", Count: 5}},
			}, nil
		},
		RetainedFn: func(ctx context.Context, q domain.MetricsQuery) (*domain.RetainedResult, error) {
			return &domain.RetainedResult{
				Total:          2,
				CountriesTotal: 1,
				Countries:      []string{"US"},
				Buckets:        []domain.CountMetric{{Key: "2024-01-02", Count: 2}},
			}, nil
		},
	}

	uc := usecase.NewGetSummaryUseCase(vault, vault, nil)

	out, err := uc.Execute(context.Background(), summaryInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.SummaryBucket{
		{Key: "2024-01-02", SignupUsers: 0, RetainedUsers: 2},
		{Key: "2024-01-01", SignupUsers: 5, RetainedUsers: 0},
	}
	if len(out.Buckets) != len(want) {
		t.Fatalf("expected %d buckets, got %d (%+v)", len(want), len(out.Buckets), out.Buckets)
	}
	for i := range want {
		if !reflect.DeepEqual(out.Buckets[i], want[i]) {
			t.Fatalf("bucket %d: expected %+v, got %+v", i, want[i], out.Buckets[i])
		}
	}
	if out.GroupBy != domain.GroupByDate {
		t.Fatalf("expected group_by=date, got %s", out.GroupBy)
	}
	if out.Publications != nil {
		t.Fatalf("expected no publication totals without a publisher")
	}
}

func TestGetSummary_MergeKeepsPerCountryStats(t *testing.T) {
	vault := &fakeVault{
		SignupFn: func(ctx context.Context, q domain.MetricsQuery) (*domain.SignupResult, error) {
			return &domain.SignupResult{Buckets: []domain.CountMetric{{
				Key:   "2024-01-01",
				Count: 8,
				Countries: []domain.CountryCount{
					{Country: "CM", Count: 3},
					{Country: "US", Count: 5},
				},
			}}}, nil
		},
		RetainedFn: func(ctx context.Context, q domain.MetricsQuery) (*domain.RetainedResult, error) {
			return &domain.RetainedResult{Buckets: []domain.CountMetric{{
				Key:   "2024-01-01",
				Count: 6,
				Countries: []domain.CountryCount{
					{Country: "US", Count: 2},
					{Country: "NG", Count: 4},
				},
			}}}, nil
		},
	}

	uc := usecase.NewGetSummaryUseCase(vault, vault, nil)

	out, err := uc.Execute(context.Background(), summaryInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.SummaryBucket{{
		Key:           "2024-01-01",
		SignupUsers:   8,
		RetainedUsers: 6,
		Stats: []domain.CountryStats{
			{Country: "CM", SignupUsers: 3, RetainedUsers: 0},
			{Country: "US", SignupUsers: 5, RetainedUsers: 2},
			{Country: "NG", SignupUsers: 0, RetainedUsers: 4},
		},
	}}
	if !reflect.DeepEqual(out.Buckets, want) {
		t.Fatalf("expected %+v, got %+v", want, out.Buckets)
	}
}

func TestGetSummary_MergeUnionProperty(t *testing.T) {
	tests := []struct {
		name     string
		signup   []domain.CountMetric
		retained []domain.CountMetric
	}{
		{"disjoint", []domain.CountMetric{{Key: "CM", Count: 3}, {Key: "NG", Count: 1}}, []domain.CountMetric{{Key: "US", Count: 4}}},
		{"overlapping", []domain.CountMetric{{Key: "CM", Count: 3}, {Key: "US", Count: 1}}, []domain.CountMetric{{Key: "US", Count: 4}, {Key: "FR", Count: 2}}},
		{"identical", []domain.CountMetric{{Key: "CM", Count: 3}}, []domain.CountMetric{{Key: "CM", Count: 7}}},
		{"signup_empty", nil, []domain.CountMetric{{Key: "CM", Count: 7}}},
		{"both_empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vault := &fakeVault{
				SignupFn: func(ctx context.Context, q domain.MetricsQuery) (*domain.SignupResult, error) {
					return &domain.SignupResult{Buckets: tt.signup}, nil
				},
				RetainedFn: func(ctx context.Context, q domain.MetricsQuery) (*domain.RetainedResult, error) {
					return &domain.RetainedResult{Buckets: tt.retained}, nil
				},
			}
			uc := usecase.NewGetSummaryUseCase(vault, vault, nil)

			in := summaryInput()
			in.GroupBy = domain.GroupByCountry
			out, err := uc.Execute(context.Background(), in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			signup := map[string]int64{}
			for _, m := range tt.signup {
				signup[m.Key] = m.Count
			}
			retained := map[string]int64{}
			for _, m := range tt.retained {
				retained[m.Key] = m.Count
			}
			union := map[string]bool{}
			for k := range signup {
				union[k] = true
			}
			for k := range retained {
				union[k] = true
			}

			if len(out.Buckets) != len(union) {
				t.Fatalf("expected %d merged keys, got %d", len(union), len(out.Buckets))
			}
			for _, b := range out.Buckets {
				if !union[b.Key] {
					t.Fatalf("unexpected key %s", b.Key)
				}
				if b.SignupUsers != signup[b.Key] || b.RetainedUsers != retained[b.Key] {
					t.Fatalf("key %s: expected signup=%d retained=%d, got %+v",
						b.Key, signup[b.Key], retained[b.Key], b)
				}
			}
		})
	}
}

func TestGetSummary_CountryOrderIsFirstSeen(t *testing.T) {
	vault := &fakeVault{
		SignupFn: func(ctx context.Context, q domain.MetricsQuery) (*domain.SignupResult, error) {
			return &domain.SignupResult{Buckets: []domain.CountMetric{{Key: "NG", Count: 1}, {Key: "CM", Count: 2}}}, nil
		},
		RetainedFn: func(ctx context.Context, q domain.MetricsQuery) (*domain.RetainedResult, error) {
			return &domain.RetainedResult{Buckets: []domain.CountMetric{{Key: "US", Count: 1}, {Key: "CM", Count: 9}}}, nil
		},
	}
	uc := usecase.NewGetSummaryUseCase(vault, vault, nil)

	in := summaryInput()
	in.GroupBy = domain.GroupByCountry
	out, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := []string{}
	for _, b := range out.Buckets {
		got = append(got, b.Key)
	}
	want := []string{"NG", "CM", "US"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

// ------------------------------------------------------------
// TOTALS come from upstream totals, not bucket sums
// ------------------------------------------------------------

func TestGetSummary_TotalsFromUpstream(t *testing.T) {
	vault := &fakeVault{
		SignupFn: func(ctx context.Context, q domain.MetricsQuery) (*domain.SignupResult, error) {
			return &domain.SignupResult{
				Total:          100,
				CountriesTotal: 7,
				BridgeSignups:  12,
				Countries:      []string{"CM", "NG"},
				Buckets:        []domain.CountMetric{{Key: "2024-01-01", Count: 1}},
			}, nil
		},
		RetainedFn: func(ctx context.Context, q domain.MetricsQuery) (*domain.RetainedResult, error) {
			return &domain.RetainedResult{
				Total:           40,
				TotalWithTokens: 15,
				CountriesTotal:  3,
				Countries:       []string{"CM"},
				Buckets:         []domain.CountMetric{{Key: "2024-01-01", Count: 1}},
			}, nil
		},
	}
	pub := &fakePublisher{
		FetchFn: func(ctx context.Context, q domain.PublicationsQuery) (*domain.PublicationsResult, error) {
			return &domain.PublicationsResult{Total: 9, Published: 8, Failed: 1}, nil
		},
	}

	uc := usecase.NewGetSummaryUseCase(vault, vault, pub)

	in := summaryInput()
	in.CountryCode = "cm"
	out, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.TotalSignupUsers != 100 || out.TotalRetainedUsers != 40 {
		t.Fatalf("unexpected user totals: %+v", out)
	}
	if out.TotalSignupCountries != 7 || out.TotalRetainedCountries != 3 {
		t.Fatalf("unexpected country totals: %+v", out)
	}
	if out.TotalBridgeSignups != 12 || out.TotalRetainedWithTokens != 15 {
		t.Fatalf("unexpected bridge/token totals: %+v", out)
	}
	if len(out.SignupCountries) != 2 || len(out.RetainedCountries) != 1 {
		t.Fatalf("unexpected country lists: %+v", out)
	}
	if out.Publications == nil || out.Publications.Total != 9 || out.Publications.Failed != 1 {
		t.Fatalf("unexpected publication totals: %+v", out.Publications)
	}
	if !pub.called {
		t.Fatalf("expected publisher to be called")
	}
	if pub.lastQuery.CountryCode != "CM" || pub.lastQuery.StartDate != "2024-01-01" {
		t.Fatalf("unexpected publications query: %+v", pub.lastQuery)
	}
	if vault.lastQuery.CountryCode != "CM" {
		t.Fatalf("expected canonical country code CM, got %s", vault.lastQuery.CountryCode)
	}
}

// ------------------------------------------------------------
// FAILURE: no partial summary, stable error order
// ------------------------------------------------------------

func TestGetSummary_RetainedTimeoutFailsWholeSummary(t *testing.T) {
	timeout := &domain.UpstreamError{Service: "retained", Kind: domain.UpstreamTimeout}
	vault := &fakeVault{
		RetainedFn: func(ctx context.Context, q domain.MetricsQuery) (*domain.RetainedResult, error) {
			return nil, timeout
		},
	}

	uc := usecase.NewGetSummaryUseCase(vault, vault, nil)

	out, err := uc.Execute(context.Background(), summaryInput())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !errors.Is(err, timeout) {
		t.Fatalf("expected retained timeout, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil summary on error, got %+v", out)
	}
}

func TestGetSummary_FirstErrorInDeclaredOrder(t *testing.T) {
	signupErr := &domain.UpstreamError{Service: "signup", Kind: domain.UpstreamHTTPStatus, StatusCode: http.StatusBadRequest}
	retainedErr := &domain.UpstreamError{Service: "retained", Kind: domain.UpstreamDecode}
	pubErr := &domain.UpstreamError{Service: "publications", Kind: domain.UpstreamTimeout}

	vault := &fakeVault{
		// signup fails last, but is still the reported error
		SignupFn: func(ctx context.Context, q domain.MetricsQuery) (*domain.SignupResult, error) {
			time.Sleep(30 * time.Millisecond)
			return nil, signupErr
		},
		RetainedFn: func(ctx context.Context, q domain.MetricsQuery) (*domain.RetainedResult, error) {
			return nil, retainedErr
		},
	}
	pub := &fakePublisher{
		FetchFn: func(ctx context.Context, q domain.PublicationsQuery) (*domain.PublicationsResult, error) {
			return nil, pubErr
		},
	}

	uc := usecase.NewGetSummaryUseCase(vault, vault, pub)

	_, err := uc.Execute(context.Background(), summaryInput())
	if !errors.Is(err, signupErr) {
		t.Fatalf("expected signup error, got %v", err)
	}
}

func TestGetSummary_PublicationsFailureFailsSummary(t *testing.T) {
	pubErr := &domain.UpstreamError{Service: "publications", Kind: domain.UpstreamHTTPStatus, StatusCode: http.StatusBadGateway}
	vault := &fakeVault{}
	pub := &fakePublisher{
		FetchFn: func(ctx context.Context, q domain.PublicationsQuery) (*domain.PublicationsResult, error) {
			return nil, pubErr
		},
	}

	uc := usecase.NewGetSummaryUseCase(vault, vault, pub)

	out, err := uc.Execute(context.Background(), summaryInput())
	if !errors.Is(err, pubErr) {
		t.Fatalf("expected publications error, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil summary")
	}
}

// ------------------------------------------------------------
// CONCURRENCY: calls overlap, cancellation reaches in-flight calls
// ------------------------------------------------------------

func TestGetSummary_CallsRunConcurrently(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 2)

	vault := &fakeVault{
		SignupFn: func(ctx context.Context, q domain.MetricsQuery) (*domain.SignupResult, error) {
			started <- struct{}{}
			<-release
			return &domain.SignupResult{}, nil
		},
		RetainedFn: func(ctx context.Context, q domain.MetricsQuery) (*domain.RetainedResult, error) {
			started <- struct{}{}
			<-release
			return &domain.RetainedResult{}, nil
		},
	}
	uc := usecase.NewGetSummaryUseCase(vault, vault, nil)

	done := make(chan error, 1)
	go func() {
		_, err := uc.Execute(context.Background(), summaryInput())
		done <- err
	}()

	for i := 0; i < 2; i++ {
		select {
		case <-started:
		case <-time.After(2 * time.Second):
			t.Fatalf("upstream calls were not dispatched concurrently")
		}
	}
	close(release)

	if err := <-done; err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetSummary_CanceledContext(t *testing.T) {
	vault := &fakeVault{
		SignupFn: func(ctx context.Context, q domain.MetricsQuery) (*domain.SignupResult, error) {
			<-ctx.Done()
			return nil, &domain.UpstreamError{Service: "signup", Kind: domain.UpstreamTransport, Err: ctx.Err()}
		},
		RetainedFn: func(ctx context.Context, q domain.MetricsQuery) (*domain.RetainedResult, error) {
			<-ctx.Done()
			return nil, &domain.UpstreamError{Service: "retained", Kind: domain.UpstreamTransport, Err: ctx.Err()}
		},
	}
	uc := usecase.NewGetSummaryUseCase(vault, vault, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	out, err := uc.Execute(ctx, summaryInput())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if out != nil {
		t.Fatalf("expected nil summary")
	}
}

// ------------------------------------------------------------
// VALIDATION
// ------------------------------------------------------------

func TestGetSummary_InvalidInput(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *usecase.GetSummaryInput)
		wantErr error
	}{
		{"bad_start_date", func(in *usecase.GetSummaryInput) { in.StartDate = "2024/01/01" }, usecase.ErrInvalidDate},
		{"bad_end_date", func(in *usecase.GetSummaryInput) { in.EndDate = "tomorrow" }, usecase.ErrInvalidDate},
		{"reversed_range", func(in *usecase.GetSummaryInput) { in.StartDate, in.EndDate = "2024-02-01", "2024-01-01" }, usecase.ErrInvalidDateRange},
		{"bad_country", func(in *usecase.GetSummaryInput) { in.CountryCode = "1A" }, usecase.ErrInvalidCountryCode},
		{"long_country", func(in *usecase.GetSummaryInput) { in.CountryCode = "CMR" }, usecase.ErrInvalidCountryCode},
		{"bad_group_by", func(in *usecase.GetSummaryInput) { in.GroupBy = "platform" }, usecase.ErrInvalidGroupBy},
		{"bad_granularity", func(in *usecase.GetSummaryInput) { in.Granularity = "hour" }, usecase.ErrInvalidGranularity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vault := &fakeVault{}
			uc := usecase.NewGetSummaryUseCase(vault, vault, nil)

			in := summaryInput()
			tt.mutate(&in)

			out, err := uc.Execute(context.Background(), in)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if out != nil {
				t.Fatalf("expected nil result")
			}
			if vault.signupCalls != 0 || vault.retainedCalls != 0 {
				t.Fatalf("upstreams should not be called on invalid input")
			}
		})
	}
}
