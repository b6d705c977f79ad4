package fiber

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"telemetry-gateway/internal/platform/requestid"
	"telemetry-gateway/internal/telemetry/core/domain"
	"telemetry-gateway/internal/telemetry/core/usecase"
)

const genericErrorMessage = "Oops! Something went wrong. Please try again later."

type GetSummaryUseCase interface {
	Execute(ctx context.Context, in usecase.GetSummaryInput) (*domain.Summary, error)
}

type GetSignupUseCase interface {
	Execute(ctx context.Context, in usecase.GetMetricsInput) (*usecase.SignupPage, error)
}

type GetRetainedUseCase interface {
	Execute(ctx context.Context, in usecase.GetMetricsInput) (*usecase.RetainedPage, error)
}

type GetPublicationsUseCase interface {
	Execute(ctx context.Context, in usecase.GetPublicationsInput) (*usecase.PublicationsPage, error)
}

// UseCases groups the handler dependencies. Publications may be nil.
type UseCases struct {
	Summary      GetSummaryUseCase
	Signup       GetSignupUseCase
	Retained     GetRetainedUseCase
	Publications GetPublicationsUseCase
}

type MetricsHandler struct {
	uc  UseCases
	log zerolog.Logger
}

func NewMetricsHandler(uc UseCases, log zerolog.Logger) *MetricsHandler {
	return &MetricsHandler{uc: uc, log: log}
}

// Register mounts the metrics routes on r. The publications route exists
// only when a publications use case is configured.
func (h *MetricsHandler) Register(r fiber.Router) {
	r.Get("/healthz", h.Health)
	r.Get("/summary", h.GetSummary)
	r.Get("/signup", h.GetSignup)
	r.Get("/retained", h.GetRetained)
	if h.uc.Publications != nil {
		r.Get("/publications", h.GetPublications)
	}
}

// Health godoc
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /v1/healthz [get]
func (h *MetricsHandler) Health(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(HealthResponse{Status: "ok"})
}

// GetSummary godoc
// @Summary Combined signup and retained summary
// @Description Queries signup, retained and publication metrics concurrently and merges them
// @Tags Metrics
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Param country_code query string false "ISO 3166-1 alpha-2 country code"
// @Param granularity query string false "Granularity: day | month"
// @Param group_by query string false "Group by: country | date"
// @Param type query string false "Metric type filter"
// @Param origin query string false "Origin filter"
// @Success 200 {object} SummaryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/summary [get]
func (h *MetricsHandler) GetSummary(c *fiber.Ctx) error {
	var q SummaryQuery
	if err := bindQuery(c, &q); err != nil {
		return h.fail(c, err)
	}

	res, err := h.uc.Summary.Execute(c.UserContext(), usecase.GetSummaryInput{
		StartDate:   q.StartDate,
		EndDate:     q.EndDate,
		CountryCode: q.CountryCode,
		Granularity: q.Granularity,
		GroupBy:     q.GroupBy,
		Type:        q.Type,
		Origin:      q.Origin,
	})
	if err != nil {
		return h.fail(c, err)
	}

	body := SummaryBody{
		TotalSignupUsers:             res.TotalSignupUsers,
		TotalRetainedUsers:           res.TotalRetainedUsers,
		TotalRetainedUsersWithTokens: res.TotalRetainedWithTokens,
		TotalSignupCountries:         res.TotalSignupCountries,
		TotalRetainedCountries:       res.TotalRetainedCountries,
		TotalSignupsFromBridges:      res.TotalBridgeSignups,
		SignupCountries:              orEmpty(res.SignupCountries),
		RetainedCountries:            orEmpty(res.RetainedCountries),
		GroupBy:                      res.GroupBy,
		Data:                         make([]SummaryBucketResponse, 0, len(res.Buckets)),
	}
	for _, b := range res.Buckets {
		bucket := SummaryBucketResponse{
			Key:           b.Key,
			SignupUsers:   b.SignupUsers,
			RetainedUsers: b.RetainedUsers,
		}
		for _, st := range b.Stats {
			bucket.Stats = append(bucket.Stats, CountryStatsResponse{
				Country:       st.Country,
				SignupUsers:   st.SignupUsers,
				RetainedUsers: st.RetainedUsers,
			})
		}
		body.Data = append(body.Data, bucket)
	}
	if res.Publications != nil {
		body.Publications = &PublicationTotalsResponse{
			TotalPublications: res.Publications.Total,
			TotalPublished:    res.Publications.Published,
			TotalFailed:       res.Publications.Failed,
		}
	}

	return c.Status(http.StatusOK).JSON(SummaryResponse{Summary: body})
}

// GetSignup godoc
// @Summary Signup metrics
// @Description Signup counts grouped by country or date, with top-N or pagination
// @Tags Metrics
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Param country_code query string false "ISO 3166-1 alpha-2 country code"
// @Param granularity query string false "Granularity: day | month"
// @Param group_by query string false "Group by: country | date"
// @Param type query string false "Metric type filter"
// @Param origin query string false "Origin filter"
// @Param top query int false "Return only the first N records"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (10-100)"
// @Success 200 {object} SignupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/signup [get]
func (h *MetricsHandler) GetSignup(c *fiber.Ctx) error {
	var q MetricQuery
	if err := bindQuery(c, &q); err != nil {
		return h.fail(c, err)
	}

	res, err := h.uc.Signup.Execute(c.UserContext(), q.toInput())
	if err != nil {
		return h.fail(c, err)
	}

	s := res.Signup
	return c.Status(http.StatusOK).JSON(SignupResponse{Signup: SignupBody{
		TotalSignupUsers:        s.Total,
		TotalCountries:          s.CountriesTotal,
		TotalSignupsFromBridges: s.BridgeSignups,
		Countries:               orEmpty(s.Countries),
		GroupBy:                 res.GroupBy,
		Pagination:              toPagination(res.Pagination),
		Data:                    toCounts(s.Buckets),
	}})
}

// GetRetained godoc
// @Summary Retained user metrics
// @Description Retained user counts grouped by country or date, with top-N or pagination
// @Tags Metrics
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Param country_code query string false "ISO 3166-1 alpha-2 country code"
// @Param granularity query string false "Granularity: day | month"
// @Param group_by query string false "Group by: country | date"
// @Param type query string false "Metric type filter"
// @Param origin query string false "Origin filter"
// @Param top query int false "Return only the first N records"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (10-100)"
// @Success 200 {object} RetainedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/retained [get]
func (h *MetricsHandler) GetRetained(c *fiber.Ctx) error {
	var q MetricQuery
	if err := bindQuery(c, &q); err != nil {
		return h.fail(c, err)
	}

	res, err := h.uc.Retained.Execute(c.UserContext(), q.toInput())
	if err != nil {
		return h.fail(c, err)
	}

	r := res.Retained
	return c.Status(http.StatusOK).JSON(RetainedResponse{Retained: RetainedBody{
		TotalRetainedUsers:           r.Total,
		TotalRetainedUsersWithTokens: r.TotalWithTokens,
		TotalCountries:               r.CountriesTotal,
		Countries:                    orEmpty(r.Countries),
		GroupBy:                      res.GroupBy,
		Pagination:                   toPagination(res.Pagination),
		Data:                         toCounts(r.Buckets),
	}})
}

// GetPublications godoc
// @Summary Publication records
// @Description Paginated publication records with published/failed totals
// @Tags Metrics
// @Produce json
// @Param start_date query string true "Start date (YYYY-MM-DD)"
// @Param end_date query string true "End date (YYYY-MM-DD)"
// @Param country_code query string false "ISO 3166-1 alpha-2 country code"
// @Param platform_name query string false "Platform name"
// @Param source query string false "Source"
// @Param status query string false "Status: published | failed"
// @Param gateway_client query string false "Gateway client"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size (10-100)"
// @Success 200 {object} PublicationsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /v1/publications [get]
func (h *MetricsHandler) GetPublications(c *fiber.Ctx) error {
	var q PublicationsQuery
	if err := bindQuery(c, &q); err != nil {
		return h.fail(c, err)
	}

	res, err := h.uc.Publications.Execute(c.UserContext(), usecase.GetPublicationsInput{
		StartDate:     q.StartDate,
		EndDate:       q.EndDate,
		CountryCode:   q.CountryCode,
		PlatformName:  q.PlatformName,
		Source:        q.Source,
		Status:        q.Status,
		GatewayClient: q.GatewayClient,
		Page:          q.Page,
		PageSize:      q.PageSize,
	})
	if err != nil {
		return h.fail(c, err)
	}

	p := res.Publications
	body := PublicationsBody{
		TotalPublications: p.Total,
		TotalPublished:    p.Published,
		TotalFailed:       p.Failed,
		Pagination:        *toPagination(&res.Pagination),
		Data:              make([]PublicationResponse, 0, len(p.Records)),
	}
	for _, r := range p.Records {
		pr := PublicationResponse{
			ID:            r.ID,
			CountryCode:   r.CountryCode,
			PlatformName:  r.PlatformName,
			Source:        r.Source,
			Status:        r.Status,
			GatewayClient: r.GatewayClient,
		}
		if !r.Timestamp.IsZero() {
			pr.DateTime = r.Timestamp.Format(time.RFC3339)
		}
		body.Data = append(body.Data, pr)
	}

	return c.Status(http.StatusOK).JSON(PublicationsResponse{Publications: body})
}

// fail translates an error into the HTTP response.
func (h *MetricsHandler) fail(c *fiber.Ctx, err error) error {
	var schemaErr *schemaError
	var upErr *domain.UpstreamError

	switch {
	case errors.As(err, &schemaErr):
		return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{Error: schemaErr.Error()})

	case errors.Is(err, usecase.ErrInvalidDate),
		errors.Is(err, usecase.ErrInvalidDateRange),
		errors.Is(err, usecase.ErrInvalidCountryCode),
		errors.Is(err, usecase.ErrInvalidGranularity),
		errors.Is(err, usecase.ErrInvalidGroupBy),
		errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrTopWithPagination),
		errors.Is(err, usecase.ErrInvalidTop),
		errors.Is(err, usecase.ErrInvalidPagination):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})

	case errors.As(err, &upErr) && upErr.Kind == domain.UpstreamHTTPStatus:
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(upErr.StatusCode).Send(upErr.Body)

	default:
		h.log.Error().
			Err(err).
			Str("path", c.Path()).
			Str("request_id", requestid.From(c.UserContext())).
			Msg("request failed")
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{Error: genericErrorMessage})
	}
}

func (q MetricQuery) toInput() usecase.GetMetricsInput {
	return usecase.GetMetricsInput{
		StartDate:   q.StartDate,
		EndDate:     q.EndDate,
		CountryCode: q.CountryCode,
		Granularity: q.Granularity,
		GroupBy:     q.GroupBy,
		Type:        q.Type,
		Origin:      q.Origin,
		Top:         q.Top,
		Page:        q.Page,
		PageSize:    q.PageSize,
	}
}

func toPagination(p *domain.PaginationInfo) *PaginationResponse {
	if p == nil {
		return nil
	}
	return &PaginationResponse{
		Page:         p.Page,
		PageSize:     p.PageSize,
		TotalPages:   p.TotalPages,
		TotalRecords: p.TotalRecords,
	}
}

func toCounts(buckets []domain.CountMetric) []CountResponse {
	out := make([]CountResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, CountResponse{Key: b.Key, Count: b.Count})
	}
	return out
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
