package fiber

// Query DTOs. Dates are only checked for presence here; their format is
// validated by the use cases so a bad date is a 400, not a 422.

type SummaryQuery struct {
	StartDate   string `query:"start_date" validate:"required"`
	EndDate     string `query:"end_date" validate:"required"`
	CountryCode string `query:"country_code"`
	Granularity string `query:"granularity" validate:"omitempty,oneof=day month"`
	GroupBy     string `query:"group_by" validate:"omitempty,oneof=country date"`
	Type        string `query:"type"`
	Origin      string `query:"origin"`
}

type MetricQuery struct {
	StartDate   string `query:"start_date" validate:"required"`
	EndDate     string `query:"end_date" validate:"required"`
	CountryCode string `query:"country_code"`
	Granularity string `query:"granularity" validate:"omitempty,oneof=day month"`
	GroupBy     string `query:"group_by" validate:"omitempty,oneof=country date"`
	Type        string `query:"type"`
	Origin      string `query:"origin"`

	Top      *int `query:"top" validate:"omitempty,min=1"`
	Page     *int `query:"page" validate:"omitempty,min=1"`
	PageSize *int `query:"page_size" validate:"omitempty,min=10,max=100"`
}

type PublicationsQuery struct {
	StartDate     string `query:"start_date" validate:"required"`
	EndDate       string `query:"end_date" validate:"required"`
	CountryCode   string `query:"country_code"`
	PlatformName  string `query:"platform_name"`
	Source        string `query:"source"`
	Status        string `query:"status" validate:"omitempty,oneof=published failed"`
	GatewayClient string `query:"gateway_client"`

	Page     *int `query:"page" validate:"omitempty,min=1"`
	PageSize *int `query:"page_size" validate:"omitempty,min=10,max=100"`
}

type PaginationResponse struct {
	Page         int `json:"page" example:"1"`
	PageSize     int `json:"page_size" example:"10"`
	TotalPages   int `json:"total_pages" example:"3"`
	TotalRecords int `json:"total_records" example:"27"`
}

type CountResponse struct {
	Key   string `json:"key" example:"2024-01-02"`
	Count int64  `json:"count" example:"12"`
}

type CountryStatsResponse struct {
	Country       string `json:"country" example:"CM"`
	SignupUsers   int64  `json:"signup_users" example:"12"`
	RetainedUsers int64  `json:"retained_users" example:"9"`
}

type SummaryBucketResponse struct {
	Key           string                 `json:"key" example:"2024-01-02"`
	SignupUsers   int64                  `json:"signup_users" example:"40"`
	RetainedUsers int64                  `json:"retained_users" example:"31"`
	Stats         []CountryStatsResponse `json:"stats,omitempty"`
}

type PublicationTotalsResponse struct {
	TotalPublications int64 `json:"total_publications"`
	TotalPublished    int64 `json:"total_published"`
	TotalFailed       int64 `json:"total_failed"`
}

type SummaryBody struct {
	TotalSignupUsers             int64                      `json:"total_signup_users"`
	TotalRetainedUsers           int64                      `json:"total_retained_users"`
	TotalRetainedUsersWithTokens int64                      `json:"total_retained_users_with_tokens"`
	TotalSignupCountries         int64                      `json:"total_signup_countries"`
	TotalRetainedCountries       int64                      `json:"total_retained_countries"`
	TotalSignupsFromBridges      int64                      `json:"total_signups_from_bridges"`
	SignupCountries              []string                   `json:"signup_countries"`
	RetainedCountries            []string                   `json:"retained_countries"`
	GroupBy                      string                     `json:"group_by"`
	Data                         []SummaryBucketResponse    `json:"data"`
	Publications                 *PublicationTotalsResponse `json:"publications,omitempty"`
}

type SummaryResponse struct {
	Summary SummaryBody `json:"summary"`
}

type SignupBody struct {
	TotalSignupUsers        int64               `json:"total_signup_users"`
	TotalCountries          int64               `json:"total_countries"`
	TotalSignupsFromBridges int64               `json:"total_signups_from_bridges"`
	Countries               []string            `json:"countries"`
	GroupBy                 string              `json:"group_by"`
	Pagination              *PaginationResponse `json:"pagination,omitempty"`
	Data                    []CountResponse     `json:"data"`
}

type SignupResponse struct {
	Signup SignupBody `json:"signup"`
}

type RetainedBody struct {
	TotalRetainedUsers           int64               `json:"total_retained_users"`
	TotalRetainedUsersWithTokens int64               `json:"total_retained_users_with_tokens"`
	TotalCountries               int64               `json:"total_countries"`
	Countries                    []string            `json:"countries"`
	GroupBy                      string              `json:"group_by"`
	Pagination                   *PaginationResponse `json:"pagination,omitempty"`
	Data                         []CountResponse     `json:"data"`
}

type RetainedResponse struct {
	Retained RetainedBody `json:"retained"`
}

type PublicationResponse struct {
	ID            int64  `json:"id"`
	CountryCode   string `json:"country_code"`
	PlatformName  string `json:"platform_name"`
	Source        string `json:"source"`
	Status        string `json:"status"`
	GatewayClient string `json:"gateway_client"`
	DateTime      string `json:"date_time" example:"2024-01-02T10:00:00Z"`
}

type PublicationsBody struct {
	TotalPublications int64                 `json:"total_publications"`
	TotalPublished    int64                 `json:"total_published"`
	TotalFailed       int64                 `json:"total_failed"`
	Pagination        PaginationResponse    `json:"pagination"`
	Data              []PublicationResponse `json:"data"`
}

type PublicationsResponse struct {
	Publications PublicationsBody `json:"publications"`
}

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"start_date: invalid date, expected YYYY-MM-DD"`
}
