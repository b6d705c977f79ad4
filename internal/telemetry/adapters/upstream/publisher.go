package upstream

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"telemetry-gateway/internal/telemetry/core/domain"
)

const (
	ServicePublications = "publications"

	publicationsPath = "/v1/metrics/publications"
)

// PublisherClient reads publication records from the publisher service.
type PublisherClient struct {
	c *client
}

func NewPublisherClient(opts Options) (*PublisherClient, error) {
	c, err := newClient(opts)
	if err != nil {
		return nil, err
	}
	return &PublisherClient{c: c}, nil
}

func (p *PublisherClient) FetchPublications(ctx context.Context, q domain.PublicationsQuery) (*domain.PublicationsResult, error) {
	var out *domain.PublicationsResult
	err := p.c.get(ctx, ServicePublications, publicationsPath, publicationsParams(q), func(body []byte) error {
		var payload publicationsPayload
		if err := decodeJSON(body, &payload); err != nil {
			return err
		}
		if payload.TotalPublications == nil {
			return errors.New("missing total_publications")
		}

		records := make([]domain.PublicationRecord, 0, len(payload.Data))
		for _, row := range payload.Data {
			ts, ok := parseTimestamp(row.DateTime)
			if !ok {
				return fmt.Errorf("publication %d: bad date_time %q", row.ID, row.DateTime)
			}
			records = append(records, domain.PublicationRecord{
				ID:            row.ID,
				CountryCode:   row.CountryCode,
				PlatformName:  row.PlatformName,
				Source:        row.Source,
				Status:        row.Status,
				GatewayClient: row.GatewayClient,
				Timestamp:     ts,
			})
		}

		out = &domain.PublicationsResult{
			Total:     *payload.TotalPublications,
			Published: payload.TotalPublished,
			Failed:    payload.TotalFailed,
			Records:   records,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func publicationsParams(q domain.PublicationsQuery) url.Values {
	v := url.Values{}
	v.Set("start_date", q.StartDate)
	v.Set("end_date", q.EndDate)
	setIfNotEmpty(v, "country_code", q.CountryCode)
	setIfNotEmpty(v, "platform_name", q.PlatformName)
	setIfNotEmpty(v, "source", q.Source)
	setIfNotEmpty(v, "status", q.Status)
	setIfNotEmpty(v, "gateway_client", q.GatewayClient)
	return v
}
