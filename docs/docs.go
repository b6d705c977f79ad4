// Package docs holds the swagger document served at /docs. It follows the
// godoc annotations of the handlers in internal/telemetry/adapters/http/fiber;
// regenerate with `swag init -g cmd/api/main.go` after changing them.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
	"schemes": {{ marshal .Schemes }},
	"swagger": "2.0",
	"info": {
		"description": "{{escape .Description}}",
		"title": "{{.Title}}",
		"contact": {},
		"version": "{{.Version}}"
	},
	"host": "{{.Host}}",
	"basePath": "{{.BasePath}}",
	"paths": {
		"/v1/healthz": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Health"
				],
				"summary": "Liveness check",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/fiber.HealthResponse"
						}
					}
				}
			}
		},
		"/v1/publications": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Metrics"
				],
				"summary": "Publication records",
				"parameters": [
					{
						"type": "string",
						"description": "Start date (YYYY-MM-DD)",
						"name": "start_date",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "End date (YYYY-MM-DD)",
						"name": "end_date",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "ISO 3166-1 alpha-2 country code",
						"name": "country_code",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Platform name",
						"name": "platform_name",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Source",
						"name": "source",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Status: published | failed",
						"name": "status",
						"in": "query",
						"enum": [
							"published",
							"failed"
						]
					},
					{
						"type": "string",
						"description": "Gateway client",
						"name": "gateway_client",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page number",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size (10-100)",
						"name": "page_size",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/fiber.PublicationsResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/fiber.ErrorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/fiber.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/fiber.ErrorResponse"
						}
					}
				},
				"description": "Paginated publication records with published/failed totals"
			}
		},
		"/v1/retained": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Metrics"
				],
				"summary": "Retained user metrics",
				"parameters": [
					{
						"type": "string",
						"description": "Start date (YYYY-MM-DD)",
						"name": "start_date",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "End date (YYYY-MM-DD)",
						"name": "end_date",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "ISO 3166-1 alpha-2 country code",
						"name": "country_code",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Granularity: day | month",
						"name": "granularity",
						"in": "query",
						"enum": [
							"day",
							"month"
						]
					},
					{
						"type": "string",
						"description": "Group by: country | date",
						"name": "group_by",
						"in": "query",
						"enum": [
							"country",
							"date"
						]
					},
					{
						"type": "string",
						"description": "Metric type filter",
						"name": "type",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Origin filter",
						"name": "origin",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Return only the first N records",
						"name": "top",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page number",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size (10-100)",
						"name": "page_size",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/fiber.RetainedResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/fiber.ErrorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/fiber.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/fiber.ErrorResponse"
						}
					}
				},
				"description": "Retained user counts grouped by country or date, with top-N or pagination"
			}
		},
		"/v1/signup": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Metrics"
				],
				"summary": "Signup metrics",
				"parameters": [
					{
						"type": "string",
						"description": "Start date (YYYY-MM-DD)",
						"name": "start_date",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "End date (YYYY-MM-DD)",
						"name": "end_date",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "ISO 3166-1 alpha-2 country code",
						"name": "country_code",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Granularity: day | month",
						"name": "granularity",
						"in": "query",
						"enum": [
							"day",
							"month"
						]
					},
					{
						"type": "string",
						"description": "Group by: country | date",
						"name": "group_by",
						"in": "query",
						"enum": [
							"country",
							"date"
						]
					},
					{
						"type": "string",
						"description": "Metric type filter",
						"name": "type",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Origin filter",
						"name": "origin",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Return only the first N records",
						"name": "top",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page number",
						"name": "page",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size (10-100)",
						"name": "page_size",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/fiber.SignupResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/fiber.ErrorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/fiber.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/fiber.ErrorResponse"
						}
					}
				},
				"description": "Signup counts grouped by country or date, with top-N or pagination"
			}
		},
		"/v1/summary": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"Metrics"
				],
				"summary": "Combined signup and retained summary",
				"parameters": [
					{
						"type": "string",
						"description": "Start date (YYYY-MM-DD)",
						"name": "start_date",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "End date (YYYY-MM-DD)",
						"name": "end_date",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "ISO 3166-1 alpha-2 country code",
						"name": "country_code",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Granularity: day | month",
						"name": "granularity",
						"in": "query",
						"enum": [
							"day",
							"month"
						]
					},
					{
						"type": "string",
						"description": "Group by: country | date",
						"name": "group_by",
						"in": "query",
						"enum": [
							"country",
							"date"
						]
					},
					{
						"type": "string",
						"description": "Metric type filter",
						"name": "type",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Origin filter",
						"name": "origin",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/fiber.SummaryResponse"
						}
					},
					"400": {
						"description": "Bad Request",
						"schema": {
							"$ref": "#/definitions/fiber.ErrorResponse"
						}
					},
					"422": {
						"description": "Unprocessable Entity",
						"schema": {
							"$ref": "#/definitions/fiber.ErrorResponse"
						}
					},
					"500": {
						"description": "Internal Server Error",
						"schema": {
							"$ref": "#/definitions/fiber.ErrorResponse"
						}
					}
				},
				"description": "Queries signup, retained and publication metrics concurrently and merges them"
			}
		}
	},
	"definitions": {
		"fiber.CountResponse": {
			"type": "object",
			"properties": {
				"count": {
					"type": "integer",
					"example": 12
				},
				"key": {
					"type": "string",
					"example": "2024-01-02"
				}
			}
		},
		"fiber.CountryStatsResponse": {
			"type": "object",
			"properties": {
				"country": {
					"type": "string",
					"example": "CM"
				},
				"retained_users": {
					"type": "integer",
					"example": 9
				},
				"signup_users": {
					"type": "integer",
					"example": 12
				}
			}
		},
		"fiber.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string",
					"example": "start_date: invalid date, expected YYYY-MM-DD"
				}
			}
		},
		"fiber.HealthResponse": {
			"type": "object",
			"properties": {
				"status": {
					"type": "string",
					"example": "ok"
				}
			}
		},
		"fiber.PaginationResponse": {
			"type": "object",
			"properties": {
				"page": {
					"type": "integer",
					"example": 1
				},
				"page_size": {
					"type": "integer",
					"example": 10
				},
				"total_pages": {
					"type": "integer",
					"example": 3
				},
				"total_records": {
					"type": "integer",
					"example": 27
				}
			}
		},
		"fiber.PublicationResponse": {
			"type": "object",
			"properties": {
				"country_code": {
					"type": "string"
				},
				"date_time": {
					"type": "string",
					"example": "2024-01-02T10:00:00Z"
				},
				"gateway_client": {
					"type": "string"
				},
				"id": {
					"type": "integer"
				},
				"platform_name": {
					"type": "string"
				},
				"source": {
					"type": "string"
				},
				"status": {
					"type": "string"
				}
			}
		},
		"fiber.PublicationTotalsResponse": {
			"type": "object",
			"properties": {
				"total_failed": {
					"type": "integer"
				},
				"total_published": {
					"type": "integer"
				},
				"total_publications": {
					"type": "integer"
				}
			}
		},
		"fiber.PublicationsBody": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/fiber.PublicationResponse"
					}
				},
				"pagination": {
					"$ref": "#/definitions/fiber.PaginationResponse"
				},
				"total_failed": {
					"type": "integer"
				},
				"total_published": {
					"type": "integer"
				},
				"total_publications": {
					"type": "integer"
				}
			}
		},
		"fiber.PublicationsResponse": {
			"type": "object",
			"properties": {
				"publications": {
					"$ref": "#/definitions/fiber.PublicationsBody"
				}
			}
		},
		"fiber.RetainedBody": {
			"type": "object",
			"properties": {
				"countries": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/fiber.CountResponse"
					}
				},
				"group_by": {
					"type": "string"
				},
				"pagination": {
					"$ref": "#/definitions/fiber.PaginationResponse"
				},
				"total_countries": {
					"type": "integer"
				},
				"total_retained_users": {
					"type": "integer"
				},
				"total_retained_users_with_tokens": {
					"type": "integer"
				}
			}
		},
		"fiber.RetainedResponse": {
			"type": "object",
			"properties": {
				"retained": {
					"$ref": "#/definitions/fiber.RetainedBody"
				}
			}
		},
		"fiber.SignupBody": {
			"type": "object",
			"properties": {
				"countries": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/fiber.CountResponse"
					}
				},
				"group_by": {
					"type": "string"
				},
				"pagination": {
					"$ref": "#/definitions/fiber.PaginationResponse"
				},
				"total_countries": {
					"type": "integer"
				},
				"total_signup_users": {
					"type": "integer"
				},
				"total_signups_from_bridges": {
					"type": "integer"
				}
			}
		},
		"fiber.SignupResponse": {
			"type": "object",
			"properties": {
				"signup": {
					"$ref": "#/definitions/fiber.SignupBody"
				}
			}
		},
		"fiber.SummaryBody": {
			"type": "object",
			"properties": {
				"data": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/fiber.SummaryBucketResponse"
					}
				},
				"group_by": {
					"type": "string"
				},
				"publications": {
					"$ref": "#/definitions/fiber.PublicationTotalsResponse"
				},
				"retained_countries": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"signup_countries": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"total_retained_countries": {
					"type": "integer"
				},
				"total_retained_users": {
					"type": "integer"
				},
				"total_retained_users_with_tokens": {
					"type": "integer"
				},
				"total_signup_countries": {
					"type": "integer"
				},
				"total_signup_users": {
					"type": "integer"
				},
				"total_signups_from_bridges": {
					"type": "integer"
				}
			}
		},
		"fiber.SummaryBucketResponse": {
			"type": "object",
			"properties": {
				"key": {
					"type": "string",
					"example": "2024-01-02"
				},
				"retained_users": {
					"type": "integer",
					"example": 31
				},
				"signup_users": {
					"type": "integer",
					"example": 40
				},
				"stats": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/fiber.CountryStatsResponse"
					}
				}
			}
		},
		"fiber.SummaryResponse": {
			"type": "object",
			"properties": {
				"summary": {
					"$ref": "#/definitions/fiber.SummaryBody"
				}
			}
		}
	}
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "RelaySMS Telemetry Gateway API",
	Description:      "Aggregates signup, retained and publication metrics from the RelaySMS vault and publisher.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
