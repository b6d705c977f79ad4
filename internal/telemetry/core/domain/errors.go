package domain

import (
	"fmt"
)

type UpstreamErrorKind int

const (
	UpstreamTransport UpstreamErrorKind = iota
	UpstreamTimeout
	UpstreamHTTPStatus
	UpstreamDecode
)

func (k UpstreamErrorKind) String() string {
	switch k {
	case UpstreamTimeout:
		return "timeout"
	case UpstreamHTTPStatus:
		return "http_status"
	case UpstreamDecode:
		return "decode"
	default:
		return "transport"
	}
}

// UpstreamError describes a failed call to an upstream metrics service.
// For UpstreamHTTPStatus, StatusCode and Body hold the upstream response verbatim.
type UpstreamError struct {
	Service    string
	Kind       UpstreamErrorKind
	StatusCode int
	Body       []byte
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.Kind == UpstreamHTTPStatus {
		return fmt.Sprintf("upstream %s: status %d", e.Service, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("upstream %s: %s: %v", e.Service, e.Kind, e.Err)
	}
	return fmt.Sprintf("upstream %s: %s", e.Service, e.Kind)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
