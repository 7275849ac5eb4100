// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the trace identifier of every outbound request.
const TraceIDHeader = "X-Trace-ID"

// HTTPClient is a wrapper around resty.Client. It embeds *resty.Client to
// expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent client bound to baseURL. Every request
// gets a JSON Accept header and an X-Trace-ID: the one found in the request
// context, or a fresh UUID.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if req.Header.Get(TraceIDHeader) != "" {
			return nil
		}
		traceID, ok := GetTraceIDFromContext(req.Context())
		if !ok {
			traceID = NewTraceID()
		}
		req.SetHeader(TraceIDHeader, traceID)
		return nil
	})

	return &HTTPClient{Client: client}
}
