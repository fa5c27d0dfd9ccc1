// Package httpx provides the tuned HTTP client and request middleware used
// for object storage calls.
package httpx

import (
	"net"
	"net/http"
	"sort"
	"time"

	awsmiddleware "github.com/aws/aws-sdk-go-v2/aws/middleware"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go/middleware"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

// Product and Version tag the user agent of every storage request.
const (
	Product = "coinvalue"
	Version = "1.0"
)

// New returns an SDK client whose requests time out after timeout. It stays a
// BuildableClient so the SDK config loader can still add root CAs from
// AWS_CA_BUNDLE.
func New(timeout time.Duration) *awshttp.BuildableClient {
	return awshttp.NewBuildableClient().
		WithTimeout(timeout).
		WithDialerOptions(func(d *net.Dialer) {
			d.Timeout = 3 * time.Second
			d.KeepAlive = 30 * time.Second
		}).
		WithTransportOptions(func(tr *http.Transport) {
			tr.Proxy = http.ProxyFromEnvironment
			tr.MaxIdleConns = 200
			tr.MaxIdleConnsPerHost = 100
			tr.MaxConnsPerHost = 100
			tr.ForceAttemptHTTP2 = true
			tr.IdleConnTimeout = 90 * time.Second
			tr.TLSHandshakeTimeout = 3 * time.Second
			tr.ExpectContinueTimeout = 1 * time.Second
			tr.ResponseHeaderTimeout = 10 * time.Second
		})
}

// APIOptions returns stack mutators adding the product user agent and the
// given headers to every request. Headers are added in key order.
func APIOptions(headers map[string]string) []func(*middleware.Stack) error {
	opts := []func(*middleware.Stack) error{awsmiddleware.AddUserAgentKeyValue(Product, Version)}

	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		opts = append(opts, smithyhttp.SetHeaderValue(k, headers[k]))
	}
	return opts
}
