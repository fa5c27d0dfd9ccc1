package httpx_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/require"

	"coinvalue/internal/httpx"
)

var _ aws.HTTPClient = httpx.New(time.Second)

func TestNew_Tuning(t *testing.T) {
	t.Parallel()

	c := httpx.New(5 * time.Second)

	require.Equal(t, 5*time.Second, c.GetTimeout())
	require.Equal(t, 3*time.Second, c.GetDialer().Timeout)
	tr := c.GetTransport()
	require.Equal(t, 100, tr.MaxIdleConnsPerHost)
	require.Equal(t, 10*time.Second, tr.ResponseHeaderTimeout)
	require.True(t, tr.ForceAttemptHTTP2)
}

func TestAPIOptions_TagRequests(t *testing.T) {
	t.Parallel()

	// Arrange: a bucket endpoint recording the headers it saw.
	var got http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		w.Header().Set("Content-Type", "application/xml")
		_, _ = w.Write([]byte(`<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/"><Name>coin-prices</Name><IsTruncated>false</IsTruncated></ListBucketResult>`))
	}))
	defer srv.Close()

	client := s3.New(s3.Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String(srv.URL),
		UsePathStyle: true,
		Credentials:  credentials.NewStaticCredentialsProvider("test", "test", ""),
		HTTPClient:   httpx.New(5 * time.Second),
		APIOptions:   httpx.APIOptions(map[string]string{"X-Tenant": "coins"}),
	})

	// Act
	_, err := client.ListObjectsV2(t.Context(), &s3.ListObjectsV2Input{Bucket: aws.String("coin-prices")})

	// Assert
	require.NoError(t, err)
	require.Contains(t, got.Get("User-Agent"), httpx.Product+"/"+httpx.Version)
	require.Equal(t, "coins", got.Get("X-Tenant"))
}
