package adapters

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/motemen/go-loghttp"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"rosdep-sources/internal/ports"
	"rosdep-sources/internal/shared"
	"rosdep-sources/internal/types"
)

const defaultRosdepFetchTimeout = 15 * time.Second

var errRosdepDataNotMapping = errors.New("rosdep data is not a mapping")

// RosdepFetcherHTTPAdapter downloads rosdep YAML with a single GET per
// call. There are no retries.
type RosdepFetcherHTTPAdapter struct {
	Timeout time.Duration
	Client  *http.Client
}

func NewRosdepFetcherHTTPAdapter(timeoutSec int) RosdepFetcherHTTPAdapter {
	return RosdepFetcherHTTPAdapter{
		Timeout: normalizeRosdepFetchTimeout(timeoutSec),
		Client:  &http.Client{Transport: newLoggingTransport(http.DefaultTransport)},
	}
}

func (a RosdepFetcherHTTPAdapter) Download(ctx context.Context, url string) (types.RosdepData, error) {
	if a.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.Timeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, types.NewDownloadError(url, err)
	}
	client := a.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, types.NewDownloadError(url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, types.NewDownloadError(url, shared.HTTPStatusError(resp.StatusCode, url))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, types.NewDownloadError(url, err)
	}
	data, err := decodeRosdepData(body)
	if err != nil {
		return nil, types.NewDownloadError(url, err)
	}
	log.Ctx(ctx).Debug().Str("url", url).Int("keys", len(data)).Msg("rosdep data downloaded")
	return data, nil
}

// decodeRosdepData accepts a YAML document whose top level is a mapping.
// Empty documents and any other shape are rejected.
func decodeRosdepData(content []byte) (types.RosdepData, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return nil, errRosdepDataNotMapping
	}
	data := types.RosdepData{}
	if err := doc.Content[0].Decode(&data); err != nil {
		return nil, err
	}
	return data, nil
}

func newLoggingTransport(base http.RoundTripper) http.RoundTripper {
	return &loghttp.Transport{
		Transport: base,
		LogRequest: func(req *http.Request) {
			log.Ctx(req.Context()).Debug().
				Str("method", req.Method).
				Str("url", req.URL.String()).
				Msg("http request")
		},
		LogResponse: func(resp *http.Response) {
			log.Ctx(resp.Request.Context()).Debug().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL.String()).
				Int("status", resp.StatusCode).
				Msg("http response")
		},
	}
}

func normalizeRosdepFetchTimeout(value int) time.Duration {
	if value <= 0 {
		return defaultRosdepFetchTimeout
	}
	return time.Duration(value) * time.Second
}

var _ ports.RosdepFetcherPort = RosdepFetcherHTTPAdapter{}
