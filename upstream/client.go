package upstream

/**
 * client.go - router graph pages client
 */

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ifgraph/ifgraph/config"
	"github.com/ifgraph/ifgraph/graph"
	"github.com/ifgraph/ifgraph/logging"
	"github.com/ifgraph/ifgraph/metrics"
)

/* body characters kept in FetchError */
const excerptLength = 200

/**
 * Request kinds, used as metric labels
 */
const (
	KindText   = "text"
	KindBinary = "binary"
)

/**
 * ErrUnavailable is wrapped by every error caused by the upstream device,
 * whether transport failure or non-success status
 */
var ErrUnavailable = errors.New("upstream unavailable")

/**
 * FetchError is returned when the device answers with non-2xx status
 */
type FetchError struct {
	URL        string
	StatusCode int
	Status     string
	Excerpt    string
}

func (e *FetchError) Error() string {
	msg := fmt.Sprintf("upstream fetch failed %s :: %s", e.Status, e.URL)
	if e.Excerpt != "" {
		msg += "\n" + e.Excerpt
	}
	return msg
}

func (e *FetchError) Unwrap() error {
	return ErrUnavailable
}

/**
 * Client fetches graph pages and images of the device.
 * Single attempt per call, no retries.
 */
type Client struct {
	cfg        config.UpstreamConfig
	httpClient *http.Client
}

/**
 * NewClient creates client for the device described by cfg
 */
func NewClient(cfg config.UpstreamConfig) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
	}
}

/**
 * PageURL is the url of the interface graph page
 */
func (c *Client) PageURL(iface string) string {
	return c.ifaceURL(iface) + "/"
}

/**
 * ImageURL is the url of the interface graph image for window w
 */
func (c *Client) ImageURL(iface string, w graph.Window) string {
	return c.ifaceURL(iface) + "/" + w.String() + ".gif"
}

func (c *Client) ifaceURL(iface string) string {
	path := strings.Trim(c.cfg.GraphsPath, "/")
	if path != "" {
		path = "/" + path
	}
	return strings.TrimRight(c.cfg.Host, "/") + path + "/" + url.PathEscape(iface)
}

/**
 * FetchText returns the html graph page of iface
 */
func (c *Client) FetchText(ctx context.Context, iface string) (string, error) {
	body, _, err := c.get(ctx, KindText, c.PageURL(iface))
	if err != nil {
		return "", err
	}
	return string(body), nil
}

/**
 * FetchBinary returns graph image of iface for window w along with the
 * content type reported by the device (empty if none)
 */
func (c *Client) FetchBinary(ctx context.Context, iface string, w graph.Window) ([]byte, string, error) {
	body, header, err := c.get(ctx, KindBinary, c.ImageURL(iface, w))
	if err != nil {
		return nil, "", err
	}
	return body, header.Get("Content-Type"), nil
}

func (c *Client) get(ctx context.Context, kind string, target string) ([]byte, http.Header, error) {

	log := logging.For("upstream")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: creating request: %w", ErrUnavailable, err)
	}

	if c.cfg.Username != "" && c.cfg.Password != "" {
		req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	}

	started := time.Now()

	res, err := c.httpClient.Do(req)
	if err != nil {
		metrics.ReportUpstreamRequest(kind, 0, time.Since(started))
		log.Debug("Request failed ", target, ": ", err)
		return nil, nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)

	metrics.ReportUpstreamRequest(kind, res.StatusCode, time.Since(started))
	log.Debugf("GET %s: %s in %v", target, res.Status, time.Since(started))

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, nil, &FetchError{
			URL:        target,
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Excerpt:    excerpt(body),
		}
	}

	if err != nil {
		return nil, nil, fmt.Errorf("%w: reading %s: %w", ErrUnavailable, target, err)
	}

	return body, res.Header, nil
}

func excerpt(body []byte) string {
	s := string(body)
	if utf8.RuneCountInString(s) <= excerptLength {
		return s
	}
	return string([]rune(s)[:excerptLength])
}
