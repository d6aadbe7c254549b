package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
)

// Resource listing paths.
const (
	PathPods        = "/pods"
	PathDeployments = "/deployments"
	PathServices    = "/services"
	PathConfigMaps  = "/configmaps"
	PathNamespaces  = "/namespaces"
	PathNodes       = "/nodes"
)

const (
	pathAsk        = "/ask"
	pathTimeSeries = "/metrics/time-series"
	pathHistory    = "/history"
	pathUpload     = "/upload"
	pathHealth     = "/"

	uploadField = "file"
)

// Ask sends a natural-language query and returns the assistant reply.
func (c *Client) Ask(ctx context.Context, query string) (string, error) {
	resp, err := c.AskRaw(ctx, query)
	if err != nil {
		return "", err
	}

	return resp.Reply(), nil
}

// AskRaw sends a query and returns the decoded response. An error answer is returned as ErrBackendReported.
func (c *Client) AskRaw(ctx context.Context, query string) (*AskResponse, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}

	var resp AskResponse

	err := c.postJSON(ctx, pathAsk, AskRequest{Query: query}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Type == AnswerTypeError {
		return nil, reported(resp.Message)
	}

	return &resp, nil
}

// Pods lists pods across all namespaces.
func (c *Client) Pods(ctx context.Context) (Resources, error) {
	return c.list(ctx, PathPods)
}

// Deployments lists deployments across all namespaces.
func (c *Client) Deployments(ctx context.Context) (Resources, error) {
	return c.list(ctx, PathDeployments)
}

// Services lists services across all namespaces.
func (c *Client) Services(ctx context.Context) (Resources, error) {
	return c.list(ctx, PathServices)
}

// ConfigMaps lists config maps across all namespaces.
func (c *Client) ConfigMaps(ctx context.Context) (Resources, error) {
	return c.list(ctx, PathConfigMaps)
}

// Namespaces lists namespaces.
func (c *Client) Namespaces(ctx context.Context) (Resources, error) {
	return c.list(ctx, PathNamespaces)
}

// Nodes lists nodes.
func (c *Client) Nodes(ctx context.Context) (Resources, error) {
	return c.list(ctx, PathNodes)
}

func (c *Client) list(ctx context.Context, path string) (Resources, error) {
	var items Resources

	err := c.getJSON(ctx, path, nil, &items)
	if err != nil {
		return nil, err
	}

	if items == nil {
		items = Resources{}
	}

	return items, nil
}

// TimeSeries fetches the time series for a metric type such as cpu or net_rx.
func (c *Client) TimeSeries(ctx context.Context, metricType string) ([]MetricPoint, error) {
	var resp TimeSeriesResponse

	err := c.getJSON(ctx, pathTimeSeries, url.Values{"metric_type": {metricType}}, &resp)
	if err != nil {
		return nil, err
	}

	if resp.Status == statusError {
		return nil, reported(resp.Message)
	}

	return resp.Metrics, nil
}

// History returns the stored conversation, newest first.
func (c *Client) History(ctx context.Context) ([]HistoryRecord, error) {
	var records []HistoryRecord

	err := c.getJSON(ctx, pathHistory, nil, &records)
	if err != nil {
		return nil, err
	}

	return records, nil
}

// Upload sends a manifest to be applied to the cluster.
func (c *Client) Upload(ctx context.Context, filename string, manifest io.Reader) (*UploadResponse, error) {
	var body bytes.Buffer

	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile(uploadField, filepath.Base(filename))
	if err != nil {
		return nil, fmt.Errorf("create upload part: %w", err)
	}

	_, err = io.Copy(part, manifest)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	err = writer.Close()
	if err != nil {
		return nil, fmt.Errorf("finish upload body: %w", err)
	}

	var resp UploadResponse

	err = c.do(ctx, http.MethodPost, pathUpload, nil, &body, writer.FormDataContentType(), &resp)
	if err != nil {
		return nil, err
	}

	if resp.Status == statusError {
		return nil, reported(resp.Message)
	}

	return &resp, nil
}

// Health calls the backend root endpoint and returns its status message.
func (c *Client) Health(ctx context.Context) (string, error) {
	var resp HealthResponse

	err := c.getJSON(ctx, pathHealth, nil, &resp)
	if err != nil {
		return "", err
	}

	return resp.Message, nil
}
