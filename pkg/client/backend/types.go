package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Answer types returned by POST /ask.
const (
	AnswerTypeError   = "error"
	AnswerTypeClarify = "clarify"
)

// AskRequest is the body of POST /ask.
type AskRequest struct {
	Query string `json:"query"`
}

// AskResponse is the body returned by POST /ask.
type AskResponse struct {
	Type    string          `json:"type"`
	Result  json.RawMessage `json:"result,omitempty"`
	Message string          `json:"message,omitempty"`
	Missing FieldList       `json:"missing,omitempty"`
	Hint    string          `json:"hint,omitempty"`
}

// Reply is the text shown to the user as the assistant message.
// String results are returned as-is and structured results are indented JSON.
func (r *AskResponse) Reply() string {
	if r.Type == AnswerTypeClarify {
		return r.clarification()
	}

	trimmed := bytes.TrimSpace(r.Result)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}

	var text string
	if err := json.Unmarshal(trimmed, &text); err == nil {
		return text
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, trimmed, "", "  "); err != nil {
		return string(trimmed)
	}

	return "```json\n" + indented.String() + "\n```"
}

func (r *AskResponse) clarification() string {
	var builder strings.Builder

	if r.Hint != "" {
		builder.WriteString(r.Hint)
	} else {
		builder.WriteString("I need a bit more information to do that.")
	}

	if len(r.Missing) > 0 {
		fmt.Fprintf(&builder, "\n\nMissing: %s", strings.Join(r.Missing, ", "))
	}

	return builder.String()
}

// FieldList decodes either a single string or a list of strings.
type FieldList []string

// UnmarshalJSON implements json.Unmarshaler.
func (f *FieldList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*f = nil

		return nil
	}

	var single string
	if err := json.Unmarshal(trimmed, &single); err == nil {
		if single == "" {
			*f = nil
		} else {
			*f = FieldList{single}
		}

		return nil
	}

	var many []string

	err := json.Unmarshal(trimmed, &many)
	if err != nil {
		return fmt.Errorf("decode missing fields: %w", err)
	}

	*f = many

	return nil
}

// Resources is the opaque JSON array returned by a resource listing endpoint.
type Resources []json.RawMessage

// TimeSeriesResponse is the body returned by GET /metrics/time-series.
type TimeSeriesResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message,omitempty"`
	Metrics []MetricPoint `json:"metrics"`
}

// MetricPoint is a single sample of a time series.
type MetricPoint struct {
	Timestamp int64   `json:"timestamp"`
	Instance  string  `json:"instance,omitempty"`
	Value     float64 `json:"value"`
}

// Time returns the sample time.
func (p MetricPoint) Time() time.Time {
	return time.Unix(p.Timestamp, 0)
}

// HistoryRecord is one stored question and answer from GET /history.
type HistoryRecord struct {
	Query     string `json:"query"`
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// UploadResponse is the body returned by POST /upload.
type UploadResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// HealthResponse is the body returned by GET /.
type HealthResponse struct {
	Message string `json:"message"`
}

const statusError = "error"
