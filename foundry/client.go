package foundry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/oauth2"

	"github.com/uslanozan/agent-import/models"
)

const (
	DefaultAPIVersion = "v1"

	agentsPath            = "/assistants"
	headerClientRequestID = "x-ms-client-request-id"
)

// Client talks to the agents API of one Foundry project endpoint, e.g.
// https://<resource>.services.ai.azure.com/api/projects/<project>.
type Client struct {
	http       *resty.Client
	apiVersion string
	log        zerolog.Logger
	record     *gojsonschema.Schema
}

type Option func(*Client)

func WithAPIVersion(version string) Option {
	return func(c *Client) {
		if version != "" {
			c.apiVersion = version
		}
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
		c.http.SetLogger(restyLogger{log})
	}
}

// NewClient builds a client whose requests carry a bearer token from tokens.
// The endpoint is used as given; a malformed one surfaces on the first call.
func NewClient(ctx context.Context, endpoint string, tokens oauth2.TokenSource, opts ...Option) (*Client, error) {
	record, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(models.RecordSchema()))
	if err != nil {
		return nil, fmt.Errorf("compile agent record schema: %w", err)
	}

	c := &Client{
		http: resty.NewWithClient(oauth2.NewClient(ctx, tokens)).
			SetBaseURL(strings.TrimRight(endpoint, "/")).
			SetHeader("Accept", "application/json").
			SetLogger(restyLogger{zerolog.Nop()}),
		apiVersion: DefaultAPIVersion,
		log:        zerolog.Nop(),
		record:     record,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// CreateAgent posts body once. There is no retry: agent creation is additive,
// so a replayed request could register the agent twice.
func (c *Client) CreateAgent(ctx context.Context, body models.AgentDefinition) (models.ImportResult, error) {
	requestID := uuid.NewString()
	c.log.Debug().
		Str("request_id", requestID).
		Str("api_version", c.apiVersion).
		Msg("POST " + agentsPath)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader(headerClientRequestID, requestID).
		SetQueryParam("api-version", c.apiVersion).
		SetBody(body).
		Post(agentsPath)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", agentsPath, err)
	}

	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, newAPIError(resp, requestID)
	}

	dec := json.NewDecoder(bytes.NewReader(resp.Body()))
	dec.UseNumber()
	var result models.ImportResult
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("decode create agent response: %w", err)
	}
	if result == nil {
		return nil, fmt.Errorf("decode create agent response: empty body (request id %s)", requestID)
	}

	c.checkRecord(result, requestID)
	return result, nil
}

// checkRecord only warns: the response is printed as-is either way.
func (c *Client) checkRecord(result models.ImportResult, requestID string) {
	res, err := c.record.Validate(gojsonschema.NewGoLoader(result))
	if err != nil {
		c.log.Warn().Err(err).Str("request_id", requestID).Msg("agent record validation failed")
		return
	}
	for _, desc := range res.Errors() {
		c.log.Warn().
			Str("request_id", requestID).
			Str("field", desc.Field()).
			Msg("unexpected agent record: " + desc.Description())
	}
}

type restyLogger struct {
	log zerolog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) { l.log.Error().Msgf(format, v...) }
func (l restyLogger) Warnf(format string, v ...any)  { l.log.Warn().Msgf(format, v...) }
func (l restyLogger) Debugf(format string, v ...any) { l.log.Debug().Msgf(format, v...) }
