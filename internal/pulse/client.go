package pulse

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"
)

// DefaultBaseURL is the production Pulse API endpoint.
const DefaultBaseURL = "https://api.pulse.neat.no"

// requestTimeout bounds every API call.
const requestTimeout = 30 * time.Second

// Client talks to the Pulse API for a single organization.
type Client struct {
	http   *resty.Client
	orgID  string
	logger hclog.Logger
}

// NewClient creates a Pulse API client. baseURL may be empty, in which
// case DefaultBaseURL is used.
func NewClient(baseURL, orgID, token string, logger hclog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	http := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:   http,
		orgID:  orgID,
		logger: logger.Named("pulse"),
	}
}

// BaseURL returns the configured API endpoint.
func (c *Client) BaseURL() string {
	return c.http.BaseURL
}

// ListRegions returns all regions in the organization.
func (c *Client) ListRegions(ctx context.Context) ([]Region, error) {
	body, err := c.get(ctx, c.orgPath("regions"))
	if err != nil {
		return nil, err
	}

	items, err := decodeList(body, "regions")
	if err != nil {
		return nil, err
	}

	regions := make([]Region, 0, len(items))
	for _, item := range items {
		var r Region
		if err := json.Unmarshal(item, &r); err != nil {
			c.logger.Warn("skipping malformed region record", "error", err)
			continue
		}
		regions = append(regions, r)
	}
	return regions, nil
}

// CreateRegion creates a region with the given name.
func (c *Client) CreateRegion(ctx context.Context, name string) (Region, error) {
	if strings.TrimSpace(name) == "" {
		return Region{}, fmt.Errorf("%w: region name cannot be empty", ErrInvalidInput)
	}

	body, err := c.post(ctx, c.orgPath("regions"), map[string]any{"name": name})
	if err != nil {
		return Region{}, err
	}

	var r Region
	if err := json.Unmarshal(body, &r); err != nil {
		return Region{}, fmt.Errorf("parse create region response: %w", err)
	}
	if r.Name == "" {
		r.Name = name
	}
	return r, nil
}

// ListLocations returns all locations in the organization with their
// region reference resolved for display.
func (c *Client) ListLocations(ctx context.Context) ([]Location, error) {
	body, err := c.get(ctx, c.orgPath("locations"))
	if err != nil {
		return nil, err
	}

	items, err := decodeList(body, "locations")
	if err != nil {
		return nil, err
	}

	locations := make([]Location, 0, len(items))
	for _, item := range items {
		var loc Location
		if err := json.Unmarshal(item, &loc); err != nil {
			c.logger.Warn("skipping malformed location record", "error", err)
			continue
		}
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(item, &raw); err == nil {
			loc.Region = resolveRegion(raw)
		}
		locations = append(locations, loc)
	}
	return locations, nil
}

// CreateLocation creates a location under the given region.
func (c *Client) CreateLocation(ctx context.Context, regionID int, name string) (Location, error) {
	if strings.TrimSpace(name) == "" {
		return Location{}, fmt.Errorf("%w: location name cannot be empty", ErrInvalidInput)
	}

	payload := map[string]any{
		"name":     name,
		"regionId": regionID,
	}
	body, err := c.post(ctx, c.orgPath("locations"), payload)
	if err != nil {
		return Location{}, err
	}

	var loc Location
	if err := json.Unmarshal(body, &loc); err != nil {
		return Location{}, fmt.Errorf("parse create location response: %w", err)
	}
	if loc.Name == "" {
		loc.Name = name
	}
	return loc, nil
}

// CreateRoom creates a room in the given location. A single attempt,
// no retry; the bulk pipeline drives retries.
func (c *Client) CreateRoom(ctx context.Context, locationID int, name string) (RoomCreated, error) {
	payload := map[string]any{
		"locationId": locationID,
		"name":       name,
	}
	body, err := c.post(ctx, c.orgPath("rooms"), payload)
	if err != nil {
		return RoomCreated{}, err
	}

	var room RoomCreated
	if err := json.Unmarshal(body, &room); err != nil {
		return RoomCreated{}, fmt.Errorf("parse create room response: %w", err)
	}
	return room, nil
}

func (c *Client) orgPath(resource string) string {
	return "/v1/orgs/" + c.orgID + "/" + resource
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).Get(path)
	return c.handle(path, resp, err)
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	resp, err := c.http.R().SetContext(ctx).SetBody(payload).Post(path)
	return c.handle(path, resp, err)
}

// handle maps a resty response to the error taxonomy.
func (c *Client) handle(path string, resp *resty.Response, err error) ([]byte, error) {
	if err != nil {
		c.logger.Debug("request failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}

	status := resp.StatusCode()
	body := resp.Body()
	c.logger.Debug("request complete", "path", path, "status", status)

	if status < 400 {
		return body, nil
	}
	if status == 429 {
		return nil, ErrRateLimited
	}
	return nil, &APIError{
		StatusCode: status,
		Body:       strings.TrimSpace(string(body)),
		Hint:       hintFor(status, body),
	}
}

// hintFor produces a best-effort suggestion for common error statuses.
func hintFor(status int, body []byte) string {
	switch status {
	case 401:
		return "check your bearer token"
	case 404:
		return "organization not found, check your organization ID"
	case 400:
		var errResp struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil {
			if strings.Contains(strings.ToLower(errResp.Message), "preconditions not met") {
				return "the referenced location ID may not exist, list locations to verify"
			}
		}
	}
	return ""
}
