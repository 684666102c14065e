// Package api speaks the json-server persistence contract: conventional CRUD
// over /activities, /goals, /users and /nutrition. Responses are parsed into
// typed records and never handed to business logic raw.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/DnvLikhitha/FitFlex/internal/model"
)

const defaultBaseURL = "http://localhost:3001"

// ErrUnavailable marks transport-level failures (backend down, timeout).
// Callers fall back to the offline cache on it.
var ErrUnavailable = errors.New("persistence backend unavailable")

var ErrNotFound = errors.New("record not found")

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func (c *Client) base() string {
	base := strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	if base == "" {
		base = defaultBaseURL
	}
	return base
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 12 * time.Second}
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	u := c.base() + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s failed with status %d", method, path, resp.StatusCode)
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// Activities

func (c *Client) ListActivities(ctx context.Context, userID, date string) ([]model.Activity, error) {
	q := url.Values{}
	if strings.TrimSpace(userID) != "" {
		q.Set("userId", userID)
	}
	if strings.TrimSpace(date) != "" {
		q.Set("date", date)
	}
	var wire []wireActivity
	if err := c.do(ctx, http.MethodGet, "/activities", q, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]model.Activity, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toModel())
	}
	return out, nil
}

func (c *Client) CreateActivity(ctx context.Context, a model.Activity) (model.Activity, error) {
	var created wireActivity
	if err := c.do(ctx, http.MethodPost, "/activities", nil, newWireActivity(a), &created); err != nil {
		return model.Activity{}, err
	}
	return created.toModel(), nil
}

func (c *Client) UpdateActivity(ctx context.Context, a model.Activity) (model.Activity, error) {
	var updated wireActivity
	if err := c.do(ctx, http.MethodPut, "/activities/"+url.PathEscape(a.ID), nil, newWireActivity(a), &updated); err != nil {
		return model.Activity{}, err
	}
	return updated.toModel(), nil
}

func (c *Client) DeleteActivity(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/activities/"+url.PathEscape(id), nil, nil, nil)
}

// Goals

func (c *Client) ListGoals(ctx context.Context, userID string) ([]model.Goal, error) {
	q := url.Values{}
	if strings.TrimSpace(userID) != "" {
		q.Set("userId", userID)
	}
	var wire []wireGoal
	if err := c.do(ctx, http.MethodGet, "/goals", q, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]model.Goal, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toModel())
	}
	return out, nil
}

func (c *Client) CreateGoal(ctx context.Context, g model.Goal) (model.Goal, error) {
	var created wireGoal
	if err := c.do(ctx, http.MethodPost, "/goals", nil, newWireGoal(g), &created); err != nil {
		return model.Goal{}, err
	}
	return created.toModel(), nil
}

func (c *Client) UpdateGoal(ctx context.Context, g model.Goal) (model.Goal, error) {
	var updated wireGoal
	if err := c.do(ctx, http.MethodPut, "/goals/"+url.PathEscape(g.ID), nil, newWireGoal(g), &updated); err != nil {
		return model.Goal{}, err
	}
	return updated.toModel(), nil
}

func (c *Client) DeleteGoal(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/goals/"+url.PathEscape(id), nil, nil, nil)
}

// Users

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var wire []wireUser
	if err := c.do(ctx, http.MethodGet, "/users", nil, nil, &wire); err != nil {
		return nil, err
	}
	out := make([]model.User, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.toModel())
	}
	return out, nil
}

func (c *Client) GetUser(ctx context.Context, id string) (model.User, error) {
	var w wireUser
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(id), nil, nil, &w); err != nil {
		return model.User{}, err
	}
	return w.toModel(), nil
}

func (c *Client) CreateUser(ctx context.Context, u model.User) (model.User, error) {
	var created wireUser
	if err := c.do(ctx, http.MethodPost, "/users", nil, newWireUser(u), &created); err != nil {
		return model.User{}, err
	}
	return created.toModel(), nil
}

func (c *Client) UpdateUser(ctx context.Context, u model.User) (model.User, error) {
	var updated wireUser
	if err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(u.ID), nil, newWireUser(u), &updated); err != nil {
		return model.User{}, err
	}
	return updated.toModel(), nil
}

// Nutrition

// GetIntakeDay returns nil when no intake has been recorded for the date.
func (c *Client) GetIntakeDay(ctx context.Context, userID, date string) (*model.IntakeDay, error) {
	q := url.Values{}
	q.Set("userId", userID)
	q.Set("date", date)
	var wire []wireIntakeDay
	if err := c.do(ctx, http.MethodGet, "/nutrition", q, nil, &wire); err != nil {
		return nil, err
	}
	if len(wire) == 0 {
		return nil, nil
	}
	day := wire[0].toModel()
	return &day, nil
}

func (c *Client) CreateIntakeDay(ctx context.Context, d model.IntakeDay) (model.IntakeDay, error) {
	var created wireIntakeDay
	if err := c.do(ctx, http.MethodPost, "/nutrition", nil, newWireIntakeDay(d), &created); err != nil {
		return model.IntakeDay{}, err
	}
	return created.toModel(), nil
}

func (c *Client) UpdateIntakeDay(ctx context.Context, d model.IntakeDay) (model.IntakeDay, error) {
	var updated wireIntakeDay
	if err := c.do(ctx, http.MethodPut, "/nutrition/"+url.PathEscape(d.ID), nil, newWireIntakeDay(d), &updated); err != nil {
		return model.IntakeDay{}, err
	}
	return updated.toModel(), nil
}

// idString tolerates both id shapes the backend produces: json-server assigns
// numbers, records synced from the offline cache carry uuid strings.
func idString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatInt(int64(t), 10)
	case json.Number:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}
