package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/salesops/sales-portal/internal/domain"
)

// Client is the API client for the sales portal
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetDashboardSummary retrieves the reporting summary for a period.
// date may be zero to let the server default to today.
func (c *Client) GetDashboardSummary(period string, date time.Time) (*domain.DashboardSummary, error) {
	params := url.Values{}
	if period != "" {
		params.Set("period", period)
	}
	if !date.IsZero() {
		params.Set("date", date.Format("2006-01-02"))
	}

	var summary domain.DashboardSummary
	if err := c.get("/api/v1/reporting/summary", params, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetUsers retrieves all users
func (c *Client) GetUsers() ([]*domain.User, error) {
	var response struct {
		Data []*domain.User `json:"data"`
	}
	if err := c.get("/api/v1/users", nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// CountEmployees retrieves the number of employee users
func (c *Client) CountEmployees() (int, error) {
	var response struct {
		Count int `json:"count"`
	}
	if err := c.get("/api/v1/users/count/employees", nil, &response); err != nil {
		return 0, err
	}
	return response.Count, nil
}

// GetLeads retrieves all leads
func (c *Client) GetLeads() ([]*domain.Lead, error) {
	var response struct {
		Data []*domain.Lead `json:"data"`
	}
	if err := c.get("/api/v1/leads", nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// GetLeadsByAssignee retrieves the leads assigned to an employee
func (c *Client) GetLeadsByAssignee(email string) ([]*domain.Lead, error) {
	path := fmt.Sprintf("/api/v1/leads/assigned/%s", url.PathEscape(email))

	var response struct {
		Data []*domain.Lead `json:"data"`
	}
	if err := c.get(path, nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// GetFollowUpLeads retrieves leads awaiting a follow-up
func (c *Client) GetFollowUpLeads() ([]*domain.Lead, error) {
	var response struct {
		Data []*domain.Lead `json:"data"`
	}
	if err := c.get("/api/v1/leads/follow-ups", nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// GetTasks retrieves all tasks
func (c *Client) GetTasks() ([]*domain.Task, error) {
	var response struct {
		Data []*domain.Task `json:"data"`
	}
	if err := c.get("/api/v1/tasks", nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// GetProjects retrieves all projects
func (c *Client) GetProjects() ([]*domain.Project, error) {
	var response struct {
		Data []*domain.Project `json:"data"`
	}
	if err := c.get("/api/v1/projects", nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// GetAllocations retrieves all project allocations
func (c *Client) GetAllocations() ([]*domain.Allocation, error) {
	var response struct {
		Data []*domain.Allocation `json:"data"`
	}
	if err := c.get("/api/v1/allocations", nil, &response); err != nil {
		return nil, err
	}
	return response.Data, nil
}

// HealthCheck checks if the API is healthy
func (c *Client) HealthCheck() error {
	var response struct {
		Status string `json:"status"`
	}
	if err := c.get("/health", nil, &response); err != nil {
		return err
	}
	if response.Status != "ok" {
		return fmt.Errorf("unhealthy status: %s", response.Status)
	}
	return nil
}

func (c *Client) get(path string, params url.Values, result interface{}) error {
	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return err
	}
	if params != nil {
		u.RawQuery = params.Encode()
	}

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error: %s - %s", resp.Status, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}
