// Package client wraps every server endpoint in a typed function over a
// shared resty client. Non-success responses surface the server's error
// message; successful sign-in persists the session through the injected
// session store.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/portfolio-dev/portfolio/client/session"
	"github.com/portfolio-dev/portfolio/internal/models"
)

const defaultTimeout = 15 * time.Second

type Client struct {
	http     *resty.Client
	sessions session.Store
}

func New(baseURL string, sessions session.Store) *Client {
	cli := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(defaultTimeout)

	return &Client{http: cli, sessions: sessions}
}

// Message is the confirmation body returned by remove operations.
type Message struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

// AuthHeader returns the bearer header for the stored session, or an empty
// map when signed out.
func (c *Client) AuthHeader() map[string]string {
	s, ok := c.sessions.Load()

	if !ok {
		return map[string]string{}
	}

	return map[string]string{"Authorization": "Bearer " + s.Token}
}

// Session returns the stored session, if any.
func (c *Client) Session() (*session.Session, bool) {
	return c.sessions.Load()
}

func (c *Client) Signin(ctx context.Context, email, password string) (*session.Session, error) {
	var res struct {
		Token string      `json:"token"`
		User  models.User `json:"user"`
	}

	body := map[string]string{"email": email, "password": password}

	if err := c.do(ctx, http.MethodPost, "/auth/signin", body, &res); err != nil {
		return nil, err
	}

	s := &session.Session{Token: res.Token, User: res.User}

	if err := c.sessions.Save(s); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	return s, nil
}

// Signout clears the local session even when the remote call fails.
func (c *Client) Signout(ctx context.Context) error {
	err := c.do(ctx, http.MethodGet, "/auth/signout", nil, nil)

	if clearErr := c.sessions.Clear(); clearErr != nil && err == nil {
		err = clearErr
	}

	return err
}

func (c *Client) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	var res struct {
		User models.User `json:"user"`
	}

	body := map[string]string{"name": name, "email": email, "password": password}

	if err := c.do(ctx, http.MethodPost, "/api/users", body, &res); err != nil {
		return nil, err
	}

	return &res.User, nil
}

// Projects

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	return list[models.Project](ctx, c, "/api/projects")
}

func (c *Client) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	return get[models.Project](ctx, c, "/api/projects", id)
}

func (c *Client) CreateProject(ctx context.Context, p models.Project) (*models.Project, error) {
	return create[models.Project](ctx, c, "/api/projects", p)
}

func (c *Client) UpdateProject(ctx context.Context, p models.Project) (*models.Project, error) {
	return update[models.Project](ctx, c, "/api/projects", p.ID, p)
}

func (c *Client) DeleteProject(ctx context.Context, id uint) (*Message, error) {
	return remove(ctx, c, "/api/projects", id)
}

func (c *Client) DeleteAllProjects(ctx context.Context) (*Message, error) {
	return removeAll(ctx, c, "/api/projects")
}

// Services

func (c *Client) ListServices(ctx context.Context) ([]models.Service, error) {
	return list[models.Service](ctx, c, "/api/services")
}

func (c *Client) GetService(ctx context.Context, id uint) (*models.Service, error) {
	return get[models.Service](ctx, c, "/api/services", id)
}

func (c *Client) CreateService(ctx context.Context, s models.Service) (*models.Service, error) {
	return create[models.Service](ctx, c, "/api/services", s)
}

func (c *Client) UpdateService(ctx context.Context, s models.Service) (*models.Service, error) {
	return update[models.Service](ctx, c, "/api/services", s.ID, s)
}

func (c *Client) DeleteService(ctx context.Context, id uint) (*Message, error) {
	return remove(ctx, c, "/api/services", id)
}

func (c *Client) DeleteAllServices(ctx context.Context) (*Message, error) {
	return removeAll(ctx, c, "/api/services")
}

// Qualifications

func (c *Client) ListQualifications(ctx context.Context) ([]models.Education, error) {
	return list[models.Education](ctx, c, "/api/qualifications")
}

func (c *Client) GetQualification(ctx context.Context, id uint) (*models.Education, error) {
	return get[models.Education](ctx, c, "/api/qualifications", id)
}

func (c *Client) CreateQualification(ctx context.Context, q models.Education) (*models.Education, error) {
	return create[models.Education](ctx, c, "/api/qualifications", q)
}

func (c *Client) UpdateQualification(ctx context.Context, q models.Education) (*models.Education, error) {
	return update[models.Education](ctx, c, "/api/qualifications", q.ID, q)
}

func (c *Client) DeleteQualification(ctx context.Context, id uint) (*Message, error) {
	return remove(ctx, c, "/api/qualifications", id)
}

func (c *Client) DeleteAllQualifications(ctx context.Context) (*Message, error) {
	return removeAll(ctx, c, "/api/qualifications")
}

// Contacts

// SubmitContact sends the public contact-form lead.
func (c *Client) SubmitContact(ctx context.Context, lead models.Contact) (*models.Contact, error) {
	return create[models.Contact](ctx, c, "/api/contacts", lead)
}

func (c *Client) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return list[models.Contact](ctx, c, "/api/contacts")
}

func (c *Client) GetContact(ctx context.Context, id uint) (*models.Contact, error) {
	return get[models.Contact](ctx, c, "/api/contacts", id)
}

func (c *Client) UpdateContact(ctx context.Context, lead models.Contact) (*models.Contact, error) {
	return update[models.Contact](ctx, c, "/api/contacts", lead.ID, lead)
}

func (c *Client) DeleteContact(ctx context.Context, id uint) (*Message, error) {
	return remove(ctx, c, "/api/contacts", id)
}

func (c *Client) DeleteAllContacts(ctx context.Context) (*Message, error) {
	return removeAll(ctx, c, "/api/contacts")
}

// Portfolio info

// GetPortfolioInfo fetches the singleton document; a 404 is surfaced as an
// error so the view can fall back to static defaults.
func (c *Client) GetPortfolioInfo(ctx context.Context) (*models.PortfolioInfo, error) {
	var out models.PortfolioInfo

	if err := c.do(ctx, http.MethodGet, "/api/portfolioinfo", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) UpsertPortfolioInfo(ctx context.Context, info models.PortfolioInfo) (*models.PortfolioInfo, error) {
	var out models.PortfolioInfo

	if err := c.do(ctx, http.MethodPut, "/api/portfolioinfo", info, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Users

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	return list[models.User](ctx, c, "/api/users")
}

func (c *Client) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return get[models.User](ctx, c, "/api/users", id)
}

func (c *Client) UpdateUser(ctx context.Context, id uint, payload map[string]string) (*models.User, error) {
	return update[models.User](ctx, c, "/api/users", id, payload)
}

func (c *Client) DeleteUser(ctx context.Context, id uint) (*Message, error) {
	return remove(ctx, c, "/api/users", id)
}

// Generic endpoint helpers

func list[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var out []T

	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func get[T any](ctx context.Context, c *Client, path string, id uint) (*T, error) {
	var out T

	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("%s/%d", path, id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func create[T any](ctx context.Context, c *Client, path string, body any) (*T, error) {
	var out T

	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func update[T any](ctx context.Context, c *Client, path string, id uint, body any) (*T, error) {
	var out T

	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("%s/%d", path, id), body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func remove(ctx context.Context, c *Client, path string, id uint) (*Message, error) {
	var out Message

	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("%s/%d", path, id), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func removeAll(ctx context.Context, c *Client, path string) (*Message, error) {
	var out Message

	if err := c.do(ctx, http.MethodDelete, path, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	req := c.http.R().
		SetContext(ctx).
		SetHeaders(c.AuthHeader())

	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)

	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if resp.IsError() {
		return errors.New(errorMessage(resp))
	}

	if out != nil {
		if err := json.Unmarshal(resp.Body(), out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// errorMessage extracts the server's {"error"} body, falling back to a
// generic message when the body is not in the expected shape.
func errorMessage(resp *resty.Response) string {
	var payload struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(resp.Body(), &payload); err == nil && payload.Error != "" {
		return payload.Error
	}

	return fmt.Sprintf("request failed with status %d", resp.StatusCode())
}
