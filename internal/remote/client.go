package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/cryptocreeper94-sudo/TrustHome-sub001/internal/domain"
)

// Client provides access to the TrustHome backend.
type Client interface {
	// CurrentUser returns the authenticated user, or (nil, nil) when the
	// session is anonymous. A transport failure returns an error; callers
	// treat that the same as "no user" for rendering purposes.
	CurrentUser(ctx context.Context) (*domain.User, error)

	// FetchLeads returns the agent's lead list.
	FetchLeads(ctx context.Context) ([]domain.RawLead, error)

	// FetchVendors returns the vendor directory.
	FetchVendors(ctx context.Context) ([]domain.Vendor, error)

	// SignOut posts the logout call. Best-effort: callers clear local
	// session state regardless of the result.
	SignOut(ctx context.Context) error
}

// httpClient implements Client over the backend's JSON API.
type httpClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewHTTPClient creates a Client that talks to the configured backend.
func NewHTTPClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// userPayload is the JSON body returned by GET /api/auth/user.
type userPayload struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// leadPayload is one entry of the JSON body returned by GET /api/leads.
type leadPayload struct {
	ID              string `json:"id"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Source          string `json:"source"`
	Budget          string `json:"budget"`
	UrgencyScore    *int   `json:"urgencyScore"`
	Status          string `json:"status"`
	PropertyAddress string `json:"propertyAddress"`
	Description     string `json:"description"`
	Timeline        string `json:"timeline"`
	CreatedAt       string `json:"createdAt"`
}

// vendorPayload is one entry of the JSON body returned by GET /api/vendors.
type vendorPayload struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Company            string   `json:"company"`
	Category           string   `json:"category"`
	TrustScore         int      `json:"trustScore"`
	ActiveTransactions int      `json:"activeTransactions"`
	Phone              string   `json:"phone"`
	LastUsed           string   `json:"lastUsed"`
	Specialties        []string `json:"specialties"`
	RecentTransactions []string `json:"recentTransactions"`
}

func (c *httpClient) CurrentUser(ctx context.Context) (*domain.User, error) {
	var payload userPayload
	status, err := c.getJSON(ctx, "/api/auth/user", &payload)
	if status == http.StatusUnauthorized || status == http.StatusNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	role := domain.RoleClientBuyer
	if domain.ValidRoles[payload.Role] {
		role = domain.Role(payload.Role)
	}
	return &domain.User{
		ID:    payload.ID,
		Name:  payload.Name,
		Email: payload.Email,
		Role:  role,
	}, nil
}

func (c *httpClient) FetchLeads(ctx context.Context) ([]domain.RawLead, error) {
	var payload []leadPayload
	if _, err := c.getJSON(ctx, "/api/leads", &payload); err != nil {
		return nil, err
	}
	leads := make([]domain.RawLead, 0, len(payload))
	for _, p := range payload {
		leads = append(leads, domain.RawLead{
			ID:              p.ID,
			FirstName:       p.FirstName,
			LastName:        p.LastName,
			Phone:           p.Phone,
			Email:           p.Email,
			Source:          p.Source,
			Budget:          p.Budget,
			UrgencyScore:    p.UrgencyScore,
			Status:          p.Status,
			PropertyAddress: p.PropertyAddress,
			Description:     p.Description,
			Timeline:        p.Timeline,
			CreatedAt:       parseTimestamp(p.CreatedAt),
		})
	}
	return leads, nil
}

func (c *httpClient) FetchVendors(ctx context.Context) ([]domain.Vendor, error) {
	var payload []vendorPayload
	if _, err := c.getJSON(ctx, "/api/vendors", &payload); err != nil {
		return nil, err
	}
	vendors := make([]domain.Vendor, 0, len(payload))
	for _, p := range payload {
		vendors = append(vendors, domain.Vendor{
			ID:                 p.ID,
			Name:               p.Name,
			Company:            p.Company,
			Category:           domain.VendorCategory(p.Category),
			TrustScore:         p.TrustScore,
			ActiveTransactions: p.ActiveTransactions,
			Phone:              p.Phone,
			LastUsed:           parseTimestamp(p.LastUsed),
			Specialties:        p.Specialties,
			RecentTransactions: p.RecentTransactions,
		})
	}
	return vendors, nil
}

func (c *httpClient) SignOut(ctx context.Context) error {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/api/auth/logout", nil)
	if err != nil {
		return fmt.Errorf("building logout request: %w", err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe("/api/auth/logout", 0, start, "UNAVAILABLE")
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	c.observe("/api/auth/logout", resp.StatusCode, start, "")
	return nil
}

// getJSON performs a GET and decodes the JSON body into out. It returns the
// HTTP status alongside the error so callers can distinguish auth misses.
func (c *httpClient) getJSON(ctx context.Context, path string, out any) (int, error) {
	if !c.cfg.Enabled() {
		return 0, ErrNotConfigured
	}
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("building request for %s: %w", path, err)
	}
	c.authorize(req)

	resp, err := c.http.Do(req)
	if err != nil {
		c.observe(path, 0, start, "UNAVAILABLE")
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		c.observe(path, resp.StatusCode, start, "UNAUTHORIZED")
		return resp.StatusCode, ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		c.observe(path, resp.StatusCode, start, "NOT_FOUND")
		return resp.StatusCode, fmt.Errorf("%s: %w", path, ErrUnavailable)
	case resp.StatusCode != http.StatusOK:
		c.observe(path, resp.StatusCode, start, "HTTP_ERROR")
		return resp.StatusCode, fmt.Errorf("%s: unexpected status %d: %w", path, resp.StatusCode, ErrUnavailable)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.observe(path, resp.StatusCode, start, "DECODE")
		return resp.StatusCode, fmt.Errorf("%s: %w: %v", path, ErrDecode, err)
	}
	c.observe(path, resp.StatusCode, start, "")
	return resp.StatusCode, nil
}

func (c *httpClient) authorize(req *http.Request) {
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}
}

func (c *httpClient) observe(endpoint string, status int, start time.Time, errCode string) {
	c.observer.OnCallComplete(CallEvent{
		Endpoint:  endpoint,
		Status:    status,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   errCode == "",
		ErrorCode: errCode,
	})
}

// parseTimestamp parses an RFC3339 timestamp, returning the zero time on
// failure. Downstream normalization treats zero as "today".
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
