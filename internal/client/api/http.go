package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmitrijs2005/useradmin/internal/client/models"
	"github.com/dmitrijs2005/useradmin/internal/logging"
)

// Paths of the consumed REST surface.
const (
	PathRegister      = "/user/register_user"
	PathLogin         = "/auth/admin_login"
	PathGetProfile    = "/user/get_profile"
	PathUpdateProfile = "/user/update_user"
	PathUserCount     = "/user/get_user_count"
	PathUsersList     = "/user/user_list"
	PathDeleteUser    = "/user/delete_user"
	PathRanks         = "/lov/get_ranks"
	PathRoles         = "/lov/get_roles"
)

// HTTPClient implements Client over JSON/HTTP.
type HTTPClient struct {
	baseURL  string
	http     *http.Client
	contract Contract
	logger   logging.Logger
	tracer   trace.Tracer
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient swaps the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithContract overrides the success conventions.
func WithContract(contract Contract) Option {
	return func(c *HTTPClient) { c.contract = contract }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// WithTracer injects a tracer; by default the global provider is used.
func WithTracer(t trace.Tracer) Option {
	return func(c *HTTPClient) { c.tracer = t }
}

func NewHTTPClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:  strings.TrimRight(baseURL, "/"),
		http:     &http.Client{},
		contract: DefaultContract(),
		logger:   logging.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.tracer == nil {
		c.tracer = otel.Tracer("useradmin/client/api")
	}
	c.logger = c.logger.With("module", "api_client")
	return c
}

// BaseURL is the resolved backend root all paths are appended to.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegistrationRequest) (Result[Empty], error) {
	return call[Empty](ctx, c, OpRegister, http.MethodPost, PathRegister, "", req, nil)
}

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (Result[models.LoginData], error) {
	return call(ctx, c, OpLogin, http.MethodPost, PathLogin, "", creds, func(d *models.LoginData) error {
		return d.Validate()
	})
}

// GetProfile fetches one user by explicit identifier, sent in the body.
func (c *HTTPClient) GetProfile(ctx context.Context, uuid string) (Result[models.UserSummary], error) {
	return call(ctx, c, OpGetProfile, http.MethodPost, PathGetProfile, "", models.IdentifierRequest{UUID: uuid}, func(u *models.UserSummary) error {
		return u.Validate()
	})
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, req models.ProfileUpdateRequest) (Result[Empty], error) {
	return call[Empty](ctx, c, OpUpdateProfile, http.MethodPost, PathUpdateProfile, "", req, nil)
}

func (c *HTTPClient) GetUserCount(ctx context.Context, token string) (Result[int], error) {
	return call(ctx, c, OpUserCount, http.MethodGet, PathUserCount, token, nil, func(n *int) error {
		if *n < 0 {
			return fmt.Errorf("negative count %d", *n)
		}
		return nil
	})
}

func (c *HTTPClient) GetUsersList(ctx context.Context, token string) (Result[[]models.UsersListItem], error) {
	return call(ctx, c, OpUsersList, http.MethodGet, PathUsersList, token, nil, func(items *[]models.UsersListItem) error {
		for i := range *items {
			if err := (*items)[i].Validate(); err != nil {
				return fmt.Errorf("users[%d]: %w", i, err)
			}
		}
		return nil
	})
}

func (c *HTTPClient) DeleteUser(ctx context.Context, uuid string) (Result[Empty], error) {
	return call[Empty](ctx, c, OpDeleteUser, http.MethodPost, PathDeleteUser, "", models.IdentifierRequest{UUID: uuid}, nil)
}

func (c *HTTPClient) GetRanks(ctx context.Context) ([]models.LovRef, error) {
	return c.lookup(ctx, OpRanks, PathRanks, "ranks")
}

func (c *HTTPClient) GetRoles(ctx context.Context) ([]models.LovRef, error) {
	return c.lookup(ctx, OpRoles, PathRoles, "roles")
}

func (c *HTTPClient) lookup(ctx context.Context, op Operation, path, what string) ([]models.LovRef, error) {
	res, err := call(ctx, c, op, http.MethodGet, path, "", nil, func(refs *[]models.LovRef) error {
		for i, r := range *refs {
			if err := r.Validate(); err != nil {
				return fmt.Errorf("%s[%d]: %w", what, i, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !res.OK {
		msg := res.Message
		if msg == "" {
			msg = "backend reported failure"
		}
		return nil, fmt.Errorf("%w: failed to fetch %s: %s", ErrLookupFailed, what, msg)
	}
	return res.Data, nil
}

// call performs one request and normalises the envelope. validate is nil for
// operations whose success carries no payload; the data field is then ignored.
func call[T any](ctx context.Context, c *HTTPClient, op Operation, method, path, token string, body any, validate func(*T) error) (res Result[T], err error) {
	ctx, span := c.tracer.Start(ctx, "api."+string(op), trace.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("http.route", path),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.SetAttributes(attribute.Bool("result.ok", res.OK))
		span.End()
	}()

	req, err := c.newRequest(ctx, method, path, token, body)
	if err != nil {
		return res, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug(ctx, "request failed", "op", op, "error", err)
		return res, fmt.Errorf("%w: %s: %v", ErrUnavailable, op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return res, fmt.Errorf("%w: %s: reading body: %v", ErrUnavailable, op, err)
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return res, &SchemaError{Op: op, Reason: fmt.Sprintf("response is not an envelope (http %d)", resp.StatusCode), Err: err}
	}

	if !c.contract.rule(op).Succeeded(&env) {
		c.logger.Debug(ctx, "backend reported failure", "op", op, "http_status", resp.StatusCode, "message", env.Text())
		return Result[T]{OK: false, Message: env.Text()}, nil
	}

	if validate == nil {
		return Result[T]{OK: true, Message: env.Text()}, nil
	}

	if !env.HasData() {
		return res, &SchemaError{Op: op, Reason: "success without data"}
	}

	var data T
	if err := json.Unmarshal(env.Data, &data); err != nil {
		return res, &SchemaError{Op: op, Reason: "undecodable data", Err: err}
	}
	if err := validate(&data); err != nil {
		return res, &SchemaError{Op: op, Reason: "invalid data", Err: err}
	}

	return Result[T]{OK: true, Data: data}, nil
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path, token string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}
