package fixit

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/failsafe-go/failsafe-go/circuitbreaker"
	"github.com/jonboulle/clockwork"
	"golang.org/x/time/rate"

	"github.com/RaymondAkiiki/fixit-go/internal/correlation"
	"github.com/RaymondAkiiki/fixit-go/internal/metrics"
)

// Version identifies this SDK release in the User-Agent header.
const Version = "0.4.0"

const (
	apiPrefix      = "/api"
	defaultTimeout = 30 * time.Second
)

// Client talks to the Fix It backend. All domain services share one Client,
// one base URL (origin + /api), one session store, and one set of
// request/response conventions.
//
// Authentication is header-based only: no cookies are sent, and the bearer
// token is resolved from the session store on every request.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      Store
	clock      clockwork.Clock
	log        *slog.Logger
	adminToken string
	limiter    *rate.Limiter
	breaker    circuitbreaker.CircuitBreaker[any]
	userAgent  string

	mu           sync.Mutex
	onInvalidate []func()

	common service

	Auth          *AuthService
	Properties    *PropertiesService
	Units         *UnitsService
	Leases        *LeasesService
	Rent          *RentService
	Requests      *RequestsService
	Scheduled     *ScheduledService
	Vendors       *VendorsService
	Users         *UsersService
	Invites       *InvitesService
	Media         *MediaService
	Messages      *MessagesService
	Notifications *NotificationsService
	Comments      *CommentsService
	Reports       *ReportsService
	Admin         *AdminService
	AuditLogs     *AuditLogsService
	Public        *PublicService
}

type service struct {
	client *Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client (30s timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithSessionStore replaces the default in-memory session store.
func WithSessionStore(s Store) Option {
	return func(c *Client) { c.store = s }
}

// WithClock injects a clock, used by tests and the notification poller.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Client) { c.clock = clock }
}

// WithAdminToken configures the static admin override token. When the stored
// profile's role is admin, this token is attached instead of the session's
// own token, unconditionally.
func WithAdminToken(token string) Option {
	return func(c *Client) { c.adminToken = token }
}

// WithRateLimit throttles outgoing requests to rps requests per second with
// the given burst, intended for background polling consumers.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithLogger replaces the default slog logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithCircuitBreaker guards the transport with a fail-fast circuit breaker:
// 60% failure rate over a 10s window (min 5 requests) opens the circuit,
// which half-opens after 30s and closes on one success. The breaker never
// retries; requests during an open circuit fail immediately.
func WithCircuitBreaker() Option {
	return func(c *Client) {
		c.breaker = circuitbreaker.NewBuilder[any]().
			WithFailureRateThreshold(0.6, 5, 10*time.Second).
			WithDelay(30 * time.Second).
			WithSuccessThreshold(1).
			OnStateChanged(func(e circuitbreaker.StateChangedEvent) {
				c.log.Warn("circuit breaker state changed",
					"from", e.OldState.String(),
					"to", e.NewState.String(),
				)
				metrics.BreakerStateChanges.WithLabelValues(e.NewState.String()).Inc()
				metrics.BreakerState.Set(breakerStateValue(e.NewState))
			}).
			Build()
	}
}

func breakerStateValue(state circuitbreaker.State) float64 {
	switch state {
	case circuitbreaker.ClosedState:
		return 0
	case circuitbreaker.HalfOpenState:
		return 1
	case circuitbreaker.OpenState:
		return 2
	default:
		return -1
	}
}

// New creates a Client for the backend at origin (scheme + host, no /api
// suffix: the /api prefix is appended here).
func New(origin string, opts ...Option) (*Client, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return nil, fmt.Errorf("invalid origin %q: %w", origin, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("origin %q must include scheme and host", origin)
	}

	c := &Client{
		baseURL:    strings.TrimRight(origin, "/") + apiPrefix,
		httpClient: &http.Client{Timeout: defaultTimeout},
		store:      NewMemStore(),
		clock:      clockwork.NewRealClock(),
		log:        slog.Default(),
		userAgent:  "fixit-go/" + Version,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.common.client = c
	c.Auth = (*AuthService)(&c.common)
	c.Properties = (*PropertiesService)(&c.common)
	c.Units = (*UnitsService)(&c.common)
	c.Leases = (*LeasesService)(&c.common)
	c.Rent = (*RentService)(&c.common)
	c.Requests = (*RequestsService)(&c.common)
	c.Scheduled = (*ScheduledService)(&c.common)
	c.Vendors = (*VendorsService)(&c.common)
	c.Users = (*UsersService)(&c.common)
	c.Invites = (*InvitesService)(&c.common)
	c.Media = (*MediaService)(&c.common)
	c.Messages = (*MessagesService)(&c.common)
	c.Notifications = (*NotificationsService)(&c.common)
	c.Comments = (*CommentsService)(&c.common)
	c.Reports = (*ReportsService)(&c.common)
	c.Admin = (*AdminService)(&c.common)
	c.AuditLogs = (*AuditLogsService)(&c.common)
	c.Public = (*PublicService)(&c.common)

	return c, nil
}

// SessionStore exposes the session store, for consumers that need to inspect
// the one-shot expired notice after a forced logout.
func (c *Client) SessionStore() Store {
	return c.store
}

// OnInvalidate registers a callback fired when a 401 response forces the
// session to be torn down. The web app navigated to /login here; a CLI or
// service registers whatever reaction fits its surface.
func (c *Client) OnInvalidate(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onInvalidate = append(c.onInvalidate, fn)
}

// authHeader resolves the bearer credential for an outgoing request:
// admin override first, then the stored session token, else nothing.
// A store read failure is treated as "no session", not as a fatal error.
func (c *Client) authHeader() string {
	cred, err := c.store.Load()
	if err != nil {
		c.log.Warn("session load failed, proceeding unauthenticated", "error", err)
		cred = nil
	}
	if c.adminToken != "" && cred != nil && cred.Profile.Role == RoleAdmin {
		return "Bearer " + c.adminToken
	}
	if cred != nil && cred.Token != "" {
		return "Bearer " + cred.Token
	}
	return ""
}

// invalidate tears down the session after a 401: clear the stored
// credential, set the one-shot expired notice, and fire registered
// callbacks. The triggering error still propagates to the call site.
func (c *Client) invalidate() {
	if err := c.store.Clear(); err != nil {
		c.log.Error("failed to clear session after 401", "error", err)
	}
	c.store.MarkExpired()
	metrics.SessionInvalidations.Inc()

	c.mu.Lock()
	fns := slices.Clone(c.onInvalidate)
	c.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
	c.log.Warn("session invalidated by 401 response")
}

// roundTrip performs a single attempt of one request. No layer here retries:
// every operation runs exactly once per caller action.
func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &Error{Kind: KindAborted, Message: "request aborted", Cause: err}
		}
	}
	if c.breaker != nil && !c.breaker.TryAcquirePermit() {
		return nil, &Error{
			Kind:    KindNetwork,
			Message: "backend unavailable: circuit open",
			Cause:   circuitbreaker.ErrOpen,
		}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: "build request", Cause: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	id, ok := correlation.ID(ctx)
	if !ok {
		id = correlation.NewID()
	}
	req.Header.Set("X-Request-ID", id)
	if h := c.authHeader(); h != "" {
		req.Header.Set("Authorization", h)
	}

	resource := resourceLabel(path)
	start := c.clock.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.breaker != nil {
			c.breaker.RecordError(err)
		}
		metrics.RequestsTotal.WithLabelValues(method, resource, "error").Inc()
		if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, &Error{Kind: KindAborted, Message: "request aborted", Cause: err}
		}
		return nil, &Error{Kind: KindNetwork, Message: "network error", Cause: err}
	}

	metrics.RequestDuration.WithLabelValues(method, resource).Observe(c.clock.Since(start).Seconds())
	metrics.RequestsTotal.WithLabelValues(method, resource, strconv.Itoa(resp.StatusCode)).Inc()
	if c.breaker != nil {
		// Only 5xx and transport errors count against the circuit.
		if resp.StatusCode >= 500 {
			c.breaker.RecordError(fmt.Errorf("server returned %d", resp.StatusCode))
		} else {
			c.breaker.RecordSuccess()
		}
	}
	return resp, nil
}

// do runs a request and returns the raw body on 2xx. A 401 tears down the
// session before the error is returned, so the call site's own error
// handling still runs after the forced logout.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) ([]byte, error) {
	resp, err := c.roundTrip(ctx, method, path, query, body, contentType)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, &Error{Kind: KindAborted, Message: "request aborted", Cause: err}
		}
		return nil, &Error{Kind: KindNetwork, Message: "read response", Cause: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.invalidate()
		return nil, statusError(resp.StatusCode, data)
	}
	if resp.StatusCode >= 400 {
		return nil, statusError(resp.StatusCode, data)
	}
	return data, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, v any) error {
	data, err := c.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return err
	}
	return decodeEntity(data, v)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, v any) error {
	var r io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindValidation, Message: "encode request", Cause: err}
		}
		r = bytes.NewReader(data)
		contentType = "application/json"
	}
	data, err := c.do(ctx, method, path, nil, r, contentType)
	if err != nil {
		return err
	}
	return decodeEntity(data, v)
}

func (c *Client) postJSON(ctx context.Context, path string, body, v any) error {
	return c.sendJSON(ctx, http.MethodPost, path, body, v)
}

func (c *Client) putJSON(ctx context.Context, path string, body, v any) error {
	return c.sendJSON(ctx, http.MethodPut, path, body, v)
}

func (c *Client) patchJSON(ctx context.Context, path string, body, v any) error {
	return c.sendJSON(ctx, http.MethodPatch, path, body, v)
}

func (c *Client) deletePath(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, "")
	return err
}

// sendForm sends a multipart request built from form. Used by every
// operation that carries file attachments: with at least one file the whole
// payload switches to multipart, JSON bodies are never mixed with files.
func (c *Client) sendForm(ctx context.Context, method, path string, form *Form, v any) error {
	body, contentType, err := form.encode()
	if err != nil {
		return &Error{Kind: KindValidation, Message: "encode form", Cause: err}
	}
	data, err := c.do(ctx, method, path, nil, body, contentType)
	if err != nil {
		return err
	}
	return decodeEntity(data, v)
}

// decodeEntity unmarshals a single-entity response, stripping a success/data
// wrapper when the endpoint uses one.
func decodeEntity(data []byte, v any) error {
	if v == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(unwrapEntity(data), v); err != nil {
		return &Error{Kind: KindServer, Message: "decode response", Cause: err}
	}
	return nil
}

// getPage runs a list request and reconciles the endpoint's envelope into
// the canonical Page shape.
func getPage[T any](ctx context.Context, c *Client, path string, query url.Values, shape Shape) (*Page[T], error) {
	data, err := c.do(ctx, http.MethodGet, path, query, nil, "")
	if err != nil {
		return nil, err
	}
	page, err := decodePage[T](data, shape)
	if err != nil {
		return nil, &Error{Kind: KindServer, Message: "decode response", Cause: err}
	}
	return page, nil
}

// resourceLabel extracts the leading path segment for metric labels.
func resourceLabel(path string) string {
	trimmed := strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(trimmed, '/'); i >= 0 {
		return trimmed[:i]
	}
	return trimmed
}
