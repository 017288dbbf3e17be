package mktows

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hooklift/gowsdl/soap"

	"github.com/sirosfoundation/go-mktows/pkg/auth"
	"github.com/sirosfoundation/go-mktows/pkg/transport"
	"github.com/sirosfoundation/go-mktows/pkg/wsdl"
)

// DefaultWSDL is the published MktoWs service description URL.
const DefaultWSDL = "http://app.marketo.com/soap/mktows/2_3?WSDL"

// Client errors
var (
	// ErrMissingEndpoint indicates neither the configuration nor the
	// service description provided a SOAP endpoint address.
	ErrMissingEndpoint = errors.New("SOAP endpoint is required")

	// ErrUnknownOperation is returned when a dispatch names an operation
	// the service description does not declare.
	ErrUnknownOperation = errors.New("unknown operation")
)

// Config holds client configuration
type Config struct {
	// WSDL is the service description URL. Defaults to DefaultWSDL.
	// Ignored when Description is set.
	WSDL string

	// Endpoint is the SOAP endpoint address. When empty, the address
	// declared by the service description is used.
	Endpoint string

	// UserID is the MktoWs API user identifier.
	UserID string

	// EncryptionKey is the shared secret used to sign request headers.
	// It is never transmitted.
	EncryptionKey string

	// Transport configures the TLS HTTP client. Ignored when HTTPClient
	// is set.
	Transport *transport.Config

	// HTTPClient overrides the HTTP client used for both the service
	// description fetch and SOAP calls.
	HTTPClient *http.Client

	// Description supplies an already-fetched service description,
	// skipping the WSDL fetch. Tests use this to avoid the network.
	Description *wsdl.Description

	// Logger receives per-call debug records. Silent when nil.
	Logger *slog.Logger

	// Clock overrides the time source for header timestamps.
	Clock func() time.Time
}

// Client is a facade over the MktoWs SOAP API. It caches the service
// description, signs every outgoing call, and maps convenience methods
// onto the declared remote operations.
//
// A Client issues one synchronous call at a time; it is not safe for
// concurrent use because the authentication header is installed on the
// underlying SOAP client per call.
type Client struct {
	endpoint string
	desc     *wsdl.Description
	signer   *auth.Signer
	soap     *soap.Client
	logger   *slog.Logger
	clock    func() time.Time
	statics  map[string]Member
}

// New creates a client for the given credentials. Unless a Description
// is supplied, the service description is fetched once here; a fetch or
// parse failure is fatal and returned immediately with no retry.
func New(ctx context.Context, cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	signer, err := auth.NewSigner(cfg.UserID, cfg.EncryptionKey, auth.WithClock(clock))
	if err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = transport.NewHTTPClient(cfg.Transport)
	}

	desc := cfg.Description
	if desc == nil {
		wsdlURL := cfg.WSDL
		if wsdlURL == "" {
			wsdlURL = DefaultWSDL
		}
		desc, err = wsdl.NewClientWithConfig(wsdl.ClientConfig{HTTPClient: httpClient}).Fetch(ctx, wsdlURL)
		if err != nil {
			return nil, fmt.Errorf("failed to load service description: %w", err)
		}
	}

	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = desc.Endpoint()
	}
	if endpoint == "" {
		return nil, ErrMissingEndpoint
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	c := &Client{
		endpoint: endpoint,
		desc:     desc,
		signer:   signer,
		soap:     soap.NewClient(endpoint, soap.WithHTTPClient(httpClient)),
		logger:   logger,
		clock:    clock,
	}
	c.statics = c.staticMembers()

	return c, nil
}

// Endpoint returns the SOAP endpoint address the client dispatches to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Description returns the cached service description.
func (c *Client) Description() *wsdl.Description {
	return c.desc
}

// Call dispatches a declared remote operation. It installs a freshly
// signed authentication header, derives the SOAP action from the service
// description, and decodes the reply into response. Remote faults are
// returned unmodified as the SOAP toolkit's fault error; there are no
// retries.
func (c *Client) Call(ctx context.Context, operation string, request, response interface{}) error {
	if !c.desc.HasOperation(operation) {
		return fmt.Errorf("%w: %s", ErrUnknownOperation, operation)
	}
	action, _ := c.desc.SOAPAction(operation)

	// Fresh header per call; SetHeaders replaces, never accumulates.
	c.soap.SetHeaders(c.signer.Sign())

	requestID := uuid.NewString()
	start := time.Now()
	err := c.soap.CallContext(ctx, action, request, response)
	elapsed := time.Since(start)

	if err != nil {
		c.logger.DebugContext(ctx, "call failed",
			slog.String("operation", operation),
			slog.String("request_id", requestID),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()))
		return err
	}

	c.logger.DebugContext(ctx, "call completed",
		slog.String("operation", operation),
		slog.String("request_id", requestID),
		slog.Duration("elapsed", elapsed))
	return nil
}
