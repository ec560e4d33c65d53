// Package github uploads release artifacts to GitHub releases.
package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
	"github.com/gost-tex/lint-gost-tex/internal/logger"
)

// DefaultTimeout is the HTTP timeout of one API call or upload.
const DefaultTimeout = 5 * time.Minute

// APIError represents a GitHub API error.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("github api error %d: %s (%s)", e.StatusCode, e.Message, e.URL)
}

// Ensure Publisher implements the interface.
var _ driven.Publisher = (*Publisher)(nil)

// Publisher uploads artifacts to the release of a tag, creating the
// release when it does not exist.
type Publisher struct {
	baseURL   string
	uploadURL string
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithBaseURLs points the publisher at another API host, such as a
// GitHub Enterprise server or a test server.
func WithBaseURLs(baseURL, uploadURL string) Option {
	return func(p *Publisher) {
		p.baseURL = baseURL
		p.uploadURL = uploadURL
	}
}

// NewPublisher creates a publisher for api.github.com.
func NewPublisher(opts ...Option) *Publisher {
	p := &Publisher{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Publish uploads every artifact, replacing assets of the same name.
func (p *Publisher) Publish(ctx context.Context, opts domain.PublishOptions, artifacts []domain.Artifact) error {
	if err := opts.Credentials.Validate(); err != nil {
		return err
	}
	if len(artifacts) == 0 {
		return domain.ErrNoArtifacts
	}
	owner, repo, err := domain.SplitRepository(opts.Repository)
	if err != nil {
		return err
	}
	if opts.Tag == "" {
		return fmt.Errorf("%w: release tag not set", domain.ErrInvalidInput)
	}

	client, err := p.client(ctx, opts.Credentials)
	if err != nil {
		return err
	}

	release, err := ensureRelease(ctx, client, owner, repo, opts.Tag)
	if err != nil {
		return err
	}

	for _, artifact := range artifacts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := replaceAsset(ctx, client, owner, repo, release, artifact); err != nil {
			return err
		}
		logger.Info("uploaded %s to %s/%s@%s", artifact.Name, owner, repo, opts.Tag)
	}
	return nil
}

// client authenticates with a bearer token when the username is the token
// marker, and with HTTP basic auth otherwise.
func (p *Publisher) client(ctx context.Context, creds domain.Credentials) (*gh.Client, error) {
	var httpClient *http.Client
	if creds.IsToken() {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: creds.Password})
		httpClient = oauth2.NewClient(ctx, ts)
	} else {
		transport := &gh.BasicAuthTransport{
			Username: creds.Username,
			Password: creds.Password,
		}
		httpClient = transport.Client()
	}
	httpClient.Timeout = DefaultTimeout

	client := gh.NewClient(httpClient)
	if p.baseURL == "" {
		return client, nil
	}

	baseURL, err := parseEndpoint(p.baseURL)
	if err != nil {
		return nil, err
	}
	uploadURL, err := parseEndpoint(p.uploadURL)
	if err != nil {
		return nil, err
	}
	client.BaseURL = baseURL
	client.UploadURL = uploadURL
	return client, nil
}

func parseEndpoint(raw string) (*url.URL, error) {
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: endpoint %q: %v", domain.ErrInvalidInput, raw, err)
	}
	return u, nil
}

func ensureRelease(ctx context.Context, client *gh.Client, owner, repo, tag string) (*gh.RepositoryRelease, error) {
	release, resp, err := client.Repositories.GetReleaseByTag(ctx, owner, repo, tag)
	if err == nil {
		return release, nil
	}
	if resp == nil || resp.StatusCode != http.StatusNotFound {
		return nil, wrapError(err, "get release")
	}

	logger.Debug("creating release %s for %s/%s", tag, owner, repo)
	release, _, err = client.Repositories.CreateRelease(ctx, owner, repo, &gh.RepositoryRelease{
		TagName: gh.Ptr(tag),
		Name:    gh.Ptr(tag),
	})
	if err != nil {
		return nil, wrapError(err, "create release")
	}
	return release, nil
}

func replaceAsset(ctx context.Context, client *gh.Client, owner, repo string, release *gh.RepositoryRelease, artifact domain.Artifact) error {
	for _, asset := range release.Assets {
		if asset.GetName() != artifact.Name {
			continue
		}
		if _, err := client.Repositories.DeleteReleaseAsset(ctx, owner, repo, asset.GetID()); err != nil {
			return wrapError(err, "delete asset "+artifact.Name)
		}
	}

	file, err := os.Open(artifact.Path)
	if err != nil {
		return fmt.Errorf("opening artifact: %w", err)
	}
	defer file.Close()

	_, _, err = client.Repositories.UploadReleaseAsset(ctx, owner, repo, release.GetID(), &gh.UploadOptions{
		Name:      artifact.Name,
		MediaType: mediaType(artifact.Name),
	}, file)
	if err != nil {
		return wrapError(err, "upload "+artifact.Name)
	}
	return nil
}

func mediaType(name string) string {
	if strings.HasSuffix(name, ".tar.gz") || strings.HasSuffix(name, ".tgz") {
		return "application/gzip"
	}
	return "application/octet-stream"
}

// wrapError converts GitHub error responses into APIError values.
func wrapError(err error, operation string) error {
	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		apiErr := &APIError{StatusCode: ghErr.Response.StatusCode, Message: ghErr.Message}
		if ghErr.Response.Request != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		return fmt.Errorf("%s: %w", operation, apiErr)
	}
	return fmt.Errorf("%s: %w", operation, err)
}
