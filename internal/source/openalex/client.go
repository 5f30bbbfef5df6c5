package openalex

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/d4nn015/documentos-importar-OpenAlex/internal/domain"
)

// PageSize is the fixed number of works per result page. Callers derive
// the total page count as ceil(meta.count / PageSize).
const PageSize = 25

const defaultBaseURL = "https://api.openalex.org"

// ErrRateLimited is returned when the API answers with HTTP 429. The
// client does not retry; the signal is meant to abort the current
// client run upstream.
var ErrRateLimited = errors.New("openalex: rate limited")

// Config holds OpenAlex client configuration.
type Config struct {
	BaseURL           string
	Mailto            string
	Timeout           time.Duration
	RequestsPerSecond float64
}

// Client issues paginated read-only queries against the OpenAlex API.
// Requests are throttled through a shared rate limiter; retry and
// backoff policy belongs to the caller.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	mailto     string
	logger     *slog.Logger
}

// New creates a new OpenAlex client.
func New(cfg Config, logger *slog.Logger) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		baseURL:    baseURL,
		mailto:     cfg.Mailto,
		logger:     logger.With("source", "openalex"),
	}
}

// WorksByInstitution fetches one page of works affiliated with the
// given institution id.
func (c *Client) WorksByInstitution(ctx context.Context, institutionID string, page int) (*domain.WorksPage, error) {
	return c.works(ctx, "institutions.id:"+institutionID, page)
}

// WorksByAuthor fetches one page of works authored by the given ORCID.
func (c *Client) WorksByAuthor(ctx context.Context, orcid string, page int) (*domain.WorksPage, error) {
	return c.works(ctx, "author.orcid:"+orcid, page)
}

// AuthorByScopusID resolves a Scopus author id to an ORCID. A lookup
// with no match returns "" without an error.
func (c *Client) AuthorByScopusID(ctx context.Context, scopusID string) (string, error) {
	params := url.Values{}
	params.Set("filter", "scopus:"+scopusID)

	var resp authorsResponse
	if err := c.get(ctx, "/authors", params, &resp); err != nil {
		return "", fmt.Errorf("author by scopus id %s: %w", scopusID, err)
	}

	for _, author := range resp.Results {
		if author.Orcid != "" {
			return author.Orcid, nil
		}
	}

	c.logger.Debug("no orcid found for scopus id", "scopus_id", scopusID)
	return "", nil
}

func (c *Client) works(ctx context.Context, filter string, page int) (*domain.WorksPage, error) {
	params := url.Values{}
	params.Set("filter", filter)
	params.Set("page", fmt.Sprintf("%d", page))

	var resp worksResponse
	if err := c.get(ctx, "/works", params, &resp); err != nil {
		return nil, fmt.Errorf("works page %d (%s): %w", page, filter, err)
	}

	return &domain.WorksPage{
		Works: c.transform(resp.Results),
		Total: resp.Meta.Count,
	}, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	if c.mailto != "" {
		params.Set("mailto", c.mailto)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	ua := "documentos-importar/1.0"
	if c.mailto != "" {
		ua = fmt.Sprintf("documentos-importar/1.0 (mailto:%s)", c.mailto)
	}
	req.Header.Set("User-Agent", ua)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// transform lifts the work id and updated date out of each raw payload
// and replaces the inverted abstract index with its reconstructed text.
func (c *Client) transform(results []map[string]any) []domain.Work {
	works := make([]domain.Work, 0, len(results))

	for _, fields := range results {
		fields["abstract_inverted_index"] = ReconstructAbstract(invertedIndexOf(fields["abstract_inverted_index"]))

		id, _ := fields["id"].(string)
		if id == "" {
			c.logger.Warn("skipping work without id")
			continue
		}
		updated, _ := fields["updated_date"].(string)

		works = append(works, domain.Work{
			ID:          id,
			UpdatedDate: updated,
			Fields:      fields,
		})
	}

	return works
}
