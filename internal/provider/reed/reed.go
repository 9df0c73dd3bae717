package reed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/provider"
	"jobscout-engine/internal/provider/util"
)

const defaultBaseURL = "https://www.reed.co.uk/api/1.0/search"

// Reed allows up to 100 results per request.
const perPage = 100

// Reed dates look like "05/12/2025".
const dateLayout = "02/01/2006"

type Config struct {
	APIKey              string
	BaseURL             string // override for tests
	DescriptionMaxChars int
}

type Client struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
	now     func() time.Time
}

func New(cfg Config, limiter *util.HostLimiter) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.DescriptionMaxChars == 0 {
		cfg.DescriptionMaxChars = 500
	}
	return &Client{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
		now:     time.Now,
	}
}

func (c *Client) Name() string          { return "reed" }
func (c *Client) Source() domain.Source { return domain.SourceReed }

type searchResponse struct {
	Results []posting `json:"results"`
}

type posting struct {
	JobTitle       string   `json:"jobTitle"`
	EmployerName   string   `json:"employerName"`
	LocationName   string   `json:"locationName"`
	MinimumSalary  *float64 `json:"minimumSalary"`
	MaximumSalary  *float64 `json:"maximumSalary"`
	Date           string   `json:"date"`
	JobDescription string   `json:"jobDescription"`
	JobURL         string   `json:"jobUrl"`
}

func (c *Client) Fetch(ctx context.Context, q provider.Query) ([]domain.Job, error) {
	if c.cfg.APIKey == "" {
		return nil, fmt.Errorf("reed: %w", provider.ErrNotConfigured)
	}

	var jobs []domain.Job
	for skip := 0; len(jobs) < q.MaxResults; skip += perPage {
		results, err := c.fetchPage(ctx, q, skip, q.MaxResults-len(jobs))
		if err != nil {
			if len(jobs) > 0 {
				break
			}
			return nil, err
		}
		if len(results) == 0 {
			break
		}

		for _, p := range results {
			j, ok := c.toJob(p, q)
			if !ok {
				continue
			}
			jobs = append(jobs, j)
			if len(jobs) >= q.MaxResults {
				break
			}
		}

		if len(results) < perPage {
			break
		}
	}
	return jobs, nil
}

func (c *Client) fetchPage(ctx context.Context, q provider.Query, skip, want int) ([]posting, error) {
	qs := url.Values{}
	qs.Set("keywords", q.Keywords)
	qs.Set("locationName", q.Location)
	qs.Set("resultsToTake", strconv.Itoa(min(perPage, want)))
	qs.Set("resultsToSkip", strconv.Itoa(skip))
	if q.MinSalary != nil {
		qs.Set("minimumSalary", strconv.Itoa(*q.MinSalary))
	}

	u := c.cfg.BaseURL + "?" + qs.Encode()

	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, u); err != nil {
			return nil, err
		}
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	req.Header.Set("User-Agent", "JobScout/1.0 (+local)")
	// Reed uses Basic auth with the API key as username, empty password.
	req.SetBasicAuth(c.cfg.APIKey, "")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reed get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("reed status %d", res.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("reed decode: %w", err)
	}
	return sr.Results, nil
}

func (c *Client) toJob(p posting, q provider.Query) (domain.Job, bool) {
	title := util.CleanText(p.JobTitle)
	company := util.CleanText(p.EmployerName)
	if title == "" || company == "" {
		return domain.Job{}, false
	}

	var postedAt *time.Time
	if t, err := time.Parse(dateLayout, p.Date); err == nil {
		postedAt = &t
	}

	// The API has no posted-within filter, so the age window is enforced
	// here before records leave the provider.
	if q.MaxDaysOld != nil {
		if postedAt == nil {
			return domain.Job{}, false
		}
		cutoff := c.now().AddDate(0, 0, -*q.MaxDaysOld)
		if postedAt.Before(cutoff) {
			return domain.Job{}, false
		}
	}

	desc := util.TruncateDescription(util.StripHTML(p.JobDescription), c.cfg.DescriptionMaxChars)
	mode := util.InferWorkMode(title, desc)
	remote := util.IsRemoteMode(mode)
	if q.RemoteOnly && !remote {
		return domain.Job{}, false
	}

	loc := util.CleanText(p.LocationName)
	if loc == "" {
		loc = q.Location
	}

	return domain.Job{
		Title:            title,
		Company:          company,
		Location:         loc,
		SalaryMin:        roundSalary(p.MinimumSalary),
		SalaryMax:        roundSalary(p.MaximumSalary),
		Remote:           remote,
		WorkMode:         mode,
		PostedAt:         postedAt,
		Source:           domain.SourceReed,
		URL:              p.JobURL,
		Description:      desc,
		CareersSearchURL: util.CareersSearchURL(company),
	}, true
}

func roundSalary(v *float64) *int {
	if v == nil || *v <= 0 {
		return nil
	}
	n := int(*v + 0.5)
	return &n
}
