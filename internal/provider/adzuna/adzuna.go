package adzuna

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

const defaultBaseURL = "https://api.adzuna.com/v1/api/jobs"

const perPage = 50

type Config struct {
	AppID               string
	AppKey              string
	Country             string // API path segment, e.g. "gb"
	BaseURL             string // override for tests
	DescriptionMaxChars int
}

type Client struct {
	cfg     Config
	hc      *http.Client
	limiter *util.HostLimiter
}

func New(cfg Config, limiter *util.HostLimiter) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Country == "" {
		cfg.Country = "gb"
	}
	if cfg.DescriptionMaxChars == 0 {
		cfg.DescriptionMaxChars = 500
	}
	return &Client{
		cfg:     cfg,
		hc:      &http.Client{Timeout: 20 * time.Second},
		limiter: limiter,
	}
}

func (c *Client) Name() string          { return "adzuna" }
func (c *Client) Source() domain.Source { return domain.SourceAdzuna }

type searchResponse struct {
	Results []posting `json:"results"`
}

type posting struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	RedirectURL string   `json:"redirect_url"`
	Created     string   `json:"created"` // "2025-12-05T10:30:00Z"
	SalaryMin   *float64 `json:"salary_min"`
	SalaryMax   *float64 `json:"salary_max"`
	Company     struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string `json:"display_name"`
	} `json:"location"`
}

func (c *Client) Fetch(ctx context.Context, q provider.Query) ([]domain.Job, error) {
	if c.cfg.AppID == "" || c.cfg.AppKey == "" {
		return nil, fmt.Errorf("adzuna: %w", provider.ErrNotConfigured)
	}

	var jobs []domain.Job
	for page := 1; len(jobs) < q.MaxResults; page++ {
		results, err := c.fetchPage(ctx, q, page, q.MaxResults-len(jobs))
		if err != nil {
			// partial results beat none; only fail when the first page dies
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

func (c *Client) fetchPage(ctx context.Context, q provider.Query, page, want int) ([]posting, error) {
	qs := url.Values{}
	qs.Set("app_id", c.cfg.AppID)
	qs.Set("app_key", c.cfg.AppKey)
	qs.Set("what", q.Keywords)
	qs.Set("where", q.Location)
	qs.Set("results_per_page", strconv.Itoa(min(perPage, want)))
	qs.Set("content-type", "application/json")
	if q.MinSalary != nil {
		qs.Set("salary_min", strconv.Itoa(*q.MinSalary))
	}
	if q.MaxDaysOld != nil {
		qs.Set("max_days_old", strconv.Itoa(*q.MaxDaysOld))
	}

	u := fmt.Sprintf("%s/%s/search/%d?%s", c.cfg.BaseURL, c.cfg.Country, page, qs.Encode())

	if c.limiter != nil {
		if err := c.limiter.WaitURL(ctx, u); err != nil {
			return nil, err
		}
	}

	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	req.Header.Set("User-Agent", "JobScout/1.0 (+local)")

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("adzuna get: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("adzuna status %d", res.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("adzuna decode: %w", err)
	}
	return sr.Results, nil
}

func (c *Client) toJob(p posting, q provider.Query) (domain.Job, bool) {
	title := util.CleanText(p.Title)
	company := util.CleanText(p.Company.DisplayName)
	if title == "" || company == "" {
		return domain.Job{}, false
	}

	desc := util.TruncateDescription(util.StripHTML(p.Description), c.cfg.DescriptionMaxChars)
	mode := util.InferWorkMode(title, desc)
	remote := util.IsRemoteMode(mode)
	if q.RemoteOnly && !remote {
		return domain.Job{}, false
	}

	loc := util.CleanText(p.Location.DisplayName)
	if loc == "" {
		loc = q.Location
	}

	j := domain.Job{
		Title:            title,
		Company:          company,
		Location:         loc,
		SalaryMin:        roundSalary(p.SalaryMin),
		SalaryMax:        roundSalary(p.SalaryMax),
		Remote:           remote,
		WorkMode:         mode,
		Source:           domain.SourceAdzuna,
		URL:              p.RedirectURL,
		Description:      desc,
		CareersSearchURL: util.CareersSearchURL(company),
	}
	if t, err := time.Parse(time.RFC3339, p.Created); err == nil {
		j.PostedAt = &t
	}
	return j, true
}

func roundSalary(v *float64) *int {
	if v == nil || *v <= 0 {
		return nil
	}
	n := int(*v + 0.5)
	return &n
}
