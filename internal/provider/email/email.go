// Package email turns LinkedIn job-alert emails into canonical job records.
// It is an optional, lowest-priority provider: alerts are not query-driven,
// so results are filtered against the search keywords after parsing.
package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"

	"jobscout-engine/internal/domain"
	"jobscout-engine/internal/provider"
	"jobscout-engine/internal/provider/util"
)

const defaultMaxMessages = 25

// defaultWindowDays bounds how far back the mailbox search reaches when the
// caller didn't ask for a posted-within window.
const defaultWindowDays = 7

type Config struct {
	Host       string
	Port       int
	Username   string
	Mailbox    string
	SubjectAny []string

	// Password defers the IMAP credential lookup (keyring) to connect time.
	Password func() (string, error)

	MaxMessages int
}

type Fetcher struct {
	cfg Config
}

func New(cfg Config) *Fetcher {
	if cfg.Mailbox == "" {
		cfg.Mailbox = "INBOX"
	}
	if cfg.MaxMessages <= 0 {
		cfg.MaxMessages = defaultMaxMessages
	}
	return &Fetcher{cfg: cfg}
}

func (f *Fetcher) Name() string          { return "email" }
func (f *Fetcher) Source() domain.Source { return domain.SourceEmail }

func (f *Fetcher) Fetch(ctx context.Context, q provider.Query) ([]domain.Job, error) {
	if f.cfg.Host == "" || f.cfg.Username == "" || f.cfg.Password == nil {
		return nil, fmt.Errorf("email: %w", provider.ErrNotConfigured)
	}
	pw, err := f.cfg.Password()
	if err != nil {
		return nil, fmt.Errorf("email: imap password: %w", provider.ErrNotConfigured)
	}

	addr := fmt.Sprintf("%s:%d", f.cfg.Host, f.cfg.Port)
	c, err := imapclient.DialTLS(addr, &imapclient.Options{
		TLSConfig: &tls.Config{MinVersion: tls.VersionTLS12, ServerName: f.cfg.Host},
	})
	if err != nil {
		return nil, fmt.Errorf("imap dial tls: %w", err)
	}
	defer func() {
		_ = c.Logout().Wait()
		_ = c.Close()
	}()

	// Best-effort close on context cancel.
	go func() {
		<-ctx.Done()
		_ = c.Close()
	}()

	if err := c.Login(f.cfg.Username, pw).Wait(); err != nil {
		return nil, fmt.Errorf("imap login: %w", err)
	}

	// Read-only select: a search must never flip \Seen on the user's mail.
	if _, err := c.Select(f.cfg.Mailbox, &imap.SelectOptions{ReadOnly: true}).Wait(); err != nil {
		return nil, fmt.Errorf("imap select %s: %w", f.cfg.Mailbox, err)
	}

	windowDays := defaultWindowDays
	if q.MaxDaysOld != nil {
		windowDays = *q.MaxDaysOld
	}
	since := time.Now().AddDate(0, 0, -windowDays)

	msgs, err := f.fetchMessages(ctx, c, since)
	if err != nil {
		return nil, err
	}

	var jobs []domain.Job
	for _, m := range msgs {
		if !f.subjectMatches(m.subject) {
			continue
		}
		htmlBody := extractHTMLBody(m.raw)
		if htmlBody == "" {
			continue
		}
		parsed, err := parseAlertHTML(htmlBody)
		if err != nil {
			continue
		}
		for _, aj := range parsed {
			j, ok := f.toJob(aj, m.date, q)
			if !ok {
				continue
			}
			jobs = append(jobs, j)
			if len(jobs) >= q.MaxResults {
				return jobs, nil
			}
		}
	}
	return jobs, nil
}

type message struct {
	subject string
	date    time.Time
	raw     []byte
}

func (f *Fetcher) fetchMessages(ctx context.Context, c *imapclient.Client, since time.Time) ([]message, error) {
	criteria := &imap.SearchCriteria{Since: since}
	searchData, err := c.UIDSearch(criteria, nil).Wait()
	if err != nil {
		return nil, fmt.Errorf("imap uid search: %w", err)
	}

	uids := searchData.AllUIDs()
	if len(uids) == 0 {
		return nil, nil
	}

	// Newest first, capped.
	for i, j := 0, len(uids)-1; i < j; i, j = i+1, j-1 {
		uids[i], uids[j] = uids[j], uids[i]
	}
	if len(uids) > f.cfg.MaxMessages {
		uids = uids[:f.cfg.MaxMessages]
	}

	bodyAll := &imap.FetchItemBodySection{
		Specifier: imap.PartSpecifierNone,
		Peek:      true,
	}
	fetchCmd := c.Fetch(imap.UIDSetNum(uids...), &imap.FetchOptions{
		UID:         true,
		Envelope:    true,
		BodySection: []*imap.FetchItemBodySection{bodyAll},
	})
	defer func() { _ = fetchCmd.Close() }()

	var out []message
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		msgData := fetchCmd.Next()
		if msgData == nil {
			break
		}
		buf, err := msgData.Collect()
		if err != nil {
			return nil, fmt.Errorf("imap fetch collect: %w", err)
		}

		var m message
		if buf.Envelope != nil {
			m.subject = buf.Envelope.Subject
			m.date = buf.Envelope.Date
		}
		if b := buf.FindBodySection(bodyAll); b != nil {
			m.raw = append([]byte(nil), b...)
		}
		out = append(out, m)
	}

	if err := fetchCmd.Close(); err != nil {
		return nil, fmt.Errorf("imap fetch close: %w", err)
	}
	return out, nil
}

func (f *Fetcher) subjectMatches(subject string) bool {
	if len(f.cfg.SubjectAny) == 0 {
		return true
	}
	low := strings.ToLower(subject)
	for _, s := range f.cfg.SubjectAny {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" && strings.Contains(low, s) {
			return true
		}
	}
	return false
}

func (f *Fetcher) toJob(aj alertJob, received time.Time, q provider.Query) (domain.Job, bool) {
	title := util.CleanText(aj.Title)
	company := util.CleanText(aj.Company)
	if title == "" || company == "" {
		return domain.Job{}, false
	}
	if !keywordsMatch(q.Keywords, title) {
		return domain.Job{}, false
	}

	mode := util.InferWorkMode(title, aj.Location)
	remote := util.IsRemoteMode(mode)
	if q.RemoteOnly && !remote {
		return domain.Job{}, false
	}

	j := domain.Job{
		Title:            title,
		Company:          company,
		Location:         util.CleanText(aj.Location),
		Remote:           remote,
		WorkMode:         mode,
		Source:           domain.SourceEmail,
		URL:              aj.URL,
		CareersSearchURL: util.CareersSearchURL(company),
	}
	if !received.IsZero() {
		t := received
		j.PostedAt = &t
	}
	return j, true
}

// keywordsMatch keeps an alert job only when at least one search keyword
// appears in its title; alert emails predate the query, so this is the
// closest thing to keyword search a mailbox offers.
func keywordsMatch(keywords, title string) bool {
	low := strings.ToLower(title)
	for _, kw := range strings.Fields(strings.ToLower(keywords)) {
		if strings.Contains(low, kw) {
			return true
		}
	}
	return false
}
