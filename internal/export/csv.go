// Package export serializes final result lists. It performs no business
// logic: the list it receives is already filtered, deduplicated, and
// ordered.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"jobscout-engine/internal/domain"
)

var csvHeader = []string{
	"title",
	"company",
	"location",
	"salary_min",
	"salary_max",
	"remote",
	"work_mode",
	"posted_date",
	"source",
	"url",
	"careers_search_url",
	"description",
}

// WriteCSV writes one row per job with a fixed column order. Absent
// salary/date values become empty cells, not zeros.
func WriteCSV(w io.Writer, jobs []domain.Job) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, j := range jobs {
		row := []string{
			j.Title,
			j.Company,
			j.Location,
			intCell(j.SalaryMin),
			intCell(j.SalaryMax),
			strconv.FormatBool(j.Remote),
			j.WorkMode,
			dateCell(j.PostedAt),
			string(j.Source),
			j.URL,
			j.CareersSearchURL,
			scrub(j.Description),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Filename derives a download name from the search, e.g.
// jobs_python_developer_london_20260831.csv.
func Filename(keywords, location string, now time.Time) string {
	return fmt.Sprintf("jobs_%s_%s_%s.csv",
		safeName(keywords), safeName(location), now.Format("20060102"))
}

func safeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
		if b.Len() >= 30 {
			break
		}
	}
	return b.String()
}

func intCell(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func dateCell(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func scrub(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
