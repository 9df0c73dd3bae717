package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobscout-engine/internal/domain"
)

func TestWriteCSV(t *testing.T) {
	posted := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	smin, smax := 30000, 40000

	jobs := []domain.Job{
		{
			Title: "Python Developer", Company: "Acme", Location: "London",
			SalaryMin: &smin, SalaryMax: &smax,
			Remote: true, WorkMode: "remote",
			PostedAt: &posted, Source: domain.SourceAdzuna,
			URL:         "https://example.com/job/1",
			Description: "Build things.\nShip them.",
		},
		{
			Title: "Data Analyst", Company: "Beta Ltd", Location: "Leeds",
			Source: domain.SourceReed,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, jobs))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, csvHeader, rows[0])

	first := rows[1]
	assert.Equal(t, "Python Developer", first[0])
	assert.Equal(t, "30000", first[3])
	assert.Equal(t, "40000", first[4])
	assert.Equal(t, "true", first[5])
	assert.Equal(t, "2026-08-30", first[7])
	assert.Equal(t, "adzuna", first[8])
	assert.Equal(t, "Build things. Ship them.", first[11], "newlines scrubbed from description")

	second := rows[2]
	assert.Equal(t, "", second[3], "absent salary is an empty cell")
	assert.Equal(t, "", second[7], "absent date is an empty cell")
	assert.Equal(t, "false", second[5])
}

func TestWriteCSVHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "jobs_python_developer_london_20260831.csv",
		Filename("Python Developer", "London", now))
	assert.Equal(t, "jobs_c___engineer_new_york_20260831.csv",
		Filename("C++ Engineer", "New York", now))

	long := Filename("a very long keyword string that keeps going and going", "london", now)
	assert.LessOrEqual(t, len(long), len("jobs_")+30+1+30+len("_20260831.csv"))
}
