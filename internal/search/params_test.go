package search

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(v int) *int { return &v }

func TestParamsNormalize(t *testing.T) {
	p := Params{Keywords: "  go developer  "}
	p.Normalize()

	assert.Equal(t, "go developer", p.Keywords)
	assert.Equal(t, DefaultLocation, p.Location)
	assert.Equal(t, DefaultMaxResults, p.MaxResults)

	p = Params{Keywords: "go", Location: " Manchester ", MaxResults: 10}
	p.Normalize()
	assert.Equal(t, "Manchester", p.Location)
	assert.Equal(t, 10, p.MaxResults)
}

func TestParamsValidate(t *testing.T) {
	valid := func() Params {
		p := Params{Keywords: "go developer"}
		p.Normalize()
		return p
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*Params)
		problem string
	}{
		{
			name:    "empty keywords",
			mutate:  func(p *Params) { p.Keywords = "" },
			problem: "keywords is required",
		},
		{
			name:    "max_results above cap",
			mutate:  func(p *Params) { p.MaxResults = MaxResultsCap + 1 },
			problem: "max_results",
		},
		{
			name:    "max_results negative",
			mutate:  func(p *Params) { p.MaxResults = -1 },
			problem: "max_results",
		},
		{
			name:    "negative min_salary",
			mutate:  func(p *Params) { p.MinSalary = intp(-1) },
			problem: "min_salary",
		},
		{
			name:    "max_days_old above cap",
			mutate:  func(p *Params) { p.MaxDaysOld = intp(MaxDaysOldCap + 1) },
			problem: "max_days_old",
		},
		{
			name:    "max_days_old zero",
			mutate:  func(p *Params) { p.MaxDaysOld = intp(0) },
			problem: "max_days_old",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(&p)
			err := p.Validate()

			var ipe *InvalidParamsError
			require.ErrorAs(t, err, &ipe)
			assert.Contains(t, ipe.Error(), tt.problem)
		})
	}

	t.Run("all problems reported together", func(t *testing.T) {
		p := Params{Keywords: "", MaxResults: 500, MinSalary: intp(-5)}
		err := p.Validate()

		var ipe *InvalidParamsError
		require.ErrorAs(t, err, &ipe)
		assert.Len(t, ipe.Problems, 3)
	})
}

func TestInvalidParamsErrorIsNotAllProvidersFailed(t *testing.T) {
	err := (Params{}).Validate()
	assert.False(t, errors.Is(err, ErrAllProvidersFailed))
}
