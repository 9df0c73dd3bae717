package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testFiller = []string{
	"a", "an", "the", "and", "or",
	"junior", "senior", "jr", "sr", "graduate", "entry", "level", "lead",
}

func TestTitleTokens(t *testing.T) {
	n := NewNormalizer(testFiller)

	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{
			name:  "lowercases and splits",
			title: "Python Developer",
			want:  []string{"python", "developer"},
		},
		{
			name:  "punctuation separates words",
			title: "DevOps/SRE Engineer (Platform)",
			want:  []string{"devops", "sre", "engineer", "platform"},
		},
		{
			name:  "filler words dropped",
			title: "Senior Python Developer",
			want:  []string{"python", "developer"},
		},
		{
			name:  "hyphenated qualifier dropped",
			title: "Entry-Level Data Engineer",
			want:  []string{"data", "engineer"},
		},
		{
			name:  "duplicates collapse",
			title: "Go Developer / Go Engineer",
			want:  []string{"go", "developer", "engineer"},
		},
		{
			name:  "all filler yields empty set",
			title: "Senior Lead",
			want:  nil,
		},
		{
			name:  "empty title",
			title: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.TitleTokens(tt.title)
			assert.Len(t, got, len(tt.want))
			for _, w := range tt.want {
				assert.Contains(t, got, w)
			}
		})
	}
}

func TestCompanyKey(t *testing.T) {
	n := NewNormalizer(nil)

	assert.Equal(t, "acme corp", n.CompanyKey("  Acme   Corp "))
	assert.Equal(t, "acme", n.CompanyKey("ACME"))
	assert.Equal(t, "", n.CompanyKey("   "))
}
