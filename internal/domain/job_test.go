package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourcePriority(t *testing.T) {
	assert.Less(t, SourceAdzuna.Priority(), SourceReed.Priority())
	assert.Less(t, SourceReed.Priority(), SourceEmail.Priority())
	assert.Equal(t, len(Sources()), Source("mystery").Priority(), "unknown sources sort last")
}

func TestSourcesIsACopy(t *testing.T) {
	s := Sources()
	s[0] = Source("tampered")
	assert.Equal(t, SourceAdzuna, Sources()[0])
}
