package usikit_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/usikit"
	"github.com/aretw0/usikit/pkg/message"
)

type corpus struct {
	Canonical struct {
		Director    []string `yaml:"director"`
		Participant []string `yaml:"participant"`
	} `yaml:"canonical"`
	Junk []string `yaml:"junk"`
}

func loadCorpus(t *testing.T) corpus {
	t.Helper()
	raw, err := os.ReadFile("testdata/corpus.yaml")
	require.NoError(t, err)
	var c corpus
	require.NoError(t, yaml.Unmarshal(raw, &c))
	require.NotEmpty(t, c.Canonical.Director)
	require.NotEmpty(t, c.Canonical.Participant)
	return c
}

// Serialization is idempotent over canonical lines: parse then String gives
// the line back byte-for-byte, and no canonical line falls through to
// Unknown.
func TestCorpus_IdempotentSerialization(t *testing.T) {
	c := loadCorpus(t)

	for _, line := range c.Canonical.Director {
		t.Run("director/"+line, func(t *testing.T) {
			msg, err := usikit.ParseDirector(line + "\n")
			require.NoError(t, err)
			_, unknown := msg.(message.Unknown)
			assert.False(t, unknown, "canonical line classified as unknown")
			assert.Equal(t, line, msg.String())
		})
	}
	for _, line := range c.Canonical.Participant {
		t.Run("participant/"+line, func(t *testing.T) {
			msg, err := usikit.ParseParticipant(line + "\n")
			require.NoError(t, err)
			_, unknown := msg.(message.Unknown)
			assert.False(t, unknown, "canonical line classified as unknown")
			assert.Equal(t, line, msg.String())
		})
	}
}

// Junk lines classify as Unknown in both directions and come back verbatim.
func TestCorpus_JunkIsUnknownBothWays(t *testing.T) {
	c := loadCorpus(t)

	for _, line := range c.Junk {
		t.Run(line, func(t *testing.T) {
			d, err := usikit.ParseDirector(line + "\n")
			require.NoError(t, err)
			assert.Equal(t, message.Unknown{Text: line}, d)

			p, err := usikit.ParseParticipant(line + "\n")
			require.NoError(t, err)
			assert.Equal(t, message.Unknown{Text: line}, p)
		})
	}
}

// Parsing in the wrong direction never panics either; a participant line
// fed to the director side is just Unknown.
func TestCorpus_WrongDirectionIsTotal(t *testing.T) {
	c := loadCorpus(t)

	for _, line := range c.Canonical.Participant {
		_, err := usikit.ParseDirector(line + "\n")
		assert.NoError(t, err, line)
	}
	for _, line := range c.Canonical.Director {
		_, err := usikit.ParseParticipant(line + "\n")
		assert.NoError(t, err, line)
	}
}
