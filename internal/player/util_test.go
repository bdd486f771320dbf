package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseArgs(t *testing.T) {
	assert.Nil(t, ParseArgs(""))
	assert.Equal(t, []string{"--fullscreen"}, ParseArgs("--fullscreen"))
	assert.Equal(t, []string{"--vo=gpu", "--hwdec=auto"}, ParseArgs("--vo=gpu --hwdec=auto"))
	assert.Equal(t, []string{"--title=my video"}, ParseArgs(`--title="my video"`))
}
