package util

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestTruncateString(t *testing.T) {
	assert.Equal(t, "short", TruncateString("short", 20))
	assert.Equal(t, "a long fil...", TruncateString("a long file name.mkv", 13))
}

func TestPadToWidth(t *testing.T) {
	assert.Equal(t, "abc       ", PadToWidth("abc", 10))
	assert.Equal(t, 10, runewidth.StringWidth(PadToWidth("双幅文字のタイトル.mkv", 10)))
}

func TestFormatFileSize(t *testing.T) {
	assert.Equal(t, "512 B", FormatFileSize(512))
	assert.Equal(t, "1.5 KiB", FormatFileSize(1536))
	assert.Equal(t, "2.0 GiB", FormatFileSize(2*1024*1024*1024))
}
