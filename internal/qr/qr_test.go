package qr

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const repo = "https://github.com/Cadecraft/rical"

func TestText(t *testing.T) {
	out, err := Text(repo)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.NotEmpty(t, lines)
	width := len([]rune(lines[0]))
	for i, l := range lines {
		assert.Equal(t, width, len([]rune(l)), "line %d", i)
	}
	assert.Contains(t, out, "█")
	for _, r := range out {
		assert.Contains(t, " █▀▄\n", string(r))
	}
}

func TestText_Empty(t *testing.T) {
	_, err := Text("")
	assert.Error(t, err)
}

func TestPNG(t *testing.T) {
	data, err := PNG(repo, 128)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}
