package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow(t *testing.T) {
	d, err := ParseString(htm)
	require.NoError(t, err)
	w := NewWindow("https://example.com/a/b?q=1#top", d, WithName("main"), WithScreen(10, 20))

	assert.Same(t, w, d.DefaultView())
	assert.Same(t, d, w.Document())
	assert.Equal(t, "https://example.com/a/b?q=1#top", d.URL())
	assert.Equal(t, "#top", d.Location().Hash)

	name, err := w.Name()
	require.NoError(t, err)
	assert.Equal(t, "main", name)
	w.SetName("other")
	name, _ = w.Name()
	assert.Equal(t, "other", name)

	x, err := w.ScreenX()
	require.NoError(t, err)
	assert.EqualValues(t, 10, x.ToInteger())
	y, err := w.ScreenY()
	require.NoError(t, err)
	assert.EqualValues(t, 20, y.ToInteger())

	ow, err := w.OuterWidth()
	require.NoError(t, err)
	assert.EqualValues(t, 1024, ow.ToInteger())
	w.ResizeTo(800, 600)
	oh, err := w.OuterHeight()
	require.NoError(t, err)
	assert.EqualValues(t, 600, oh.ToInteger())

	w.ScrollTo(-5, 42.5)
	sx, err := w.ScrollX()
	require.NoError(t, err)
	assert.Equal(t, 0.0, sx)
	sy, err := w.PageYOffset()
	require.NoError(t, err)
	assert.Equal(t, 42.5, sy)
	px, _ := w.PageXOffset()
	assert.Equal(t, sx, px)
}

func TestClosedWindow(t *testing.T) {
	d, err := ParseString(htm)
	require.NoError(t, err)
	w := NewWindow("https://example.com", d)
	w.Close()

	assert.True(t, w.Closed())
	assert.Nil(t, w.Document())
	assert.Nil(t, d.DefaultView())
	assert.Nil(t, d.Location())

	var de *DOMError
	_, err = w.Name()
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "InvalidStateError", de.Name)
	_, err = w.ScrollY()
	assert.ErrorAs(t, err, &de)
	_, err = w.OuterWidth()
	assert.ErrorAs(t, err, &de)
}

func TestDocumentWithoutWindow(t *testing.T) {
	d, err := ParseString("<p>x</p>")
	require.NoError(t, err)
	assert.Nil(t, d.DefaultView())
	assert.Nil(t, d.Location())
	assert.Equal(t, "about:blank", d.URL())
	assert.NotNil(t, d.Body())
	assert.NotNil(t, d.Head())
}
