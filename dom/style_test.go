package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKebab(t *testing.T) {
	assert.Equal(t, "background-color", kebab("backgroundColor"))
	assert.Equal(t, "font-weight", kebab("font-weight"))
	assert.Equal(t, "color", kebab("color"))
}

func TestElementStyle(t *testing.T) {
	d := newDoc(t)
	p, ok := byId(t, d, "demo").AsHTMLElement()
	require.True(t, ok)
	s := p.Style()

	assert.Equal(t, 1, s.Length())
	assert.Equal(t, "bold", s.GetPropertyValue("font-weight"))
	assert.Equal(t, "bold", s.GetPropertyValue("fontWeight"))
	assert.Equal(t, "", s.GetPropertyValue("color"))

	require.NoError(t, s.SetProperty("display", "none"))
	assert.Equal(t, "none", s.GetPropertyValue("display"))
	assert.Equal(t, "font-weight: bold; display: none;", s.CSSText())

	require.NoError(t, s.SetProperty("font-weight", "normal"))
	assert.Equal(t, "font-weight: normal; display: none;", s.CSSText())

	assert.Equal(t, "normal", s.RemoveProperty("fontWeight"))
	assert.Equal(t, "", s.RemoveProperty("fontWeight"))
	assert.Equal(t, "display: none;", s.CSSText())

	require.NoError(t, s.SetProperty("display", ""))
	assert.Equal(t, 0, s.Length())
}

func TestSetPropertyRejected(t *testing.T) {
	d := newDoc(t)
	p, _ := byId(t, d, "demo").AsHTMLElement()
	s := p.Style()

	var de *DOMError
	require.ErrorAs(t, s.SetProperty("no-such-thing", "1"), &de)
	assert.Equal(t, "SyntaxError", de.Name)
	require.ErrorAs(t, s.SetProperty("color", "red; display: none"), &de)
	assert.Equal(t, "bold", s.GetPropertyValue("font-weight"))
	assert.Equal(t, "", s.GetPropertyValue("display"))

	require.NoError(t, s.SetProperty("--main", "blue"))
	assert.Equal(t, "blue", s.GetPropertyValue("--main"))
}

func TestParseStyle(t *testing.T) {
	ds := parseStyle("color: red; COLOR: blue; margin: 0")
	assert.Equal(t, []declaration{{k: "color", v: "blue"}, {k: "margin", v: "0"}}, ds)
	assert.Empty(t, parseStyle(""))
}
