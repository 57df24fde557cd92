package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(d *Document) (ms []Mutation) {
	for {
		select {
		case m := <-d.Mutations():
			ms = append(ms, m)
		default:
			return
		}
	}
}

func TestMutations(t *testing.T) {
	d := newDoc(t)
	require.Empty(t, drain(d), "parsing records nothing")

	p := byId(t, d, "demo")
	p.SetClassName("bar baz")
	require.NoError(t, p.RemoveAttribute("style"))
	b := d.CreateElement("b")
	_, err := p.AppendChild(b.Node)
	require.NoError(t, err)
	_, err = p.RemoveChild(b.Node)
	require.NoError(t, err)

	ms := drain(d)
	require.Len(t, ms, 4)
	assert.Equal(t, ChAttr, ms[0].Type)
	assert.Equal(t, "p", ms[0].Tag)
	assert.Equal(t, "bar baz", ms[0].Node["class"])
	assert.Equal(t, "/0/1", ms[0].Path)
	assert.Equal(t, RmAttr, ms[1].Type)
	assert.Equal(t, Insert, ms[2].Type)
	assert.Equal(t, "b", ms[2].Tag)
	assert.Equal(t, "/0/1/1", ms[2].Path)
	assert.Equal(t, Rm, ms[3].Type)
	assert.Equal(t, "Insert", Insert.String())
}

func TestPath(t *testing.T) {
	d := newDoc(t)
	pth, ok := path(byId(t, d, "s2").Raw())
	assert.True(t, ok)
	assert.Equal(t, "/0/2/1", pth)

	_, ok = path(d.CreateElement("p").Raw())
	assert.False(t, ok)
}
