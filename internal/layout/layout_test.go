package layout

import (
	"testing"

	"git.home.luguber.info/inful/docgarden/internal/component"
	"git.home.luguber.info/inful/docgarden/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompose_OverrideReplacesSlot(t *testing.T) {
	a, b, c := &component.Footer{}, &component.TagList{}, &component.MediaMeta{}

	r := Compose(Spec{SlotRight: {a, b}}, nil, Spec{SlotRight: {c}})
	assert.Equal(t, []component.Component{c}, r.Slot(SlotRight))
}

func TestCompose_InheritsUndefinedSlots(t *testing.T) {
	head, body := &component.Head{}, &component.Content{}

	r := Compose(Spec{SlotHead: {head}}, Spec{SlotBody: {body}}, nil)
	assert.Equal(t, []component.Component{head}, r.Slot(SlotHead))
	assert.Equal(t, []component.Component{body}, r.Slot(SlotBody))
	assert.False(t, r.Defined(SlotLeft))
}

func TestCompose_EmptyOverrideRemoves(t *testing.T) {
	recent := &component.RecentNotes{}

	r := Compose(nil, Spec{SlotRight: {recent}}, Spec{SlotRight: {}})
	assert.True(t, r.Defined(SlotRight))
	assert.Empty(t, r.Slot(SlotRight))
	assert.Empty(t, r.Components())
}

func TestComponents_OrderAndDedupe(t *testing.T) {
	head, footer := &component.Head{}, &component.Footer{}
	title, body, tags := &component.ArticleTitle{}, &component.Content{}, &component.TagList{}

	r := Compose(
		Spec{SlotFooter: {footer}, SlotHead: {head}},
		Spec{SlotRight: {tags, title}, SlotBody: {body}, SlotBeforeBody: {title, tags}},
		nil,
	)
	assert.Equal(t, []component.Component{head, title, tags, body, footer}, r.Components())
}

func TestComponents_IdentityNotType(t *testing.T) {
	first, second := &component.Footer{}, &component.Footer{}

	r := Compose(Spec{SlotLeft: {first}, SlotRight: {second}}, nil, nil)
	assert.Len(t, r.Components(), 2)
}

func TestDefaults(t *testing.T) {
	cfg := config.Default()
	cfg.Site.FooterLinks = map[string]string{"Home": "/"}
	l := Defaults(cfg)

	content := l.ContentPage(nil)
	require.Len(t, content.Slot(SlotBeforeBody), 4)
	assert.IsType(t, &component.ArticleTitle{}, content.Slot(SlotBeforeBody)[0])
	assert.IsType(t, &component.RecentNotes{}, content.Slot(SlotRight)[0])
	assert.IsType(t, &component.Content{}, content.Slot(SlotBody)[0])
	assert.IsType(t, &component.Head{}, content.Slot(SlotHead)[0])

	list := l.ListPage(nil)
	assert.IsType(t, &component.Timeline{}, list.Slot(SlotBody)[0])
	assert.Same(t, content.Slot(SlotBeforeBody)[0], list.Slot(SlotBeforeBody)[0])
	assert.False(t, list.Defined(SlotRight))

	footer, ok := list.Slot(SlotFooter)[0].(*component.Footer)
	require.True(t, ok)
	assert.Equal(t, "/", footer.Links["Home"])
}
