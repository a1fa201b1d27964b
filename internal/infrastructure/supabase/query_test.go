package supabase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuerySelect(t *testing.T) {
	q := Query{
		Embeds: []Embed{
			{Alias: "player", ForeignKey: "player_id", Columns: []string{"id", "name"}},
			{Alias: "event", ForeignKey: "event_id", Columns: []string{"id", "name"}},
		},
	}
	assert.Equal(t, "*,player:player_id(id,name),event:event_id(id,name)", q.Select())
	assert.Equal(t, "id,name", Query{Columns: []string{"id", "name"}}.Select())
}

func TestQueryValues(t *testing.T) {
	values := Query{Order: []Order{Asc("name"), Desc("id")}}.Where(Eq("id", 7)).Values()

	assert.Equal(t, "*", values.Get("select"))
	assert.Equal(t, "name.asc,id.desc", values.Get("order"))
	assert.Equal(t, "eq.7", values.Get("id"))
}

func TestQueryWhere_DoesNotAliasFilters(t *testing.T) {
	base := Query{Filters: make([]Filter, 0, 4)}
	a := base.Where(Eq("id", 1))
	b := base.Where(Eq("id", 2))

	assert.Equal(t, "1", a.Filters[0].Value)
	assert.Equal(t, "2", b.Filters[0].Value)
}
