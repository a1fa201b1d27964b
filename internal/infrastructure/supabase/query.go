package supabase

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/valyala/bytebufferpool"
)

// Embed selects columns of a row referenced through a foreign key,
// rendered as alias:foreign_key(col,...).
type Embed struct {
	Alias      string
	ForeignKey string
	Columns    []string
}

type Order struct {
	Column string
	Desc   bool
}

func Asc(column string) Order  { return Order{Column: column} }
func Desc(column string) Order { return Order{Column: column, Desc: true} }

type Filter struct {
	Column string
	Op     string
	Value  string
}

// Eq filters rows where column equals value.
func Eq(column string, value any) Filter {
	return Filter{Column: column, Op: "eq", Value: fmt.Sprint(value)}
}

// Query describes the select projection, ordering and row filters of one
// table request.
type Query struct {
	Columns []string
	Embeds  []Embed
	Order   []Order
	Filters []Filter
}

func (q Query) Where(filters ...Filter) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), filters...)
	return q
}

// Select renders the select parameter, "*" when no columns are given.
func (q Query) Select() string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if len(q.Columns) == 0 {
		_, _ = buf.WriteString("*")
	} else {
		_, _ = buf.WriteString(strings.Join(q.Columns, ","))
	}
	for _, embed := range q.Embeds {
		_ = buf.WriteByte(',')
		if embed.Alias != "" {
			_, _ = buf.WriteString(embed.Alias)
			_ = buf.WriteByte(':')
		}
		_, _ = buf.WriteString(embed.ForeignKey)
		_ = buf.WriteByte('(')
		if len(embed.Columns) == 0 {
			_, _ = buf.WriteString("*")
		} else {
			_, _ = buf.WriteString(strings.Join(embed.Columns, ","))
		}
		_ = buf.WriteByte(')')
	}
	return buf.String()
}

// Values encodes the query as PostgREST URL parameters.
func (q Query) Values() url.Values {
	values := url.Values{}
	values.Set("select", q.Select())
	if len(q.Order) > 0 {
		parts := make([]string, 0, len(q.Order))
		for _, o := range q.Order {
			if o.Desc {
				parts = append(parts, o.Column+".desc")
			} else {
				parts = append(parts, o.Column+".asc")
			}
		}
		values.Set("order", strings.Join(parts, ","))
	}
	for _, f := range q.Filters {
		values.Add(f.Column, f.Op+"."+f.Value)
	}
	return values
}
