package cache

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/help-me-shop/internal/utils"
)

// Query identifies one cacheable read: the name of the query and its
// arguments in call order.
type Query struct {
	Name string
	Args []string
}

// NewQuery builds a Query from a name and its ordered arguments.
func NewQuery(name string, args ...string) Query {
	return Query{Name: name, Args: args}
}

// Key returns the deterministic cache key of q. Arguments that parse as UUIDs
// are normalised to their dash-free hex form first, so the same id in any
// textual form yields the same key. Arguments are quoted, which keeps
// ("a,b") and ("a", "b") apart.
func (q Query) Key() string {
	var b strings.Builder
	b.WriteString(q.Name)
	b.WriteByte('(')
	for i, arg := range q.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(utils.NormalizeUUID(arg)))
	}
	b.WriteByte(')')

	return b.String()
}

// tags returns the normalised identifiers an entry for q is indexed by: its
// own arguments followed by extra, without duplicates or empty values.
func (q Query) tags(extra []string) []string {
	seen := make(map[string]struct{}, len(q.Args)+len(extra))
	tags := make([]string, 0, len(q.Args)+len(extra))
	for _, list := range [][]string{q.Args, extra} {
		for _, raw := range list {
			tag := utils.NormalizeUUID(raw)
			if tag == "" {
				continue
			}
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}

	return tags
}
