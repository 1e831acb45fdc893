package postgres

import (
	"fmt"
	"strings"
	"time"
)

// setBuilder accumulates SET clauses for a partial update. Only columns
// explicitly added are touched; everything else keeps its stored value.
type setBuilder struct {
	sets []string
	args []interface{}
}

func (b *setBuilder) add(column string, value interface{}) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// build finalizes the statement, stamping updated_at and appending the id
// predicate.
func (b *setBuilder) build(table string, id int64) (string, []interface{}) {
	b.add("updated_at", time.Now())
	b.args = append(b.args, id)
	query := fmt.Sprintf(
		"UPDATE %s SET %s WHERE id = $%d",
		table,
		strings.Join(b.sets, ", "),
		len(b.args),
	)
	return query, b.args
}
