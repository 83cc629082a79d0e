package dbx

import (
	"fmt"
	"strings"
)

// Where accumulates AND-ed conditions with PostgreSQL positional
// parameters. Conditions are written with '?' markers which are numbered
// in the order they are added:
//
//	var w dbx.Where
//	w.Add("user_id = ?", userID)
//	w.Add("mood = ?", mood)
//	q := "SELECT ... FROM journals" + w.SQL() // " WHERE user_id = $1 AND mood = $2"
//	rows, err := db.QueryContext(ctx, q, w.Args()...)
type Where struct {
	conds []string
	args  []any
}

// Add appends cond, binding one argument per '?' in cond.
func (w *Where) Add(cond string, args ...any) {
	if n := strings.Count(cond, "?"); n != len(args) {
		panic(fmt.Sprintf("dbx: %d placeholders but %d args in %q", n, len(args), cond))
	}
	for _, a := range args {
		w.args = append(w.args, a)
		cond = strings.Replace(cond, "?", fmt.Sprintf("$%d", len(w.args)), 1)
	}
	w.conds = append(w.conds, cond)
}

// AddIf calls Add only when ok is true.
func (w *Where) AddIf(ok bool, cond string, args ...any) {
	if ok {
		w.Add(cond, args...)
	}
}

// SQL renders " WHERE a AND b", or "" when no condition was added.
func (w *Where) SQL() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// Args returns the bound arguments in placeholder order.
func (w *Where) Args() []any {
	return w.args
}

// Next returns the placeholder the next bound argument would get, for
// clauses appended after the WHERE (LIMIT, OFFSET).
func (w *Where) Next() string {
	return fmt.Sprintf("$%d", len(w.args)+1)
}

// Contains builds an ILIKE pattern matching q anywhere, with LIKE
// metacharacters in q escaped.
func Contains(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(q) + "%"
}

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}
