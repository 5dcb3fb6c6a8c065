package listing

import (
	"strconv"
	"strings"
)

// Match selects how a Criterion compares its column.
type Match int

const (
	// Equal matches an exact integer id.
	Equal Match = iota
	// Prefix matches strings starting with the value.
	Prefix
)

// Criterion is one optional constraint on a column. A Criterion whose
// value is absent (nil id, empty prefix) imposes no constraint.
//
// Column is trusted SQL supplied by the repo layer, never user input.
type Criterion struct {
	Column string
	Match  Match
	value  any
}

// EqualID constrains column to id when id is non-nil.
func EqualID(column string, id *int64) Criterion {
	c := Criterion{Column: column, Match: Equal}
	if id != nil {
		c.value = *id
	}
	return c
}

// HasPrefix constrains column to values starting with prefix when prefix is non-empty.
func HasPrefix(column, prefix string) Criterion {
	c := Criterion{Column: column, Match: Prefix}
	if prefix != "" {
		c.value = prefix
	}
	return c
}

// Present reports whether the criterion constrains anything.
func (c Criterion) Present() bool {
	return c.value != nil
}

// Criteria is a conjunction of criteria, applied left to right.
type Criteria []Criterion

// Predicate is a SQL condition fragment with positional placeholders and
// the arguments to bind to them, in order.
type Predicate struct {
	SQL  string
	Args []any
}

// Build composes criteria into a fragment of " AND <column> = $n" and
// " AND <column> LIKE $n" clauses. Values are always returned as bound
// arguments. Empty criteria yield an empty fragment that matches all rows.
func Build(criteria Criteria) Predicate {
	var (
		b    strings.Builder
		args = []any{}
	)
	for _, c := range criteria {
		if !c.Present() {
			continue
		}
		args = append(args, c.arg())
		b.WriteString(" AND ")
		b.WriteString(c.Column)
		if c.Match == Prefix {
			b.WriteString(" LIKE $")
		} else {
			b.WriteString(" = $")
		}
		b.WriteString(strconv.Itoa(len(args)))
	}
	return Predicate{SQL: b.String(), Args: args}
}

func (c Criterion) arg() any {
	if c.Match == Prefix {
		return escapeLike(c.value.(string)) + "%"
	}
	return c.value
}

// likeEscaper escapes LIKE metacharacters so a prefix matches literally.
// Postgres uses backslash as the default LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
