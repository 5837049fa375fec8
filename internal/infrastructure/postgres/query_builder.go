package postgres

import (
	"fmt"
	"strings"
)

// Statement is a SQL text with its positional parameters.
// Args[i] binds placeholder $i+1.
type Statement struct {
	SQL  string
	Args []any
}

type predicate struct {
	column string
	op     string
	value  any
}

// selectBuilder folds ordered predicates into a single SELECT.
// WHERE predicates are applied before GROUP BY, HAVING predicates after it,
// and placeholders are numbered in the order values are appended.
type selectBuilder struct {
	base    string
	where   []predicate
	groupBy string
	having  []predicate
	orderBy string
	limit   int
}

func newSelect(base string) *selectBuilder {
	return &selectBuilder{base: base}
}

func (b *selectBuilder) Where(column, op string, value any) *selectBuilder {
	b.where = append(b.where, predicate{column: column, op: op, value: value})
	return b
}

func (b *selectBuilder) GroupBy(expr string) *selectBuilder {
	b.groupBy = expr
	return b
}

func (b *selectBuilder) Having(expr, op string, value any) *selectBuilder {
	b.having = append(b.having, predicate{column: expr, op: op, value: value})
	return b
}

func (b *selectBuilder) OrderBy(expr string) *selectBuilder {
	b.orderBy = expr
	return b
}

func (b *selectBuilder) Limit(n int) *selectBuilder {
	b.limit = n
	return b
}

func (b *selectBuilder) Build() Statement {
	var sb strings.Builder
	args := make([]any, 0, len(b.where)+len(b.having)+1)

	sb.WriteString(b.base)
	args = appendClause(&sb, "WHERE", b.where, args)
	if b.groupBy != "" {
		sb.WriteString("\nGROUP BY ")
		sb.WriteString(b.groupBy)
	}
	args = appendClause(&sb, "HAVING", b.having, args)
	if b.orderBy != "" {
		sb.WriteString("\nORDER BY ")
		sb.WriteString(b.orderBy)
	}
	args = append(args, b.limit)
	fmt.Fprintf(&sb, "\nLIMIT $%d", len(args))

	return Statement{SQL: sb.String(), Args: args}
}

func appendClause(sb *strings.Builder, keyword string, preds []predicate, args []any) []any {
	for i, p := range preds {
		args = append(args, p.value)
		if i == 0 {
			sb.WriteString("\n" + keyword + " ")
		} else {
			sb.WriteString(" AND ")
		}
		fmt.Fprintf(sb, "%s %s $%d", p.column, p.op, len(args))
	}
	return args
}
