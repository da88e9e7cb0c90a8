package repository

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching term as a literal substring.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// showCount is a correlated subquery counting the shows whose fk column points
// at parent. Upcoming means start_time >= now.
func showCount(fk, parent string, upcoming bool, now time.Time, alias string) sq.Sqlizer {
	op := "<"
	if upcoming {
		op = ">="
	}
	return sq.Expr(
		"(SELECT COUNT(*) FROM shows s WHERE s."+fk+" = "+parent+" AND s.start_time "+op+" ?) AS "+alias,
		now,
	)
}
