package postgre

import (
	"fmt"
	"strings"

	repo "life-admin/internal/record/repository"
)

const defaultOrderBy = "created_at ASC, id ASC"

// orderings whitelists the ORDER BY clauses ListOptions may ask for.
var orderings = map[string]string{
	"created_at":      "created_at ASC, id ASC",
	"created_at_desc": "created_at DESC, id DESC",
	"title":           "title ASC, id ASC",
}

// buildListQuery builds the WHERE + ORDER + LIMIT + OFFSET clause for List.
func (r *implRepository) buildListQuery(opt repo.ListOptions) (string, []any) {
	var parts []string
	conditions := []string{"user_id = $1"}
	args := []any{opt.UserID}
	idx := 2

	if opt.Completed != nil {
		conditions = append(conditions, fmt.Sprintf("is_completed = $%d", idx))
		args = append(args, *opt.Completed)
		idx++
	}
	parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))

	orderBy, ok := orderings[opt.OrderBy]
	if !ok {
		orderBy = defaultOrderBy
	}
	parts = append(parts, "ORDER BY "+orderBy)

	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
	}
	if opt.Offset > 0 {
		parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
		args = append(args, opt.Offset)
	}

	return strings.Join(parts, " "), args
}
