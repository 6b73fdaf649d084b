package store

import "strings"

// orderClause maps the public ordering parameter to a SQL ORDER BY
// body. The whitelist is price, author_name and rating, each with an
// optional leading '-' for descending; any other value falls back to
// id order (unknown orderings are ignored, not rejected). A null
// rating sorts as the lowest value in both directions, and id breaks
// ties so the order is stable.
func orderClause(ordering string) string {
	desc := strings.HasPrefix(ordering, "-")
	field := strings.TrimPrefix(ordering, "-")

	var col string
	switch field {
	case "price":
		col = "b.price"
	case "author_name":
		col = "b.author_name"
	case "rating":
		col = "rating"
	default:
		return "b.id ASC"
	}

	dir := " ASC"
	if desc {
		dir = " DESC"
	}
	if field == "rating" {
		if desc {
			dir += " NULLS LAST"
		} else {
			dir += " NULLS FIRST"
		}
	}
	return col + dir + ", b.id ASC"
}
