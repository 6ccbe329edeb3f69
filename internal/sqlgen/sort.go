package sqlgen

import "sort"

// SortTables returns table names in dependency order (referenced tables
// before referencing tables) using topological sort on FK relationships.
// Ties break alphabetically so the output order is stable.
func SortTables(tables map[string]*TableDef) []string {
	// Build adjacency: referenced table → referencing tables.
	children := make(map[string][]string, len(tables))
	inDegree := make(map[string]int, len(tables))
	for name := range tables {
		inDegree[name] = 0
	}
	for name, td := range tables {
		for _, fk := range td.ForeignKeys {
			if _, ok := tables[fk.RefTable]; !ok {
				continue
			}
			children[fk.RefTable] = append(children[fk.RefTable], name)
			inDegree[name]++
		}
	}

	var queue []string
	for name, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	var order []string
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		order = append(order, name)

		next := children[name]
		sort.Strings(next)
		for _, child := range next {
			inDegree[child]--
			if inDegree[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	// Tables in a reference cycle never reach degree zero; append them in
	// name order rather than dropping them.
	if len(order) < len(tables) {
		seen := make(map[string]bool, len(order))
		for _, name := range order {
			seen[name] = true
		}
		var rest []string
		for name := range tables {
			if !seen[name] {
				rest = append(rest, name)
			}
		}
		sort.Strings(rest)
		order = append(order, rest...)
	}

	return order
}
