package ast

// Walk calls fn for n and then for every node reachable through its field
// set, in field order, depth first. Returning false from fn prunes the
// subtree below that node. Walk relies only on the generic field contract,
// so new node variants need no walker changes.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, f := range n.Fields() {
		walkValue(f.Value, fn)
	}
}

func walkValue(v any, fn func(Node) bool) {
	switch v := v.(type) {
	case Node:
		Walk(v, fn)
	case []any:
		for _, el := range v {
			walkValue(el, fn)
		}
	}
}

// Count reports how many nodes Walk visits from n.
func Count(n Node) int {
	total := 0
	Walk(n, func(Node) bool {
		total++
		return true
	})
	return total
}
