package track

// Run is a maximal stretch of consecutive items sharing one predicate value.
// Items is a view into the partitioned slice, not a copy.
type Run[T any] struct {
	Match bool
	Items []T
}

// PartitionBy splits items into ordered maximal runs of equal predicate
// results. Adjacent runs always carry opposite Match values.
func PartitionBy[T any](items []T, pred func(T) bool) []Run[T] {
	if len(items) == 0 {
		return nil
	}

	var runs []Run[T]
	start := 0
	current := pred(items[0])

	for i := 1; i < len(items); i++ {
		if match := pred(items[i]); match != current {
			runs = append(runs, Run[T]{Match: current, Items: items[start:i]})
			start = i
			current = match
		}
	}

	return append(runs, Run[T]{Match: current, Items: items[start:]})
}
