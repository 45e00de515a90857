package fptree

// enumeratePath emits base unioned with every non-empty subset of
// path, all at the same support. The empty subset is skipped because
// the caller already emitted base itself. A chain of length k yields
// 2^k - 1 itemsets in place of k further levels of recursive tree
// construction.
func enumeratePath(path, base []int32, count int, emit Emit) error {
	return enumerate(path, 0, base, false, count, emit)
}

func enumerate(path []int32, idx int, cur []int32, took bool, count int, emit Emit) error {
	if idx == len(path) {
		if !took {
			return nil
		}
		return emit(cur, count)
	}
	if err := enumerate(path, idx+1, cur, took, count, emit); err != nil {
		return err
	}
	return enumerate(path, idx+1, append(cur, path[idx]), true, count, emit)
}
