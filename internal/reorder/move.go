package reorder

// Move 返回把 items[from] 取出后插入到 to 位置的新切片, 其余元素相对顺序不变.
// to 超出范围时放到末尾; from 非法时原样返回一份拷贝.
func Move[T any](items []T, from, to int) []T {
	out := make([]T, 0, len(items))
	if from < 0 || from >= len(items) {
		return append(out, items...)
	}

	moved := items[from]
	out = append(out, items[:from]...)
	out = append(out, items[from+1:]...)

	if to < 0 {
		to = 0
	}
	if to > len(out) {
		to = len(out)
	}

	var zero T
	out = append(out, zero)
	copy(out[to+1:], out[to:])
	out[to] = moved
	return out
}

// Labels 返回 1..n 的序号, 用于重新编号
func Labels(n int) []int {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i + 1
	}
	return labels
}
