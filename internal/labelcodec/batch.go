package labelcodec

// Batch is an encoded batch: the labels of all items concatenated, and the
// number of labels each item contributed.
type Batch struct {
	Labels  []int32
	Lengths []int32
}

// Len returns the number of items in the batch.
func (b Batch) Len() int {
	return len(b.Lengths)
}

// Validate checks that Lengths are non-negative and sum to len(Labels).
func (b Batch) Validate() error {
	return checkLengths(b.Labels, b.Lengths)
}

// Item returns the labels of the i-th item. It panics if i is out of range
// or the batch is invalid.
func (b Batch) Item(i int) []int32 {
	start := 0
	for _, length := range b.Lengths[:i] {
		start += int(length)
	}
	return b.Labels[start : start+int(b.Lengths[i])]
}
