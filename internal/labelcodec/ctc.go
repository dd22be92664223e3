package labelcodec

// Collapse reduces greedy CTC paths to label sequences.
//
// For every item, runs of the same label are merged and Blank labels are
// dropped, so [0 2 2 0 3 3 4] becomes [2 3 4] while [2 0 2] keeps both 2s.
// The same length checks as Decode apply.
func Collapse(labels, lengths []int32) (Batch, error) {
	if err := checkLengths(labels, lengths); err != nil {
		return Batch{}, err
	}

	out := Batch{
		Labels:  make([]int32, 0, len(labels)),
		Lengths: make([]int32, 0, len(lengths)),
	}
	start := 0
	for _, length := range lengths {
		end := start + int(length)
		n := int32(0)
		prev := Blank
		for _, label := range labels[start:end] {
			if label != Blank && label != prev {
				out.Labels = append(out.Labels, label)
				n++
			}
			prev = label
		}
		out.Lengths = append(out.Lengths, n)
		start = end
	}
	return out, nil
}
