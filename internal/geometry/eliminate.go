package geometry

// EliminateHole splices the rightmost hole into outer through a mutually
// visible vertex and removes the consumed hole from holes. The merged ring is
// freshly allocated and never aliases outer's storage.
func EliminateHole(outer Ring, holes *[]Ring) (Ring, error) {
	if err := outer.Validate(); err != nil {
		return nil, err
	}
	if holes == nil || len(*holes) == 0 {
		return nil, ErrNoHoles
	}

	holeIndex := RightmostRingIndex(*holes)
	hole := (*holes)[holeIndex]
	if err := hole.Validate(); err != nil {
		return nil, err
	}

	visibleIndex, err := MutuallyVisibleVertex(outer, *holes)
	if err != nil {
		return nil, err
	}

	anchor := RightmostVertexIndex(hole)
	n := len(hole)

	merged := make(Ring, 0, len(outer)+n+2)
	for i, v := range outer {
		merged = append(merged, v)
		if i != visibleIndex {
			continue
		}

		// Splice the hole in, starting at its rightmost vertex. Index 0 is
		// skipped on the wrap so a ring-closing duplicate of the first
		// vertex is not emitted twice; when the anchor itself is index 0
		// the full ring is emitted and the extra wrap step re-closes the
		// loop. The output ring must contain no consecutive equal vertices
		// other than the intentional bridge duplicate.
		if anchor != 0 {
			for j := 0; j <= n; j++ {
				k := (anchor + j) % n
				if k == 0 {
					continue
				}
				merged = append(merged, hole[k])
			}
		} else {
			for j := 0; j <= n; j++ {
				merged = append(merged, hole[j%n])
			}
		}

		// Return to the visible vertex to close the bridge.
		merged = append(merged, v)
	}

	*holes = append((*holes)[:holeIndex], (*holes)[holeIndex+1:]...)

	return merged, nil
}

// EliminateAllHoles repeatedly splices the rightmost remaining hole into the
// outer boundary until none remain, one hole per pass. Eliminating zero holes
// returns the outer ring unchanged. The caller's hole slice is not modified.
func EliminateAllHoles(outer Ring, holes []Ring) (Ring, error) {
	remaining := make([]Ring, len(holes))
	copy(remaining, holes)

	result := outer
	for len(remaining) > 0 {
		var err error
		result, err = EliminateHole(result, &remaining)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}
