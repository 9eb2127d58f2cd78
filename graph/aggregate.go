package graph

/**
 * aggregate.go - assemble per-window statistics for an interface
 */

/**
 * Aggregate builds the result for iface from flat page text.
 * Windows are processed independently; a missing section leaves
 * only that window nil.
 */
func Aggregate(flat string, iface string) *Result {

	result := &Result{Interface: iface}

	for _, w := range Windows {

		section := ExtractSection(flat, w)
		if section == "" {
			continue
		}

		stats := ParseSection(section)
		result.set(w, &stats)
	}

	return result
}

/**
 * Parse flattens an html graph page and aggregates it
 */
func Parse(document string, iface string) *Result {
	return Aggregate(Flatten(document), iface)
}
