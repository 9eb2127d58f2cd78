package graph

/**
 * section.go - locate a window's block inside flat page text
 */

import (
	"strings"
)

/**
 * ExtractSection returns the part of flat that belongs to window w.
 *
 * The section starts at the first occurrence of the window label and ends
 * where the nearest other window label follows, or at the end of the text.
 * Labels may come in any order. Returns "" if the label is not present.
 */
func ExtractSection(flat string, w Window) string {

	label := w.Label()
	if label == "" {
		return ""
	}

	start := strings.Index(flat, label)
	if start < 0 {
		return ""
	}

	from := start + len(label)
	end := len(flat)

	for _, other := range Windows {
		if other == w {
			continue
		}
		idx := strings.Index(flat[from:], other.Label())
		if idx >= 0 && from+idx < end {
			end = from + idx
		}
	}

	return flat[start:end]
}
