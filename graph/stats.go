package graph

/**
 * stats.go - extracted statistics model
 */

/**
 * StatTriple holds max / average / current for one direction.
 * Values are kept as the device printed them, unit included.
 */
type StatTriple struct {
	Max     string `json:"max"`
	Average string `json:"avg"`
	Current string `json:"current"`
}

/**
 * WindowStats holds both directions of one window; nil means no data
 */
type WindowStats struct {
	In  *StatTriple `json:"in"`
	Out *StatTriple `json:"out"`
}

/**
 * Direction returns the triple for d, nil if it was not found
 */
func (s *WindowStats) Direction(d Direction) *StatTriple {
	if s == nil {
		return nil
	}
	switch d {
	case In:
		return s.In
	case Out:
		return s.Out
	}
	return nil
}

/**
 * Empty reports whether neither direction was recognized
 */
func (s *WindowStats) Empty() bool {
	return s == nil || (s.In == nil && s.Out == nil)
}

/**
 * Result is the statistics of one interface across all windows.
 * A nil window means its section was not present in the document.
 */
type Result struct {
	Interface string       `json:"iface"`
	Daily     *WindowStats `json:"daily"`
	Weekly    *WindowStats `json:"weekly"`
	Monthly   *WindowStats `json:"monthly"`
	Yearly    *WindowStats `json:"yearly"`
}

/**
 * Window returns stats stored for w
 */
func (r *Result) Window(w Window) *WindowStats {
	switch w {
	case Daily:
		return r.Daily
	case Weekly:
		return r.Weekly
	case Monthly:
		return r.Monthly
	case Yearly:
		return r.Yearly
	}
	return nil
}

func (r *Result) set(w Window, s *WindowStats) {
	switch w {
	case Daily:
		r.Daily = s
	case Weekly:
		r.Weekly = s
	case Monthly:
		r.Monthly = s
	case Yearly:
		r.Yearly = s
	}
}
