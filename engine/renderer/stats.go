package renderer

// Stats counts primitives and draw calls issued since the last ResetStats.
type Stats struct {
	DrawCalls int

	// Vertices and indices handed to the backend, summed over every flush.
	TriVertices  int
	TriIndices   int
	LineVertices int
	LineIndices  int

	QuadsDrawn     int
	TrisDrawn      int
	CirclesDrawn   int
	LinesDrawn     int
	WideLinesDrawn int

	QuadsOutlined   int
	TrisOutlined    int
	CirclesOutlined int

	TrisBordered        int
	CirclesBordered     int
	SemicirclesBordered int
}

// Primitives returns the total number of primitives submitted.
func (s Stats) Primitives() int {
	return s.QuadsDrawn + s.TrisDrawn + s.CirclesDrawn + s.LinesDrawn + s.WideLinesDrawn +
		s.QuadsOutlined + s.TrisOutlined + s.CirclesOutlined +
		s.TrisBordered + s.CirclesBordered + s.SemicirclesBordered
}
