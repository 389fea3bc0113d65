package wm

// Kind identifies a Layout variant. The cycle order for NextLayout is
// fixed: OneColumn, TwoColumns, ThreeColumns, FourColumns (§4.2).
type Kind int

const (
	OneColumn Kind = iota
	TwoColumns
	ThreeColumns
	FourColumns
)

// kindCycle is the fixed cycling order named in §4.2.
var kindCycle = [...]Kind{OneColumn, TwoColumns, ThreeColumns, FourColumns}

// MaxCols returns the variant's maximum concurrent visible columns.
func (k Kind) MaxCols() int {
	switch k {
	case OneColumn:
		return 1
	case TwoColumns:
		return 2
	case ThreeColumns:
		return 3
	case FourColumns:
		return 4
	default:
		return 1
	}
}

func (k Kind) String() string {
	switch k {
	case OneColumn:
		return "one-column"
	case TwoColumns:
		return "two-columns"
	case ThreeColumns:
		return "three-columns"
	case FourColumns:
		return "four-columns"
	default:
		return "unknown"
	}
}

// indexOfKind returns k's position in kindCycle.
func indexOfKind(k Kind) int {
	for i, c := range kindCycle {
		if c == k {
			return i
		}
	}
	return 0
}

// Next returns the next (or, if reverse, previous) Kind in the cycle,
// modular in both directions.
func (k Kind) Next(reverse bool) Kind {
	n := len(kindCycle)
	i := indexOfKind(k)
	if reverse {
		i = (i - 1 + n) % n
	} else {
		i = (i + 1) % n
	}
	return kindCycle[i]
}

// Layout is the algorithm object bound to a Workspace (§3, §4.2). It
// computes geometry for the workspace's ordered clients and tracks
// which slice of them is currently visible.
type Layout struct {
	Workspace *Workspace
	Kind      Kind
	MaxCols   int

	// Start, End is the half-open visible range [Start, End) of
	// indices into Workspace.Clients (I4).
	Start, End int
}

// NewLayout constructs a Layout of the given kind, bound to ws, with
// an empty range; callers must call UpdateRange before Arrange.
func NewLayout(ws *Workspace, kind Kind) *Layout {
	return &Layout{Workspace: ws, Kind: kind, MaxCols: kind.MaxCols()}
}

// UpdateRange recomputes the visible slice: a sliding window of width
// MaxCols anchored to the right at the current focus, clamped to the
// left edge (§4.2).
func (l *Layout) UpdateRange() {
	clients := l.Workspace.Clients
	n := len(clients)
	if n == 0 || l.Workspace.Current == nil {
		l.Start, l.End = 0, 0
		return
	}
	i := l.Workspace.IndexOf(l.Workspace.Current)
	if i < 0 {
		l.Start, l.End = 0, 0
		return
	}
	m := l.MaxCols
	if i < m {
		l.Start, l.End = 0, min(m, n)
		return
	}
	l.Start, l.End = i+1-m, i+1
}

// Rect is the on-screen rectangle assigned to one client index by
// Arrange.
type Rect struct {
	Index    int
	Geometry Geometry
}

// Arrange computes the rectangle for every visible client and hides
// the rest, returning the placements for the caller to apply via Conn.
// It is a pure function of (W, H, borderpx, client count, MaxCols,
// focus index) per P3, and only does anything if Workspace is the
// Monitor's current workspace (§4.2).
func (l *Layout) Arrange() (visible []Rect, hidden []int) {
	ws := l.Workspace
	if ws.Monitor.CurrentWorkspace() != ws {
		return nil, nil
	}
	clients := ws.Clients
	n := len(clients)
	if n == 0 {
		return nil, nil
	}
	b := int(ws.Monitor.Config.BorderPixel)
	w, h := ws.Monitor.W, ws.Monitor.H

	if n == 1 {
		return []Rect{{Index: 0, Geometry: Geometry{X: -b, Y: -b, W: w, H: h}}}, nil
	}

	if l.Kind == OneColumn {
		if ws.Current == nil {
			return nil, nil
		}
		idx := ws.IndexOf(ws.Current)
		hiddenIdx := make([]int, 0, n-1)
		for j := 0; j < n; j++ {
			if j != idx {
				hiddenIdx = append(hiddenIdx, j)
			}
		}
		return []Rect{{Index: idx, Geometry: Geometry{X: -b, Y: -b, W: w, H: h}}}, hiddenIdx
	}

	m := l.MaxCols
	if n <= m {
		cw := w / n
		rects := make([]Rect, n)
		for i := 0; i < n; i++ {
			rects[i] = Rect{Index: i, Geometry: columnGeometry(i, cw, h, b)}
		}
		return rects, nil
	}

	cw := w / m
	rects := make([]Rect, 0, l.End-l.Start)
	hiddenIdx := make([]int, 0, n-(l.End-l.Start))
	for j := 0; j < n; j++ {
		if j >= l.Start && j < l.End {
			rects = append(rects, Rect{Index: j, Geometry: columnGeometry(j-l.Start, cw, h, b)})
		} else {
			hiddenIdx = append(hiddenIdx, j)
		}
	}
	return rects, hiddenIdx
}

// columnGeometry places column idx among columns of width cw, height
// h, border b. x = idx*(cw-2b) + 2*b*idx, which collapses to idx*cw;
// width and height are shrunk by 2b so the border sits inside the
// allotted column.
func columnGeometry(idx, cw, h, b int) Geometry {
	return Geometry{X: idx * cw, Y: 0, W: cw - 2*b, H: h - 2*b}
}
