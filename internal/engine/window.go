package engine

import "advselect/internal/domain"

// ComputeWindow decides which rows to materialize for a scroll position.
//
// Geometry is integral (pixels or terminal cells), so the padding always
// reconstructs the full height exactly:
//
//	TopPadding + (EndIndex-StartIndex)*rowHeight + BottomPadding == rowCount*rowHeight
//
// scrollTop is clamped to [0, rowCount*rowHeight] first, which keeps a window
// valid after the row list shrinks. A non-positive rowHeight or viewportHeight
// yields an empty window; Options.Validate rejects those up front.
func ComputeWindow(rowCount, rowHeight, viewportHeight, scrollTop, overscan int) domain.Window {
	if rowHeight <= 0 || viewportHeight <= 0 {
		return domain.Window{}
	}
	rowCount = max(0, rowCount)
	overscan = max(0, overscan)

	totalHeight := rowCount * rowHeight
	scrollTop = ClampScroll(scrollTop, totalHeight)

	startIndex := max(0, scrollTop/rowHeight-overscan)
	visibleCount := ceilDiv(viewportHeight, rowHeight) + 2*overscan
	endIndex := min(rowCount, startIndex+visibleCount)

	return domain.Window{
		StartIndex:    startIndex,
		EndIndex:      endIndex,
		TopPadding:    startIndex * rowHeight,
		BottomPadding: max(0, totalHeight-endIndex*rowHeight),
		RowHeight:     rowHeight,
	}
}

// ClampScroll bounds a scroll offset to [0, totalHeight]
func ClampScroll(scrollTop, totalHeight int) int {
	if scrollTop < 0 || totalHeight <= 0 {
		return 0
	}
	return min(scrollTop, totalHeight)
}

// MaxScrollTop is the largest offset that still fills the viewport
func MaxScrollTop(rowCount, rowHeight, viewportHeight int) int {
	return max(0, rowCount*rowHeight-viewportHeight)
}

// ScrollToReveal returns the smallest change to scrollTop that brings the
// row at index fully into the viewport.
func ScrollToReveal(index, rowHeight, viewportHeight, scrollTop int) int {
	if index < 0 || rowHeight <= 0 {
		return scrollTop
	}
	rowTop := index * rowHeight
	rowBottom := rowTop + rowHeight
	switch {
	case rowTop < scrollTop:
		return rowTop
	case rowBottom > scrollTop+viewportHeight:
		return max(0, rowBottom-viewportHeight)
	default:
		return scrollTop
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
