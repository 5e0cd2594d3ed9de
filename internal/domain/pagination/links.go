package pagination

// maxPlainLinks is the largest page count rendered without ellipses.
const maxPlainLinks = 5

// Link is one entry of a page-number strip: either a page or a gap.
type Link struct {
	Page     int
	Ellipsis bool
	Current  bool
}

// Links builds the page-number strip for current out of total pages. Up to
// five pages are listed in full; beyond that the first and last page, the
// neighbours of current, and "…" gaps are shown.
func Links(current, total int) []Link {
	if total <= 0 {
		return nil
	}

	link := func(n int) Link {
		return Link{Page: n, Current: n == current}
	}

	if total <= maxPlainLinks {
		out := make([]Link, 0, total)
		for i := 1; i <= total; i++ {
			out = append(out, link(i))
		}
		return out
	}

	left := 2
	if current > 3 {
		left = current - 1
	}
	right := total - 1
	if current < total-2 {
		right = current + 1
	}

	out := []Link{link(1)}
	if left > 2 {
		out = append(out, Link{Ellipsis: true})
	}
	for i := left; i <= right; i++ {
		out = append(out, link(i))
	}
	if right < total-1 {
		out = append(out, Link{Ellipsis: true})
	}
	return append(out, link(total))
}
