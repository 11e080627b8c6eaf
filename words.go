package tablefind

import "sort"

// isWhitespaceRune reports whether r is a character that never joins a word.
func isWhitespaceRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// GroupCharsIntoWords groups a page's characters into words: characters are
// read in stream order and split into a new word whenever whitespace, a
// change of upright-ness, or a large jump in doctop (a new line) is seen.
// Blank characters (space glyphs with visible width) are dropped unless
// keepBlank is set.
func GroupCharsIntoWords(chars []Char, keepBlank bool) []Word {
	if len(chars) == 0 {
		return nil
	}

	var words []Word
	var cur []Char

	flush := func() {
		if len(cur) == 0 {
			return
		}
		bb := cur[0].Bbox
		var text []rune
		upright := cur[0].Upright
		for _, c := range cur {
			bb = bb.Union(c.Bbox)
			text = append(text, c.Text)
		}
		words = append(words, Word{Bbox: bb, Text: string(text), Upright: upright})
		cur = nil
	}

	for i, c := range chars {
		if isWhitespaceRune(c.Text) {
			if keepBlank {
				flush()
				words = append(words, Word{Bbox: c.Bbox, Text: string(c.Text), Upright: c.Upright})
			} else {
				flush()
			}
			continue
		}
		if len(cur) > 0 {
			prev := cur[len(cur)-1]
			newLine := prev.Upright != c.Upright || absf(c.Doctop-prev.Doctop) > prev.FontSize
			if newLine {
				flush()
			}
		}
		cur = append(cur, c)
		_ = i
	}
	flush()
	return words
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// ExtractTableText assigns each row's cell words by testing whether a word's
// center point lies within (xTol, yTol) of a cell's bounds, joining the
// matched words' text in left-to-right reading order.
func ExtractTableText(page *Page, rows []Row, xTol, yTol float64) [][]*string {
	out := make([][]*string, len(rows))
	for i, row := range rows {
		out[i] = make([]*string, len(row.Cells))
		for j, cell := range row.Cells {
			out[i][j] = cellText(page.Words, *cell, xTol, yTol)
		}
	}
	return out
}

func cellText(words []Word, cell CellBBox, xTol, yTol float64) *string {
	var matched []Word
	for _, w := range words {
		cx, cy := w.CenterX(), w.CenterY()
		if cx >= cell.X0-xTol && cx <= cell.X1+xTol && cy >= cell.Top-yTol && cy <= cell.Bottom+yTol {
			matched = append(matched, w)
		}
	}
	if len(matched) == 0 {
		return nil
	}
	sort.Slice(matched, func(i, j int) bool {
		if absf(matched[i].Top-matched[j].Top) > yTol {
			return matched[i].Top < matched[j].Top
		}
		return matched[i].X0 < matched[j].X0
	})
	text := matched[0].Text
	for _, w := range matched[1:] {
		text += " " + w.Text
	}
	return &text
}
