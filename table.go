package tablefind

import "github.com/pkg/errors"

// DetectTables runs the full detection pipeline on a page: edges are derived
// per the configured strategy, merged, filtered, turned into cells, grouped
// into tables, and filtered again at the table level. The returned tables
// carry a back-reference to page so Table.Extract can resolve cell text.
func DetectTables(page *Page, settings TableSettings) ([]Table, error) {
	if page == nil {
		return nil, errors.New("tablefind: nil page")
	}
	settings = settings.resolved()
	if err := ValidateSettings(settings); err != nil {
		return nil, errors.Wrap(err, "invalid table settings")
	}

	start := now()
	defer func() { observeStage("detect_tables", start) }()

	words := page.Words
	if words == nil {
		words = GroupCharsIntoWords(page.Chars, settings.KeepBlankChars)
		page.Words = words
	}

	vEdges, err := deriveAxisEdges(page, words, settings, Vertical)
	if err != nil {
		return nil, errors.Wrap(err, "deriving vertical edges")
	}
	hEdges, err := deriveAxisEdges(page, words, settings, Horizontal)
	if err != nil {
		return nil, errors.Wrap(err, "deriving horizontal edges")
	}
	edges := append(vEdges, hEdges...)
	incStage("edges_derived", len(edges))

	edges = MergeEdges(edges, settings)
	edges = FilterEdgesByMinLength(edges, settings.EdgeMinLength)
	edges = FilterEdges(page, edges, settings)
	incStage("edges_after_filter", len(edges))

	intersections := FindIntersections(edges, settings.IntersectionXTolerance, settings.IntersectionYTolerance)
	cells := IntersectionsToCells(intersections)
	cells = FilterCells(page, cells, settings)
	incStage("cells_found", len(cells))

	tables := CellsToTables(cells, 1e-9)
	tables = FilterTables(page, tables, settings)
	incStage("tables_found", len(tables))

	for i := range tables {
		tables[i].page = page
	}
	return tables, nil
}

// deriveAxisEdges produces the raw (unmerged) edges for one axis according
// to its configured strategy.
func deriveAxisEdges(page *Page, words []Word, settings TableSettings, axis Orientation) ([]Edge, error) {
	strategy := settings.HorizontalStrategy
	explicitLines := settings.ExplicitHorizontalLines
	minWords := settings.MinWordsHorizontal
	if axis == Vertical {
		strategy = settings.VerticalStrategy
		explicitLines = settings.ExplicitVerticalLines
		minWords = settings.MinWordsVertical
	}

	switch strategy {
	case StrategyExplicit:
		return ExplicitEdges(explicitLines, axis, page.Bbox), nil
	case StrategyText:
		if axis == Vertical {
			return WordsToEdgesVertical(words, minWords), nil
		}
		return WordsToEdgesHorizontal(words, minWords), nil
	case StrategyLines:
		var out []Edge
		for _, e := range page.Edges {
			if e.Orientation == axis {
				out = append(out, e)
			}
		}
		for _, r := range page.Rects {
			for _, e := range RectToEdges(r) {
				if e.Orientation == axis {
					out = append(out, e)
				}
			}
		}
		return out, nil
	case StrategyLinesStrict:
		var out []Edge
		for _, e := range page.Edges {
			if e.Orientation == axis && e.ObjectType == ObjectLine {
				out = append(out, e)
			}
		}
		return out, nil
	default:
		return nil, errors.Errorf("unknown strategy %q for axis", strategy)
	}
}
