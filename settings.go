package tablefind

import "fmt"

// Strategy selects how an axis's edges are derived before merging.
type Strategy string

const (
	StrategyLines       Strategy = "lines"
	StrategyLinesStrict Strategy = "lines_strict"
	StrategyText        Strategy = "text"
	StrategyExplicit    Strategy = "explicit"
)

var validStrategies = map[Strategy]bool{
	StrategyLines:       true,
	StrategyLinesStrict: true,
	StrategyText:        true,
	StrategyExplicit:    true,
}

// Sentinel errors for the validation taxonomy in the settings design.
var (
	ErrUnknownSetting  = fmt.Errorf("tablefind: unrecognized setting")
	ErrInvalidStrategy = fmt.Errorf("tablefind: invalid strategy")
	ErrNegativeSetting = fmt.Errorf("tablefind: setting must be non-negative")
)

// TableSettings configures every tunable of the detection pipeline. The zero
// value is not valid; use DefaultTableSettings and override selectively.
type TableSettings struct {
	VerticalStrategy   Strategy
	HorizontalStrategy Strategy

	ExplicitVerticalLines   []float64
	ExplicitHorizontalLines []float64

	SnapTolerance  float64
	SnapXTolerance float64
	SnapYTolerance float64

	JoinTolerance  float64
	JoinXTolerance float64
	JoinYTolerance float64

	EdgeMinLength float64

	MinWordsVertical   int
	MinWordsHorizontal int

	KeepBlankChars bool

	TextTolerance   float64
	TextXTolerance  float64
	TextYTolerance  float64

	IntersectionTolerance  float64
	IntersectionXTolerance float64
	IntersectionYTolerance float64

	// Edge/cell/table filter ratios. TooLongEdgeRatio, TerminalEdgeMargin,
	// ShortCellHeightRatio and ChartCellRatio are passed to the filters in
	// filter.go. SmallCellMaxRatio, TitleRowHeightRatio, TitleColWidthRatio,
	// BarGraphMinCells and TwoCellGapTolerance are loaded and validated but
	// not read by any filter; those filters use fixed thresholds.
	TooLongEdgeRatio       float64
	TerminalEdgeMargin     float64
	ShortCellHeightRatio   float64
	SmallCellMaxRatio      float64
	ChartCellRatio         float64
	TitleRowHeightRatio    float64
	TitleColWidthRatio     float64
	BarGraphMinCells       int
	TwoCellGapTolerance    float64
}

// DefaultTableSettings returns the default lattice (ruling-line) detection
// settings, matching the defaults table in the spec.
func DefaultTableSettings() TableSettings {
	return TableSettings{
		VerticalStrategy:       StrategyLines,
		HorizontalStrategy:     StrategyLines,
		SnapTolerance:          3,
		SnapXTolerance:         3,
		SnapYTolerance:         3,
		JoinTolerance:          3,
		JoinXTolerance:         3,
		JoinYTolerance:         3,
		EdgeMinLength:          3,
		MinWordsVertical:       3,
		MinWordsHorizontal:     1,
		KeepBlankChars:         false,
		TextTolerance:          3,
		TextXTolerance:         3,
		TextYTolerance:         3,
		IntersectionTolerance:  3,
		IntersectionXTolerance: 3,
		IntersectionYTolerance: 3,
		TooLongEdgeRatio:       0.95,
		TerminalEdgeMargin:     0.03,
		ShortCellHeightRatio:   10,
		SmallCellMaxRatio:      5,
		ChartCellRatio:         5,
		TitleRowHeightRatio:    0.02,
		TitleColWidthRatio:     0.03,
		BarGraphMinCells:       4,
		TwoCellGapTolerance:    3,
	}
}

// resolved fills in the axis-specific fallback tolerances ("None -> parent"
// in the settings table) and is called once at pipeline entry.
func (s TableSettings) resolved() TableSettings {
	if s.SnapXTolerance == 0 {
		s.SnapXTolerance = s.SnapTolerance
	}
	if s.SnapYTolerance == 0 {
		s.SnapYTolerance = s.SnapTolerance
	}
	if s.JoinXTolerance == 0 {
		s.JoinXTolerance = s.JoinTolerance
	}
	if s.JoinYTolerance == 0 {
		s.JoinYTolerance = s.JoinTolerance
	}
	if s.TextXTolerance == 0 {
		s.TextXTolerance = s.TextTolerance
	}
	if s.TextYTolerance == 0 {
		s.TextYTolerance = s.TextTolerance
	}
	if s.IntersectionXTolerance == 0 {
		s.IntersectionXTolerance = s.IntersectionTolerance
	}
	if s.IntersectionYTolerance == 0 {
		s.IntersectionYTolerance = s.IntersectionTolerance
	}
	return s
}

// ValidateSettings checks every numeric setting is non-negative, every
// strategy name is recognized, and that an "explicit" strategy has at least
// two explicit lines on its axis. It never mutates s.
func ValidateSettings(s TableSettings) error {
	if !validStrategies[s.VerticalStrategy] {
		return fmt.Errorf("%w: vertical_strategy %q", ErrInvalidStrategy, s.VerticalStrategy)
	}
	if !validStrategies[s.HorizontalStrategy] {
		return fmt.Errorf("%w: horizontal_strategy %q", ErrInvalidStrategy, s.HorizontalStrategy)
	}
	if s.VerticalStrategy == StrategyExplicit && len(s.ExplicitVerticalLines) < 2 {
		return fmt.Errorf("%w: explicit vertical strategy needs >= 2 explicit_vertical_lines", ErrUnknownSetting)
	}
	if s.HorizontalStrategy == StrategyExplicit && len(s.ExplicitHorizontalLines) < 2 {
		return fmt.Errorf("%w: explicit horizontal strategy needs >= 2 explicit_horizontal_lines", ErrUnknownSetting)
	}

	numeric := map[string]float64{
		"snap_tolerance":           s.SnapTolerance,
		"snap_x_tolerance":         s.SnapXTolerance,
		"snap_y_tolerance":         s.SnapYTolerance,
		"join_tolerance":           s.JoinTolerance,
		"join_x_tolerance":         s.JoinXTolerance,
		"join_y_tolerance":         s.JoinYTolerance,
		"edge_min_length":          s.EdgeMinLength,
		"text_tolerance":           s.TextTolerance,
		"text_x_tolerance":         s.TextXTolerance,
		"text_y_tolerance":         s.TextYTolerance,
		"intersection_tolerance":   s.IntersectionTolerance,
		"intersection_x_tolerance": s.IntersectionXTolerance,
		"intersection_y_tolerance": s.IntersectionYTolerance,
		"too_long_edge_ratio":      s.TooLongEdgeRatio,
		"terminal_edge_margin":     s.TerminalEdgeMargin,
		"short_cell_height_ratio":  s.ShortCellHeightRatio,
		"small_cell_max_ratio":     s.SmallCellMaxRatio,
		"chart_cell_ratio":         s.ChartCellRatio,
		"title_row_height_ratio":   s.TitleRowHeightRatio,
		"title_col_width_ratio":    s.TitleColWidthRatio,
		"two_cell_gap_tolerance":   s.TwoCellGapTolerance,
	}
	for name, v := range numeric {
		if v < 0 {
			return fmt.Errorf("%w: %s = %v", ErrNegativeSetting, name, v)
		}
	}
	if s.MinWordsVertical < 0 || s.MinWordsHorizontal < 0 || s.BarGraphMinCells < 0 {
		return fmt.Errorf("%w: min_words_vertical/min_words_horizontal/bar_graph_min_cells", ErrNegativeSetting)
	}

	return nil
}
