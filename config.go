package tablefind

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// knownSettingsKeys lists every key LoadSettings reads: the keys setDefaults
// registers plus the two explicit_*_lines keys, which have no default. A
// YAML file or
// overrides map naming anything outside this set is almost certainly a typo,
// not a new setting, so LoadSettings rejects it rather than silently
// ignoring it the way viper does by default.
var knownSettingsKeys = map[string]bool{
	"vertical_strategy":         true,
	"horizontal_strategy":       true,
	"explicit_vertical_lines":   true,
	"explicit_horizontal_lines": true,
	"snap_tolerance":            true,
	"snap_x_tolerance":          true,
	"snap_y_tolerance":          true,
	"join_tolerance":            true,
	"join_x_tolerance":          true,
	"join_y_tolerance":          true,
	"edge_min_length":           true,
	"min_words_vertical":        true,
	"min_words_horizontal":      true,
	"keep_blank_chars":          true,
	"text_tolerance":            true,
	"text_x_tolerance":          true,
	"text_y_tolerance":          true,
	"intersection_tolerance":    true,
	"intersection_x_tolerance":  true,
	"intersection_y_tolerance":  true,
	"too_long_edge_ratio":       true,
	"terminal_edge_margin":      true,
	"short_cell_height_ratio":   true,
	"small_cell_max_ratio":      true,
	"chart_cell_ratio":          true,
	"title_row_height_ratio":    true,
	"title_col_width_ratio":     true,
	"bar_graph_min_cells":       true,
	"two_cell_gap_tolerance":    true,
}

// rejectUnknownKeys reports an error naming the first key present in the
// config file or overrides that is not in knownSettingsKeys. AutomaticEnv
// never introduces new keys on its own, so anything outside knownSettingsKeys
// must have come from one of those two sources.
func rejectUnknownKeys(v *viper.Viper, overrides map[string]any) error {
	for _, key := range v.AllKeys() {
		if !knownSettingsKeys[strings.ToLower(key)] {
			return fmt.Errorf("%w: %s", ErrUnknownSetting, key)
		}
	}
	for key := range overrides {
		if !knownSettingsKeys[strings.ToLower(key)] {
			return fmt.Errorf("%w: %s", ErrUnknownSetting, key)
		}
	}
	return nil
}

// LoadSettings builds a TableSettings by layering, highest priority first:
// explicit overrides passed by the caller, environment variables prefixed
// TABLEFIND_, a YAML config file (configPath, optional), and finally the
// package defaults. The result is resolved and validated before return.
func LoadSettings(configPath string, overrides map[string]any) (TableSettings, error) {
	v := viper.New()
	setDefaults(v, DefaultTableSettings())

	v.SetEnvPrefix("tablefind")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return TableSettings{}, errors.Wrapf(err, "reading config file %s", configPath)
		}
	}

	for key, val := range overrides {
		v.Set(key, val)
	}

	if err := rejectUnknownKeys(v, overrides); err != nil {
		return TableSettings{}, err
	}

	settings := TableSettings{
		VerticalStrategy:        Strategy(v.GetString("vertical_strategy")),
		HorizontalStrategy:      Strategy(v.GetString("horizontal_strategy")),
		ExplicitVerticalLines:   v.GetFloat64Slice("explicit_vertical_lines"),
		ExplicitHorizontalLines: v.GetFloat64Slice("explicit_horizontal_lines"),
		SnapTolerance:           v.GetFloat64("snap_tolerance"),
		SnapXTolerance:          v.GetFloat64("snap_x_tolerance"),
		SnapYTolerance:          v.GetFloat64("snap_y_tolerance"),
		JoinTolerance:           v.GetFloat64("join_tolerance"),
		JoinXTolerance:          v.GetFloat64("join_x_tolerance"),
		JoinYTolerance:          v.GetFloat64("join_y_tolerance"),
		EdgeMinLength:           v.GetFloat64("edge_min_length"),
		MinWordsVertical:        v.GetInt("min_words_vertical"),
		MinWordsHorizontal:      v.GetInt("min_words_horizontal"),
		KeepBlankChars:          v.GetBool("keep_blank_chars"),
		TextTolerance:           v.GetFloat64("text_tolerance"),
		TextXTolerance:          v.GetFloat64("text_x_tolerance"),
		TextYTolerance:          v.GetFloat64("text_y_tolerance"),
		IntersectionTolerance:   v.GetFloat64("intersection_tolerance"),
		IntersectionXTolerance:  v.GetFloat64("intersection_x_tolerance"),
		IntersectionYTolerance:  v.GetFloat64("intersection_y_tolerance"),
		TooLongEdgeRatio:        v.GetFloat64("too_long_edge_ratio"),
		TerminalEdgeMargin:      v.GetFloat64("terminal_edge_margin"),
		ShortCellHeightRatio:    v.GetFloat64("short_cell_height_ratio"),
		SmallCellMaxRatio:       v.GetFloat64("small_cell_max_ratio"),
		ChartCellRatio:          v.GetFloat64("chart_cell_ratio"),
		TitleRowHeightRatio:     v.GetFloat64("title_row_height_ratio"),
		TitleColWidthRatio:      v.GetFloat64("title_col_width_ratio"),
		BarGraphMinCells:        v.GetInt("bar_graph_min_cells"),
		TwoCellGapTolerance:     v.GetFloat64("two_cell_gap_tolerance"),
	}

	settings = settings.resolved()
	if err := ValidateSettings(settings); err != nil {
		return TableSettings{}, errors.Wrap(err, "invalid settings")
	}
	return settings, nil
}

func setDefaults(v *viper.Viper, d TableSettings) {
	v.SetDefault("vertical_strategy", string(d.VerticalStrategy))
	v.SetDefault("horizontal_strategy", string(d.HorizontalStrategy))
	v.SetDefault("snap_tolerance", d.SnapTolerance)
	v.SetDefault("snap_x_tolerance", d.SnapXTolerance)
	v.SetDefault("snap_y_tolerance", d.SnapYTolerance)
	v.SetDefault("join_tolerance", d.JoinTolerance)
	v.SetDefault("join_x_tolerance", d.JoinXTolerance)
	v.SetDefault("join_y_tolerance", d.JoinYTolerance)
	v.SetDefault("edge_min_length", d.EdgeMinLength)
	v.SetDefault("min_words_vertical", d.MinWordsVertical)
	v.SetDefault("min_words_horizontal", d.MinWordsHorizontal)
	v.SetDefault("keep_blank_chars", d.KeepBlankChars)
	v.SetDefault("text_tolerance", d.TextTolerance)
	v.SetDefault("text_x_tolerance", d.TextXTolerance)
	v.SetDefault("text_y_tolerance", d.TextYTolerance)
	v.SetDefault("intersection_tolerance", d.IntersectionTolerance)
	v.SetDefault("intersection_x_tolerance", d.IntersectionXTolerance)
	v.SetDefault("intersection_y_tolerance", d.IntersectionYTolerance)
	v.SetDefault("too_long_edge_ratio", d.TooLongEdgeRatio)
	v.SetDefault("terminal_edge_margin", d.TerminalEdgeMargin)
	v.SetDefault("short_cell_height_ratio", d.ShortCellHeightRatio)
	v.SetDefault("small_cell_max_ratio", d.SmallCellMaxRatio)
	v.SetDefault("chart_cell_ratio", d.ChartCellRatio)
	v.SetDefault("title_row_height_ratio", d.TitleRowHeightRatio)
	v.SetDefault("title_col_width_ratio", d.TitleColWidthRatio)
	v.SetDefault("bar_graph_min_cells", d.BarGraphMinCells)
	v.SetDefault("two_cell_gap_tolerance", d.TwoCellGapTolerance)
}
