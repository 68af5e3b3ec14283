package i18n

// Message keys of the options panel.
const (
	KeyDesc = "desc"

	KeyToolsResetText = "tools.resetText"
	KeyToolsClearText = "tools.clearText"
	KeyToolsLang      = "tools.lang"

	KeyOptionsTitle                 = "options.title"
	KeyOptionsLanguage              = "options.language"
	KeyOptionsTheme                 = "options.theme"
	KeyOptionsDayMode               = "options.dayMode"
	KeyOptionsNightMode             = "options.nightMode"
	KeyOptionsContextRange          = "options.contextRange"
	KeyOptionsOutputFormat          = "options.outputFormat"
	KeyOptionsLineByLine            = "options.lineByLine"
	KeyOptionsSideBySide            = "options.sideBySide"
	KeyOptionsDiffStyle             = "options.diffStyle"
	KeyOptionsWord                  = "options.word"
	KeyOptionsChar                  = "options.char"
	KeyOptionsTrim                  = "options.trim"
	KeyOptionsNoDiffLineFeed        = "options.noDiffLineFeed"
	KeyOptionsHideHeader            = "options.hideHeader"
	KeyOptionsHideStatistics        = "options.hideStatistics"
	KeyOptionsForceInlineComparison = "options.forceInlineComparison"
)

// OptionKeys lists the options panel entries in display order.
var OptionKeys = []string{
	KeyOptionsLanguage,
	KeyOptionsTheme,
	KeyOptionsDayMode,
	KeyOptionsNightMode,
	KeyOptionsContextRange,
	KeyOptionsOutputFormat,
	KeyOptionsLineByLine,
	KeyOptionsSideBySide,
	KeyOptionsDiffStyle,
	KeyOptionsWord,
	KeyOptionsChar,
	KeyOptionsTrim,
	KeyOptionsNoDiffLineFeed,
	KeyOptionsHideHeader,
	KeyOptionsHideStatistics,
	KeyOptionsForceInlineComparison,
}
