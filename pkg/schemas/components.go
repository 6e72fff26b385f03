package schemas

import "github.com/goliatone/go-chartopts/pkg/option"

// Title is the chart title. style and substyle alias the text styles.
var Title = option.NewSchema("Title",
	option.Extends(PositionMixin, StyleMixin),
	option.Raw("text", option.Doc("title of chart")),
	option.Raw("subtext", option.Doc("sub title of chart")),
	option.Raw("link", option.Doc("title hyperlink")),
	option.Raw("sublink", option.Doc("sub title hyperlink")),
	option.Raw("target", option.Doc("where to open the title link"), option.Choices("self", "blank")),
	option.Raw("subtarget", option.Doc("where to open the sub title link"), option.Choices("self", "blank")),
	option.Raw("padding", option.Doc(`padding of title box: a single value for every
side, [vertical, horizontal] or [top, right, bottom, left]`)),
	option.Raw("itemGap", option.Doc("gap between title and subtitle")),
	option.Object("textStyle", TextStyle, option.Doc("style of the title")),
	option.Object("subtextStyle", TextStyle, option.Doc("style of the subtitle")),
	option.Alias("style", "textStyle"),
	option.Alias("substyle", "subtextStyle"),
)

// Legend lists the series of a chart.
var Legend = option.NewSchema("Legend",
	option.Extends(PositionMixin, StyleMixin),
	option.Raw("type", option.Choices("plain", "scroll")),
	option.Raw("orient", option.Choices("horizontal", "vertical")),
	option.Raw("selectedMode", option.Choices("single", "multiple")),
	option.Raw("formatter"),
	option.Raw("data", option.Default([]any{})),
	option.Raw("icon", option.Choices(symbolChoices...)),
	option.Raw("selected", option.Doc("series name to selected state")),
	option.Raw("align", option.Choices("auto", "left", "right")),
	raws("padding", "itemGap", "itemWidth", "itemHeight", "inactiveColor", "symbolKeepAspect"),
	option.Object("tooltip", Tooltip),
	option.Object("textStyle", TextStyle),
	raws("scrollDataIndex", "pageButtonItemGap", "pageButtonGap"),
	option.Raw("pageButtonPosition", option.Choices("start", "end")),
	raws("pageFormatter", "pageIcons", "pageIconColor", "pageIconInactiveColor", "pageIconSize"),
	option.Object("pageTextStyle", TextStyle),
	raws("animation", "animationDurationUpdate"),
	option.Alias("style", "textStyle"),
)

var dataBackground = option.NewSchema("DataBackground",
	option.Object("lineStyle", LineStyle),
	option.Object("areaStyle", AreaStyle),
)

// DataZoom zooms into a window of the data. lineStyle and areaStyle address
// the dataBackground styles.
var DataZoom = option.NewSchema("DataZoom",
	option.Extends(PositionMixin),
	option.Raw("type", option.Choices("slider", "inside")),
	option.Raw("filterMode", option.Choices("filter", "weakFilter", "empty", "none")),
	raws("start", "end", "startValue", "endValue", "minSpan", "minValueSpan",
		"maxSpan", "maxValueSpan", "disabled"),
	raws("xAxisIndex", "yAxisIndex", "radiusAxisIndex", "angleAxisIndex"),
	option.Raw("orient", option.Choices("horizontal", "vertical")),
	raws("zoomLock", "throttle", "rangeMode", "zoomOnMouseWheel", "moveOnMouseMove",
		"moveOnMouseWheel", "preventDefaultMouseMove"),
	raws("backgroundColor", "fillColor", "borderColor", "handleIcon", "handleSize"),
	option.Object("dataBackground", dataBackground),
	option.Object("handleStyle", ItemStyle),
	option.Object("textStyle", TextStyle),
	raws("labelPrecision", "labelFormatter", "showDetail", "showDataShadow", "realtime"),
	option.Alias("lineStyle", "dataBackground", "lineStyle"),
	option.Alias("areaStyle", "dataBackground", "areaStyle"),
)

// VisualPiece is one piece of a piecewise visual map.
var VisualPiece = option.NewSchema("VisualPiece",
	raws("min", "max", "value", "label", "color", "gt", "gte", "lt", "lte"),
)

// VisualRange maps values to visual channels.
var VisualRange = option.NewSchema("VisualRange",
	option.Raw("symbol", option.Choices(symbolChoices...)),
	raws("symbolSize", "color", "colorAlpha", "opacity", "colorLightness",
		"colorSaturation", "colorHue"),
)

// VisualMap maps data values to colors and sizes.
var VisualMap = option.NewSchema("VisualMap",
	option.Extends(PositionMixin, StyleMixin),
	option.Raw("orient", option.Choices("horizontal", "vertical")),
	option.Raw("type", option.Choices("continuous", "piecewise")),
	raws("min", "max", "splitNumber", "calculable", "realtime", "inverse",
		"precision", "itemWidth", "itemHeight", "text", "dimension", "seriesIndex"),
	option.Raw("range", option.Default([]any{})),
	option.Array("pieces", VisualPiece),
	option.Object("inRange", VisualRange),
	option.Object("outOfRange", VisualRange),
	option.Object("textStyle", TextStyle),
)

var featureItem = option.NewSchema("FeatureItem",
	raws("title", "icon"),
	option.Object("iconStyle", ItemStyle),
	option.Object("emphasis", option.NewSchema("FeatureEmphasis", option.Object("iconStyle", ItemStyle))),
)

var dataView = option.NewSchema("DataView",
	option.Extends(featureItem),
	raws("readOnly", "optionToContent", "contentToOption"),
	option.Raw("lang", option.Default([]any{})),
	raws("backgroundColor", "textareaColor", "textareaBorderColor", "textColor",
		"buttonColor", "buttonTextColor"),
)

var magicType = option.NewSchema("MagicType",
	option.Extends(featureItem),
	option.Raw("type", option.Default([]any{})),
	option.Raw("option"),
	option.Raw("seriesIndex"),
)

var saveAsImage = option.NewSchema("SaveAsImage",
	option.Extends(featureItem),
	option.Raw("type", option.Choices("png", "jpeg", "svg")),
	raws("name", "backgroundColor", "connectedBackgroundColor", "pixelRatio"),
	option.Raw("excludeComponents", option.Default([]any{})),
)

var zoomFeature = option.NewSchema("DataZoomFeature",
	option.Extends(featureItem),
	option.Raw("filterMode", option.Choices("filter", "weakFilter", "empty", "none")),
	raws("xAxisIndex", "yAxisIndex"),
)

var brushFeature = option.NewSchema("BrushFeature",
	option.Extends(featureItem),
	raws("type", "geoIndex", "xAxisIndex", "yAxisIndex"),
	option.Raw("brushLink", option.Default([]any{})),
	option.Raw("throttleType", option.Choices("debounce", "fixRate")),
	option.Raw("throttleDelay"),
)

// Feature lists the toolbox tools. Custom tools are extra keys starting
// with "my".
var Feature = option.NewSchema("Feature",
	option.Object("mark", featureItem),
	option.Object("dataView", dataView),
	option.Object("magicType", magicType),
	option.Object("restore", featureItem),
	option.Object("saveAsImage", saveAsImage),
	option.Object("dataZoom", zoomFeature),
	option.Object("brush", brushFeature),
)

// Toolbox is the tool bar of a chart.
var Toolbox = option.NewSchema("Toolbox",
	option.Extends(PositionMixin),
	option.Raw("orient", option.Choices("horizontal", "vertical")),
	raws("itemSize", "itemGap", "showTitle"),
	option.Object("feature", Feature),
	option.Object("iconStyle", ItemStyle),
	option.Object("emphasis", option.NewSchema("ToolboxEmphasis", option.Object("iconStyle", ItemStyle))),
	option.Object("tooltip", Tooltip),
	option.Alias("mark", "feature", "mark"),
)

var checkpointStyle = option.NewSchema("CheckpointStyle",
	option.Extends(StyleMixin),
	option.Raw("symbol", option.Choices(symbolChoices...)),
	raws("symbolSize", "symbolRotate", "symbolKeepAspect", "symbolOffset",
		"animation", "animationDuration", "animationEasing"),
)

var controlStyle = option.NewSchema("ControlStyle",
	option.Extends(StyleMixin),
	raws("showPlayBtn", "showPrevBtn", "showNextBtn", "itemSize", "itemGap"),
	option.Raw("position", option.Choices("left", "right", "top", "bottom")),
	raws("playIcon", "stopIcon", "prevIcon", "nextIcon"),
)

// Timeline switches between option pages.
var Timeline = option.NewSchema("Timeline",
	option.Extends(PositionMixin, SymbolMixin),
	option.Raw("type", option.Choices("slider")),
	option.Raw("orient", option.Choices("horizontal", "vertical")),
	option.Raw("inverse"),
	option.Object("lineStyle", LineStyle),
	option.Object("label", Label),
	option.Object("itemStyle", ItemStyle),
	option.Object("checkpointStyle", checkpointStyle),
	option.Raw("axisType", option.Choices("category", "value", "time")),
	raws("currentIndex", "autoPlay", "rewind", "loop", "playInterval", "realtime"),
	option.Raw("controlPosition", option.Choices("right", "left")),
	option.Object("controlStyle", controlStyle),
	option.Object("emphasis", geoEmphasis),
	option.Raw("data", option.Default([]any{})),
)
