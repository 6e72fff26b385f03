package schemas

import "github.com/goliatone/go-chartopts/pkg/option"

// EChartsScript is the core library every chart depends on.
const EChartsScript = "echarts.min.js"

// Series carries the fields shared by every 2D series. The hoverAnimation
// fields are also reachable with a hover prefix (hoverAnimationDuration,
// hoverAnimationEasing, ...).
var Series = option.NewSchema("Series",
	raws("type", "name"),
	option.Object("label", Label),
	option.Raw("data", option.Default([]any{})),
	option.Raw("datasetIndex"),
	option.Array("dimensions", Dimension),
	option.Object("encode", Encode),
	option.Raw("visualMap"),
	option.Object("tooltip", Tooltip),
	option.Raw("seriesLayoutBy", option.Choices("column", "row")),
	raws("clip", "legendHoverLink"),
	option.Object("hoverAnimation", Animation),
	option.Raw("coordinateSystem", option.Choices("cartesian2d", "polar", "geo", "calendar")),
	raws("xAxisIndex", "yAxisIndex", "polarIndex", "geoIndex", "calendarIndex",
		"cursor", "large", "largeThreshold", "progressive", "progressiveThreshold"),
	option.Raw("progressiveChunkMode", option.Choices("sequential", "mod")),
	option.Object("markPoint", MarkPoint),
	option.Object("markLine", MarkLine),
	option.Object("markArea", MarkArea),
	option.Object("emphasis", Emphasis),
	option.DelegateAll("hoverAnimation", "hover", nil),
	option.Depends(EChartsScript),
)

var barBackgroundStyle = option.NewSchema("BarBackgroundStyle",
	option.Extends(StyleMixin),
	option.Raw("barBorderRadius"),
)

// Bar is a bar series.
var Bar = option.NewSchema("Bar",
	option.Extends(Series),
	raws("stack", "roundCap", "barWidth", "barMaxWidth", "barMinWidth",
		"barMinHeight", "barGap", "barCategoryGap"),
	option.Raw("color", option.Default([]any{})),
	option.Object("itemStyle", ItemStyle),
	option.Raw("showBackground"),
	option.Object("backgroundStyle", barBackgroundStyle),
)

// Line is a line series.
var Line = option.NewSchema("Line",
	option.Extends(SymbolMixin, Series),
	raws("stack", "connectNulls", "smooth", "smoothMonotone"),
	option.Raw("sampling", option.Choices("average", "max", "min", "sum")),
	option.Object("itemStyle", ItemStyle),
	option.Object("lineStyle", LineStyle),
	option.Object("areaStyle", AreaStyle),
)

var labelLine = option.NewSchema("LabelLine",
	raws("length", "length2", "smooth"),
	option.Object("lineStyle", LineStyle),
)

// Pie is a pie series. lineStyle addresses labelLine.lineStyle.
var Pie = option.NewSchema("Pie",
	option.Extends(PositionMixin, AnimationMixin, Series),
	raws("center", "radius"),
	option.Raw("roseType", option.Choices("radius", "angle", "area")),
	option.Raw("selectedMode", option.Choices("single", "multiple")),
	raws("selectedOffset", "clockwise", "startAngle", "minAngle",
		"minShowLabelAngle", "avoidLabelOverlap", "stillShowZeroSum"),
	option.Object("itemStyle", ItemStyle),
	option.Object("labelLine", labelLine),
	option.Alias("lineStyle", "labelLine", "lineStyle"),
)

// Scatter is a scatter series.
var Scatter = option.NewSchema("Scatter",
	option.Extends(SymbolMixin, Series),
	option.Object("itemStyle", ItemStyle),
)

var rippleEffect = option.NewSchema("RippleEffect",
	raws("color", "period", "scale"),
	option.Raw("brushType", option.Choices("stroke", "fill")),
)

// EffectScatter is a scatter series with ripple effects.
var EffectScatter = option.NewSchema("EffectScatter",
	option.Extends(SymbolMixin, Series),
	option.Raw("effectType", option.Choices("ripple")),
	option.Raw("showEffectOn", option.Choices("render", "emphasis")),
	option.Object("rippleEffect", rippleEffect),
	option.Object("itemStyle", ItemStyle),
)

// RadarSeries is a radar series bound to a radar component.
var RadarSeries = option.NewSchema("RadarSeries",
	option.Extends(SymbolMixin, Series),
	option.Raw("radarIndex"),
	option.Object("itemStyle", ItemStyle),
	option.Object("lineStyle", LineStyle),
	option.Object("areaStyle", AreaStyle),
)

// Map is a choropleth series. The map script is added to the chart
// dependencies when the series is added.
var Map = option.NewSchema("Map",
	option.Extends(Series),
	option.Raw("mapType"),
	option.Raw("roam", option.Choices("move", "scale")),
	raws("center", "aspectScale", "boundingCoords", "zoom", "scaleLimit",
		"nameMap", "nameProperty", "selectedMode", "geoIndex"),
	option.Object("itemStyle", ItemStyle),
)

var linesEffect = option.NewSchema("LinesEffect",
	option.Extends(SymbolMixin),
	raws("period", "delay", "constantSpeed", "color", "trailLength", "loop"),
)

// Lines draws paths between coordinates.
var Lines = option.NewSchema("Lines",
	option.Extends(AnimationMixin, SymbolMixin, Series),
	option.Raw("polyline"),
	option.Object("effect", linesEffect),
	option.Object("lineStyle", LineStyle),
)

// HeatMap is a heat map series.
var HeatMap = option.NewSchema("HeatMap",
	option.Extends(AnimationMixin, Series),
	raws("pointSize", "blurSize", "minOpacity", "maxOpacity"),
	option.Object("itemStyle", ItemStyle),
)

// Series3D carries the fields shared by every 3D series.
var Series3D = option.NewSchema("Series3D",
	raws("type", "name"),
	option.Raw("coordinateSystem", option.Choices("cartesian3D", "globe", "geo3D")),
	raws("grid3DIndex", "globeIndex", "geo3DIndex", "symbol", "symbolSize"),
	option.Object("label", Label),
	option.Object("itemStyle", ItemStyle),
	option.Object("emphasis", Emphasis),
	option.Raw("data", option.Default([]any{})),
	option.Raw("blendMode", option.Choices("source-over", "lighter")),
	raws("silent", "animation", "animationDurationUpdate", "animationEasingUpdate",
		"progressive", "progressiveThreshold"),
	option.Depends(EChartsScript, GLScript),
)

// Scatter3D is a 3D scatter series.
var Scatter3D = option.NewSchema("Scatter3D", option.Extends(Series3D))

// Line3D is a 3D line series.
var Line3D = option.NewSchema("Line3D",
	option.Extends(Series3D),
	option.Object("lineStyle", LineStyle),
)

// Bar3D is a 3D bar series.
var Bar3D = option.NewSchema("Bar3D",
	option.Extends(Series3D),
	raws("bevelLevel", "bevelSmoothness", "stack", "minHeight"),
	option.Raw("shading", option.Choices(shadingChoices...)),
	option.Object("realisticMaterial", RealisticMaterial),
	option.Object("lambertMaterial", Material),
	option.Object("colorMaterial", Material),
)

// SeriesKinds maps an ECharts series type to its schema.
var SeriesKinds = map[string]*option.Schema{
	"bar":           Bar,
	"line":          Line,
	"pie":           Pie,
	"scatter":       Scatter,
	"effectScatter": EffectScatter,
	"radar":         RadarSeries,
	"map":           Map,
	"lines":         Lines,
	"heatmap":       HeatMap,
	"scatter3D":     Scatter3D,
	"line3D":        Line3D,
	"bar3D":         Bar3D,
}
