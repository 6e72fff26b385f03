package schemas

import "github.com/goliatone/go-chartopts/pkg/option"

var axisTypes = []string{"category", "value", "time", "log"}

// AxisLine is the axis line. style is an alias of lineStyle.
var AxisLine = option.NewSchema("AxisLine",
	raws("onZero", "onZeroAxisIndex"),
	option.Raw("symbol", option.Choices("none", "arrow")),
	raws("symbolSize", "symbolOffset"),
	option.Object("lineStyle", LineStyle),
	option.Alias("style", "lineStyle"),
)

// AxisTick is the tick mark block of an axis.
var AxisTick = option.NewSchema("AxisTick",
	raws("alignWithLabel", "interval", "inside", "length"),
	option.Object("lineStyle", LineStyle),
)

// MinorTick configures minor ticks.
var MinorTick = option.NewSchema("MinorTick", raws("splitNumber", "length"))

// AxisLabel is a label placed along an axis.
var AxisLabel = option.NewSchema("AxisLabel",
	option.Extends(Label),
	raws("interval", "inside", "rotate", "margin", "showMinLabel", "showMaxLabel"),
)

// SplitLine exposes every LineStyle field directly, so splitLine.color and
// splitLine.lineStyle.color address the same value.
var SplitLine = option.NewSchema("SplitLine",
	option.Raw("interval"),
	option.Object("lineStyle", LineStyle),
	option.DelegateAll("lineStyle", "", nil),
)

// SplitArea exposes every AreaStyle field directly.
var SplitArea = option.NewSchema("SplitArea",
	option.Raw("interval"),
	option.Object("areaStyle", AreaStyle),
	option.DelegateAll("areaStyle", "", nil),
)

// Axis is a cartesian axis. style is an alias of nameTextStyle.
var Axis = option.NewSchema("Axis",
	option.Raw("gridIndex"),
	option.Raw("position", option.Choices("top", "bottom", "left", "right")),
	option.Raw("type", option.Choices(axisTypes...)),
	option.Raw("offset"),
	option.Raw("name"),
	option.Raw("nameLocation", option.Choices("start", "center", "middle", "end")),
	raws("nameGap", "nameRotate"),
	option.Object("nameTextStyle", TextStyle),
	option.Raw("min", option.Choices("dataMin")),
	option.Raw("max", option.Choices("dataMax")),
	raws("scale", "inverse", "splitNumber", "interval", "minInterval", "maxInterval", "boundaryGap"),
	option.Raw("data", option.Default([]any{})),
	raws("logBase", "silent", "triggerEvent"),
	option.Object("axisLabel", AxisLabel),
	option.Object("axisLine", AxisLine),
	option.Object("axisPointer", AxisPointer),
	option.Object("axisTick", AxisTick),
	option.Object("minorTick", MinorTick),
	option.Object("splitLine", SplitLine),
	option.Object("minorSplitLine", SplitLine),
	option.Object("splitArea", SplitArea),
	option.Alias("style", "nameTextStyle"),
)

// RadiusAxis is the radial axis of a polar system.
var RadiusAxis = option.NewSchema("RadiusAxis",
	option.Extends(Axis),
	option.Raw("polarIndex"),
)

// AngleAxis is the angular axis of a polar system.
var AngleAxis = option.NewSchema("AngleAxis",
	option.Extends(RadiusAxis),
	raws("startAngle", "clockwise"),
)

// SingleAxis is a standalone axis.
var SingleAxis = option.NewSchema("SingleAxis",
	option.Extends(Axis, PositionMixin),
	option.Raw("orient", option.Choices("horizontal", "vertical")),
	option.Object("tooltip", Tooltip),
)

// ParallelAxis is one axis of a parallel system.
var ParallelAxis = option.NewSchema("ParallelAxis",
	option.Extends(Axis),
	raws("parallelIndex", "dim"),
	option.Object("areaSelectStyle", AreaStyle),
)

// Axis3D is an axis of a 3D grid.
var Axis3D = option.NewSchema("Axis3D",
	raws("name", "grid3DIndex", "nameGap"),
	option.Object("nameTextStyle", TextStyle),
	option.Raw("type", option.Choices("value", "category", "time", "log")),
	option.Raw("min", option.Choices("dataMin")),
	option.Raw("max", option.Choices("dataMax")),
	raws("scale", "interval", "minInterval", "splitNumber", "logBase"),
	option.Raw("data", option.Default([]any{})),
	option.Object("axisLabel", AxisLabel),
	option.Object("axisLine", AxisLine),
	option.Object("axisTick", AxisTick),
	option.Object("axisPointer", AxisPointer),
	option.Object("splitLine", SplitLine),
	option.Object("splitArea", SplitArea),
	option.Alias("style", "nameTextStyle"),
)
