package schemas

import "github.com/goliatone/go-chartopts/pkg/option"

// Grid is a cartesian drawing area.
var Grid = option.NewSchema("Grid",
	option.Extends(PositionMixin, StyleMixin),
	option.Raw("containLabel"),
	option.Object("tooltip", Tooltip),
)

// Polar is a polar coordinate system.
var Polar = option.NewSchema("Polar",
	raws("center", "radius"),
	option.Object("tooltip", Tooltip),
)

// RadarIndicator is one spoke of a radar.
var RadarIndicator = option.NewSchema("RadarIndicator",
	raws("name", "max", "min", "color"),
)

// Radar is the radar coordinate system. Indicators are added with Add.
var Radar = option.NewSchema("Radar",
	option.Extends(Polar),
	option.Object("name", TextStyle),
	option.Array("indicator", RadarIndicator),
	raws("startAngle", "splitNumber"),
	option.Raw("shape", option.Choices("polygon", "circle")),
	option.Object("axisLine", AxisLine),
	option.Object("splitLine", SplitLine),
	option.Object("splitArea", SplitArea),
)

var calendarLabel = option.NewSchema("CalendarLabel",
	option.Extends(TextStyle),
	option.Raw("firstDay"),
	option.Raw("position", option.Choices("start", "end")),
	option.Raw("nameMap", option.Choices("cn", "en")),
	option.Raw("formatter"),
)

// Calendar is the calendar coordinate system.
var Calendar = option.NewSchema("Calendar",
	option.Extends(PositionMixin),
	raws("range", "cellSize"),
	option.Raw("orient", option.Choices("horizontal", "vertical")),
	option.Object("splitLine", SplitLine),
	option.Object("itemStyle", ItemStyle),
	option.Object("dayLabel", calendarLabel),
	option.Object("monthLabel", calendarLabel),
	option.Object("yearLabel", calendarLabel),
)

// Single hosts a single axis.
var Single = option.NewSchema("Single", option.Object("tooltip", Tooltip))

var geoEmphasis = option.NewSchema("GeoEmphasis",
	option.Object("label", Label),
	option.Object("itemStyle", ItemStyle),
)

// GeoRegion styles one named region of a map.
var GeoRegion = option.NewSchema("GeoRegion",
	raws("name", "selected"),
	option.Object("itemStyle", ItemStyle),
	option.Object("label", Label),
	option.Object("emphasis", geoEmphasis),
)

var geoFields = option.NewSchema("geoFields",
	option.Raw("map", option.Doc("registered map name; the map script is a render dependency")),
	option.Raw("roam", option.Choices("move", "scale")),
	raws("center", "aspectScale", "boundingCoords", "zoom", "scaleLimit",
		"nameMap", "nameProperty", "selectedMode", "layoutCenter", "layoutSize", "silent"),
)

// Geo is the geographic coordinate system.
var Geo = option.NewSchema("Geo",
	option.Extends(PositionMixin, geoFields),
	option.Array("regions", GeoRegion),
	option.Object("label", Label),
	option.Object("itemStyle", ItemStyle),
	option.Object("emphasis", geoEmphasis),
)

// Parallel is the parallel coordinate system.
var Parallel = option.NewSchema("Parallel",
	option.Extends(PositionMixin),
	option.Object("parallelAxisDefault", ParallelAxis),
	raws("parallelAxisExpandable", "axisExpandCenter", "axisExpandCount",
		"axisExpandWidth", "axisExpandTriggerOn"),
)
