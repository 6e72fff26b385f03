package schemas

import "github.com/goliatone/go-chartopts/pkg/option"

// Root is the top-level chart option. Coordinate components are arrays
// seeded with one element so that grid.left or xAxis.type address the first
// one; series start empty and grow with Add.
var Root = option.NewSchema("Root",
	option.Extends(AnimationMixin),
	option.Raw("color", option.Doc("palette cycled through by series")),
	option.Raw("backgroundColor"),
	option.Object("textStyle", TextStyle),
	option.Object("title", Title),

	option.Array("grid", Grid, option.Seeded()),
	option.Array("radar", Radar, option.Seeded()),
	option.Array("polar", Polar, option.Seeded()),
	option.Array("calendar", Calendar, option.Seeded()),
	option.Array("single", Single, option.Seeded()),
	option.Array("parallel", Parallel, option.Seeded()),
	option.Array("geo", Geo, option.Seeded()),

	option.Object("globe", Globe),
	option.Object("grid3D", Grid3D),

	option.Array("xAxis", Axis, option.Seeded()),
	option.Array("yAxis", Axis, option.Seeded()),
	option.Object("radiusAxis", RadiusAxis),
	option.Object("angleAxis", AngleAxis),
	option.Array("singleAxis", SingleAxis, option.Seeded()),
	option.Array("parallelAxis", ParallelAxis),

	option.Object("xAxis3D", Axis3D),
	option.Object("yAxis3D", Axis3D),
	option.Object("zAxis3D", Axis3D),

	option.Array("series", Series),
	option.Array("dataset", Dataset),

	option.Object("legend", Legend),
	option.Object("tooltip", Tooltip),
	option.Object("toolbox", Toolbox),
	option.Object("axisPointer", AxisPointer),
	option.Object("aria", Aria),

	option.Array("visualMap", VisualMap, option.Seeded()),
	option.Array("dataZoom", DataZoom),

	option.Depends(EChartsScript),
)

// TimelinePage is one page of a timeline chart.
var TimelinePage = option.NewSchema("TimelinePage",
	option.Object("title", Title),
	option.Raw("series", option.Default([]any{})),
)

// TimelineBase is the shared part of a timeline chart.
var TimelineBase = option.NewSchema("TimelineBase",
	option.Extends(Root),
	option.Object("timeline", Timeline),
)

// TimelineRoot wraps a base option and the pages of a timeline chart.
var TimelineRoot = option.NewSchema("TimelineRoot",
	option.Object("baseOption", TimelineBase),
	option.Array("options", TimelinePage),
	option.Depends(EChartsScript),
)
