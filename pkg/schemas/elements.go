package schemas

import "github.com/goliatone/go-chartopts/pkg/option"

var lineTypes = []string{"solid", "dashed", "dotted"}

// ShadowStyle is a shadow-only style block.
var ShadowStyle = option.NewSchema("ShadowStyle", option.Extends(ShadowMixin))

// TextStyle styles a piece of text.
var TextStyle = option.NewSchema("TextStyle",
	option.Extends(StyleMixin),
	option.Raw("color"),
	option.Raw("fontFamily", option.Choices("sans-serif", "serif", "monospace", "Aria", "Microsoft YaHei")),
	option.Raw("fontSize"),
	option.Raw("fontStyle", option.Choices("normal", "italic", "oblique")),
	option.Raw("fontWeight", option.Choices("normal", "bold", "bolder", "lighter")),
	raws("textBorderColor", "textBorderWidth", "textShadowColor", "textShadowBlur",
		"textShadowOffsetX", "textShadowOffsetY", "lineHeight", "width", "height"),
	option.Raw("align", option.Choices("left", "center", "right")),
	option.Raw("verticalAlign", option.Choices("top", "middle", "bottom")),
	raws("padding", "margin"),
)

// LineStyle styles a line.
var LineStyle = option.NewSchema("LineStyle",
	option.Extends(StyleMixin),
	option.Raw("type", option.Choices(lineTypes...)),
	raws("width", "curveness"),
)

// AreaStyle styles a filled area.
var AreaStyle = option.NewSchema("AreaStyle", option.Extends(StyleMixin))

// ItemStyle styles a data item.
var ItemStyle = option.NewSchema("ItemStyle",
	option.Extends(StyleMixin),
	option.Raw("borderType", option.Choices(lineTypes...)),
	raws("stroke", "fill", "lineWidth", "areaColor", "color0", "borderColor0"),
)

// Label is a text label attached to an element. style is an alias of
// textStyle.
var Label = option.NewSchema("Label",
	option.Raw("position", option.Choices("start", "middle", "end",
		"insideStartTop", "insideStartBottom", "insideMiddleTop",
		"insideMiddleBottom", "insideEndTop", "insideEndBottom")),
	raws("offset", "margin", "formatter", "ellipsis"),
	option.Object("textStyle", TextStyle),
	option.Object("rich", TextStyle),
	option.Raw("precision"),
	option.Alias("style", "textStyle"),
)

// Emphasis styles an element while highlighted.
var Emphasis = option.NewSchema("Emphasis",
	option.Object("label", Label),
	option.Object("itemStyle", ItemStyle),
	option.Object("lineStyle", LineStyle),
)

// markerMixin is the symbol block shared by mark points, lines and areas.
var markerMixin = option.NewSchema("markerMixin",
	raws("symbol", "symbolSize", "symbolRotate", "symbolKeepAspect", "symbolOffset", "silent"),
	option.Object("label", Label),
	option.Object("itemStyle", ItemStyle),
	option.Object("lineStyle", LineStyle),
	option.Object("emphasis", Emphasis),
)

// MarkPointData is one marked point.
var MarkPointData = option.NewSchema("MarkPointData",
	option.Extends(markerMixin),
	option.Raw("name"),
	option.Raw("type", option.Choices("max", "min", "average")),
	raws("valueIndex", "valueDim", "value", "x", "y", "coord"),
)

// MarkPoint marks points of a series.
var MarkPoint = option.NewSchema("MarkPoint",
	option.Extends(markerMixin, AnimationMixin),
	option.Array("data", MarkPointData),
)

// MarkLine marks lines of a series.
var MarkLine = option.NewSchema("MarkLine",
	option.Extends(markerMixin, AnimationMixin),
	raws("precision", "data"),
)

// MarkArea marks areas of a series.
var MarkArea = option.NewSchema("MarkArea",
	option.Extends(markerMixin, AnimationMixin),
	option.Raw("data"),
)

// Handle is the drag handle of an axis pointer.
var Handle = option.NewSchema("Handle",
	option.Extends(ShadowMixin),
	raws("icon", "size", "margin", "throttle"),
)

// AxisPointer indicates the axis position under the cursor.
var AxisPointer = option.NewSchema("AxisPointer",
	option.Extends(AnimationMixin),
	option.Raw("type", option.Choices("line", "shadow", "cross", "none")),
	option.Raw("triggerOn"),
	option.Raw("axis", option.Choices("auto", "x", "y", "radius", "angle")),
	raws("snap", "triggerTooltip", "value", "status", "link"),
	option.Object("label", Label),
	option.Object("handle", Handle),
	option.Object("lineStyle", LineStyle),
	option.Object("shadowStyle", ShadowStyle),
	option.Object("crossStyle", LineStyle),
)

// Tooltip is the hover popup.
var Tooltip = option.NewSchema("Tooltip",
	option.Extends(StyleMixin),
	option.Raw("trigger", option.Choices("axis", "item", "none")),
	option.Object("axisPointer", AxisPointer),
	raws("showContent", "alwaysShowContent"),
	option.Raw("triggerOn", option.Choices("mousemove", "click", "mousemove|click", "none")),
	raws("showDelay", "hideDelay", "enterable"),
	option.Raw("renderMode", option.Choices("html", "richText")),
	raws("confine", "appendToBody", "transitionDuration", "padding"),
	option.Raw("position", option.Choices("inside", "top", "bottom", "left", "right")),
	option.Raw("formatter", option.Doc("string template or callback (scalar.JS)")),
	option.Object("textStyle", TextStyle),
	option.Raw("extraCssText"),
	option.Alias("style", "textStyle"),
)

// Dimension describes one dataset dimension.
var Dimension = option.NewSchema("Dimension",
	option.Raw("name"),
	option.Raw("type", option.Choices("number", "ordinal", "float", "int", "time")),
	option.Raw("displayName"),
)

// Encode maps dataset dimensions to visual channels.
var Encode = option.NewSchema("Encode",
	raws("x", "y", "single", "radius", "angle", "lng", "lat",
		"tooltip", "seriesName", "itemId", "itemName"),
)

// Dataset holds tabular source data.
var Dataset = option.NewSchema("Dataset",
	option.Raw("source"),
	option.Raw("dimensions", option.Default([]any{})),
	option.Raw("sourceHeader"),
)

var ariaSeparator = option.NewSchema("AriaSeparator", raws("middle", "end"))

var ariaItem = option.NewSchema("AriaItem",
	raws("prefix", "withName", "withoutName", "maxCount", "allData", "partialData"),
	option.Object("separator", ariaSeparator),
)

// Aria configures accessibility descriptions.
var Aria = option.NewSchema("Aria",
	raws("description", "withTitle", "withoutTitle"),
	option.Object("general", option.NewSchema("AriaGeneral", raws("withTitle", "withoutTitle"))),
	option.Object("series", ariaItem),
	option.Object("data", ariaItem),
)
