package schemas

import "github.com/goliatone/go-chartopts/pkg/option"

// raws declares several pass-through fields at once.
func raws(names ...string) option.Decl {
	return func(s *option.Schema) {
		for _, name := range names {
			option.Raw(name)(s)
		}
	}
}

var symbolChoices = []string{
	"circle", "rect", "roundRect", "triangle", "diamond", "pin", "arrow", "none",
}

// AnimationMixin carries the animation settings shared by series and
// components.
var AnimationMixin = option.NewSchema("AnimationMixin",
	option.Raw("animation", option.Doc("enable animation")),
	option.Raw("animationThreshold", option.Doc("disable animation above this many elements")),
	option.Raw("animationDuration", option.Doc("duration of the first animation")),
	raws("animationEasing", "animationDelay", "animationDelayUpdate",
		"animationEasingUpdate", "animationDurationUpdate"),
	option.Raw("blendMode", option.Choices("source-over", "lighter")),
	raws("hoverLayerThreshold", "useUTC"),
	option.Raw("animationType", option.Choices("expansion", "scale")),
	option.Raw("animationTypeUpdate"),
)

// Animation is a standalone animation block.
var Animation = option.NewSchema("Animation", option.Extends(AnimationMixin))

// PositionMixin places a component inside the container.
var PositionMixin = option.NewSchema("PositionMixin",
	raws("x", "y", "left", "right", "top", "bottom", "width", "height"),
)

// ColorMixin carries visual color channels.
var ColorMixin = option.NewSchema("ColorMixin",
	raws("color", "colorAlpha", "colorSaturation"),
)

// ShadowMixin carries color and shadow settings.
var ShadowMixin = option.NewSchema("ShadowMixin",
	raws("color", "shadowColor", "shadowOffsetX", "shadowOffsetY", "shadowBlur", "opacity"),
)

// StyleMixin adds a box style on top of ShadowMixin. bgcolor is an alias of
// backgroundColor.
var StyleMixin = option.NewSchema("StyleMixin",
	option.Extends(ShadowMixin),
	raws("backgroundColor", "borderWidth", "borderColor", "borderRadius"),
	option.Alias("bgcolor", "backgroundColor"),
)

// SymbolMixin carries the data-point symbol settings.
var SymbolMixin = option.NewSchema("SymbolMixin",
	option.Raw("symbol", option.Choices(symbolChoices...)),
	raws("symbolSize", "symbolRotate", "symbolKeepAspect", "symbolOffset",
		"showSymbol", "showAllSymbol"),
)
