package schemas

import "github.com/goliatone/go-chartopts/pkg/option"

// GLScript is the extension script needed by 3D components.
const GLScript = "echarts-gl.min.js"

var shadingChoices = []string{"color", "lambert", "realistic"}

// Material configures a 3D surface texture.
var Material = option.NewSchema("Material",
	raws("detailTexture", "textureTiling", "textureOffset"),
)

// RealisticMaterial is a physically based material.
var RealisticMaterial = option.NewSchema("RealisticMaterial",
	option.Extends(Material),
	raws("normalTexture", "roughness", "metalness", "roughnessAdjust", "metalnessAdjust"),
)

// Light configures scene lighting.
var Light = option.NewSchema("Light",
	option.Object("main", option.NewSchema("MainLight",
		raws("color", "intensity", "shadow", "shadowQuality", "alpha", "beta", "time"))),
	option.Object("ambient", option.NewSchema("AmbientLight", raws("color", "intensity"))),
	option.Object("ambientCubemap", option.NewSchema("AmbientCubemap",
		raws("texture", "diffuseIntensity", "specularIntensity"))),
)

// PostEffect configures screen space effects. SSAO is an alias of
// screenSpaceAmbientOcclusion.
var PostEffect = option.NewSchema("PostEffect",
	option.Raw("enable"),
	option.Object("bloom", option.NewSchema("Bloom", raws("enable", "bloomIntensity"))),
	option.Object("depthOfField", option.NewSchema("DepthOfField",
		raws("enable", "focalDistance", "focalRange", "fstop", "blurRadius"))),
	option.Object("screenSpaceAmbientOcclusion", option.NewSchema("SSAO",
		raws("enable", "quality", "radius", "intensity"))),
	option.Object("colorCorrection", option.NewSchema("ColorCorrection",
		raws("enable", "lookupTexture", "exposure", "brightness", "contrast", "saturation"))),
	raws("FXAA", "temporalSuperSampling"),
	option.Alias("SSAO", "screenSpaceAmbientOcclusion"),
)

// ViewControl configures camera interaction.
var ViewControl = option.NewSchema("ViewControl",
	option.Raw("projection", option.Choices("perspective", "orthographic")),
	option.Raw("autoRotate"),
	option.Raw("autoRotateDirection", option.Choices("cw", "ccw")),
	raws("autoRotateSpeed", "autoRotateAfterStill", "damping",
		"rotateSensitivity", "zoomSensitivity", "panSensitivity"),
	option.Raw("panMouseButton", option.Choices("left", "middle", "right")),
	option.Raw("rotateMouseButton", option.Choices("left", "middle", "right")),
	raws("distance", "minDistance", "maxDistance", "orthographicSize",
		"minOrthographicSize", "maxOrthographicSize", "alpha", "beta",
		"minAlpha", "maxAlpha", "minBeta", "maxBeta", "center",
		"animation", "animationDurationUpdate", "animationEasingUpdate", "targetCoord"),
)

var shadingMixin = option.NewSchema("shadingMixin",
	option.Raw("environment"),
	option.Raw("shading", option.Choices(shadingChoices...)),
	option.Object("realisticMaterial", RealisticMaterial),
	option.Object("lambertMaterial", Material),
	option.Object("colorMaterial", Material),
	option.Object("light", Light),
	option.Object("postEffect", PostEffect),
	option.Object("viewControl", ViewControl),
)

// Grid3D is the 3D cartesian box.
var Grid3D = option.NewSchema("Grid3D",
	option.Extends(shadingMixin, PositionMixin),
	raws("boxWidth", "boxHeight", "boxDepth"),
	option.Object("axisLine", AxisLine),
	option.Object("axisPointer", AxisPointer),
	option.Depends(GLScript),
)

// GlobeLayer is one texture layer of a globe.
var GlobeLayer = option.NewSchema("GlobeLayer",
	option.Raw("type", option.Choices("overlay", "blend")),
	option.Raw("name"),
	option.Raw("blendTo", option.Choices("albedo", "emission")),
	option.Raw("intensity"),
	option.Raw("shading", option.Choices(shadingChoices...)),
	raws("distance", "texture"),
)

// Globe is the 3D globe component.
var Globe = option.NewSchema("Globe",
	option.Extends(PositionMixin, shadingMixin),
	raws("globeRadius", "globeOuterRadius", "baseTexture", "heightTexture",
		"displacementTexture", "displacementScale"),
	option.Raw("displacementQuality", option.Choices("low", "medium", "high", "ultra")),
	option.Array("layers", GlobeLayer),
	option.Depends(GLScript),
)
