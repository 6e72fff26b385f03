package themes

import (
	"strconv"

	theme "github.com/goliatone/go-theme"
)

// Token keys read from manifests.
const (
	TokenBackground = "background"
	TokenText       = "text"
	// TokenInit names the echarts.init theme the page should request.
	TokenInit = "init"
	// colorPrefix prefixes palette entries: color.0, color.1 and so on.
	colorPrefix = "color."
)

// DefaultTheme is selected when no name is given.
const DefaultTheme = "white"

var defaultPalette = []string{
	"#c23531", "#2f4554", "#61a0a8", "#d48265", "#91c7ae",
	"#749f83", "#ca8622", "#bda29a", "#6e7074", "#546570", "#c4ccd3",
}

// Builtin returns fresh copies of the bundled manifests.
func Builtin() []*theme.Manifest {
	return []*theme.Manifest{
		{
			Name:    DefaultTheme,
			Version: "1.0.0",
			Tokens: withPalette(map[string]string{
				TokenBackground: "#ffffff",
				TokenText:       "#333333",
				TokenInit:       "white",
			}, defaultPalette),
			Variants: map[string]theme.Variant{
				"dark": {
					Tokens: map[string]string{
						TokenBackground: "#100c2a",
						TokenText:       "#eeeeee",
						TokenInit:       "dark",
					},
				},
			},
		},
		{
			Name:    "dark",
			Version: "1.0.0",
			Tokens: withPalette(map[string]string{
				TokenBackground: "#100c2a",
				TokenText:       "#eeeeee",
				TokenInit:       "dark",
			}, []string{"#4992ff", "#7cffb2", "#fddd60", "#ff6e76", "#58d9f9", "#05c091", "#ff8a45", "#8d48e3", "#dd79ff"}),
		},
		{
			Name:    "macarons",
			Version: "1.0.0",
			Tokens: withPalette(map[string]string{
				TokenBackground: "#ffffff",
				TokenText:       "#008acd",
				TokenInit:       "white",
			}, []string{"#2ec7c9", "#b6a2de", "#5ab1ef", "#ffb980", "#d87a80", "#8d98b3", "#e5cf0d", "#97b552", "#95706d", "#dc69aa"}),
		},
		{
			Name:    "vintage",
			Version: "1.0.0",
			Tokens: withPalette(map[string]string{
				TokenBackground: "#fef8ef",
				TokenText:       "#333333",
				TokenInit:       "white",
			}, []string{"#d87c7c", "#919e8b", "#d7ab82", "#6e7074", "#61a0a8", "#efa18d", "#787464", "#cc7e63", "#724e58", "#4b565b"}),
		},
	}
}

func withPalette(tokens map[string]string, colors []string) map[string]string {
	for i, c := range colors {
		tokens[colorPrefix+strconv.Itoa(i)] = c
	}
	return tokens
}
