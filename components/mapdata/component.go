package mapdata

import "net/http"

// Component bundles the handler configuration and routing helpers.
type Component struct {
	opts Options
}

func New(fns ...OptionFn) *Component {
	return &Component{opts: NewOptions(fns...)}
}

// Options returns a copy of the component configuration.
func (c *Component) Options() Options {
	if c == nil {
		return NewOptions()
	}
	return c.opts
}

// Handler returns a mux serving both datasets under the route path.
func (c *Component) Handler() http.Handler {
	mux := http.NewServeMux()
	_, _ = RegisterRoutesWithOptions(mux, "", c.Options())
	return mux
}

func (c *Component) RegisterRoutes(mux Mux, basePath string) ([]string, error) {
	return RegisterRoutesWithOptions(mux, basePath, c.Options())
}
