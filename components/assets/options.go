package assets

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/goliatone/go-chartopts/pkg/config"
)

const (
	DefaultHost   = "127.0.0.1"
	DefaultPrefix = "/assets/"
	DefaultGrace  = 5 * time.Second
)

// Options configure the server. Port 0 picks a free port.
type Options struct {
	Dir    string
	Host   string
	Port   int
	Prefix string
	Grace  time.Duration
	Config *config.Config
	Logger *slog.Logger
	Routes []Route
}

// Route is an extra handler served next to the files.
type Route struct {
	Pattern string
	Handler http.Handler
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		Dir:    ".",
		Host:   DefaultHost,
		Prefix: DefaultPrefix,
		Grace:  DefaultGrace,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Host == "" {
		opts.Host = DefaultHost
	}
	if opts.Prefix == "" {
		opts.Prefix = DefaultPrefix
	}
	opts.Prefix = "/" + trimSlashes(opts.Prefix) + "/"
	if opts.Prefix == "//" {
		opts.Prefix = "/"
	}
	if opts.Grace <= 0 {
		opts.Grace = DefaultGrace
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return opts
}

func WithDir(dir string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Dir = dir
	}
}

func WithAddr(host string, port int) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Host = host
		o.Port = port
	}
}

func WithPrefix(prefix string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Prefix = prefix
	}
}

func WithGrace(grace time.Duration) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Grace = grace
	}
}

// WithConfig makes the server rewrite cfg's assets URL once it listens.
func WithConfig(cfg *config.Config) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Config = cfg
	}
}

func WithLogger(logger *slog.Logger) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Logger = logger
	}
}

// WithRoute serves handler at pattern on the same listener.
func WithRoute(pattern string, handler http.Handler) OptionFn {
	return func(o *Options) {
		if o == nil || pattern == "" || handler == nil {
			return
		}
		o.Routes = append(o.Routes, Route{Pattern: pattern, Handler: handler})
	}
}

func trimSlashes(s string) string {
	for len(s) > 0 && s[0] == '/' {
		s = s[1:]
	}
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}
