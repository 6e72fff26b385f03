package mapdata

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

type HTTPError interface {
	error
	StatusCode() int
}

type StatusError struct {
	Code int
	Err  error
}

func (e StatusError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return http.StatusText(e.Code)
}

func (e StatusError) Unwrap() error { return e.Err }

func (e StatusError) StatusCode() int {
	if e.Code <= 0 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// Kind selects the dataset a handler searches.
type Kind string

const (
	KindCities Kind = "cities"
	KindMaps   Kind = "maps"
)

type resultsResponse struct {
	Data []Result `json:"data"`
}

// NewHandler builds a handler searching kind with default options plus any
// overrides.
func NewHandler(kind Kind, fns ...OptionFn) http.Handler {
	return HandlerWithOptions(kind, NewOptions(fns...))
}

// HandlerWithOptions builds a handler from a pre-constructed Options value.
func HandlerWithOptions(kind Kind, opts Options) http.Handler {
	opts = NewOptions(func(o *Options) { *o = opts })
	logger := opts.Logger.With("component", "mapdata", "kind", string(kind))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", http.MethodGet+", "+http.MethodHead)
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}

		if opts.Guard != nil {
			if err := opts.Guard(r); err != nil {
				logger.Debug("request rejected", "path", r.URL.Path, "err", err)
				writeGuardError(w, err)
				return
			}
		}

		store := opts.Store
		if store == nil {
			loaded, err := Default()
			if err != nil {
				logger.Error("load bundled data", "err", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			store = loaded
		}

		query := r.URL.Query().Get(opts.SearchParam)
		limit := clampLimit(parseInt(r.URL.Query().Get(opts.LimitParam)), opts)

		var results []Result
		switch kind {
		case KindCities:
			results = store.SearchCities(query, limit)
		case KindMaps:
			results = store.SearchMaps(query, limit)
		default:
			http.NotFound(w, r)
			return
		}
		if results == nil {
			results = []Result{}
		}
		logger.Debug("search", "q", query, "limit", limit, "results", len(results))

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if r.Method == http.MethodHead {
			return
		}

		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(true)
		if err := enc.Encode(resultsResponse{Data: results}); err != nil {
			logger.Warn("write response", "err", err)
		}
	})
}

func writeGuardError(w http.ResponseWriter, err error) {
	code := http.StatusForbidden
	var httpErr HTTPError
	if errors.As(err, &httpErr) && httpErr != nil {
		code = httpErr.StatusCode()
		if code <= 0 {
			code = http.StatusForbidden
		}
	}
	http.Error(w, http.StatusText(code), code)
}

func parseInt(raw string) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}
