// Package assets serves a local directory of chart scripts over HTTP and
// points the shared configuration at it, so generated pages load
// echarts.min.js and map scripts from the running server instead of a CDN.
package assets
