// Package mapdata provides bundled geography reference data for map charts:
// city coordinates keyed by name, the script file of each bundled map, and
// custom GeoJSON maps registered at runtime.
//
// Names are matched loosely. Plain ASCII queries are looked up in the
// English map table, anything else in the Chinese one. A small net/http
// handler exposes ranked search results as JSON under /api/mapdata.
package mapdata
