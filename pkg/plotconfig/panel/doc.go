// Package panel loads panel definitions from HCL, TOML or JSON files and
// replays them onto a plotconfig.ConfigBuilder.
//
// A definition lists scales, axes and series in the order the panel code
// would add them, an optional cursor policy and optional frame data. The
// HCL form looks like:
//
//	title = "CPU"
//
//	scale "y" {
//	  min = 0
//	  max = 100
//	}
//
//	axis "y" {
//	  label = "Percent"
//	}
//
//	series "cpu" {
//	  scale      = "y"
//	  line_color = "#e02f44"
//	}
package panel
