// Package models defines the property and configuration structures exchanged
// between panel code, the config builders and the rendering engine.
package models
