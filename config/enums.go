package config

//go:generate go tool go-enum --marshal --names

// What to do with SVG pictures when they are embedded.
// ENUM(keep, rasterize)
type SVGMode int
