// Package screen derives display geometry from pixel dimensions and an
// optional diagonal size.
//
// Inputs are parsed with prefix semantics, so values such as "1920px" or
// "15.6in" are accepted. A screen without a usable diagonal is still valid:
// only the pixel count and aspect ratio are available for it, and
// [Info.Metrics] reports false.
//
// All lengths are stored in a single unit (inches for the diagonal,
// centimeters for the physical size and millimeters for the dot pitch). The
// unit shown to users is chosen when serializing, with [UnitOptions].
package screen
