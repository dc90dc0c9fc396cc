// Package style turns a style set into measured text styles.
//
// A style set names the fonts a card uses and, for each semantic style
// (title, text, heading, ...), its family, size, colour, leading and
// alignment. Sizes are in millimetres and multiplied by the set's font scale,
// the ratio between a nominal size and the height the glyphs actually occupy.
//
// A Registry is built once per rendering session from a Set. It owns a
// private PDF surface used only for measuring, so measuring text never draws
// anything. A Registry is not safe for concurrent use: give each worker its
// own.
package style
