// Package logging builds the logrus logger used by cablenet from a
// config.LogConfig: level, text or JSON formatting, and either stderr or a
// size-rotated file (optionally teed to stderr). The "auto" format picks
// text for an interactive terminal and JSON otherwise.
package logging
