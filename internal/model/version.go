package model

// Version is overwritten at release time via -ldflags.
var Version = "0.3.1"
