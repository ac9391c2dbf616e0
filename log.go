package ril

import "github.com/rapidimg/ril/internal/rimage"

// Logger is the one diagnostic this package ever emits: a warning when
// NewImageWithContent's initial buffer doesn't match the descriptor's
// size. An embedding application can redirect it with Logger.SetOutput
// or silence it with Logger.SetOutput(io.Discard).
var Logger = rimage.Logger
