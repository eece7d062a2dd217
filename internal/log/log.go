package log

import (
	"github.com/cottand/elmgen/ir"
	"log/slog"
	"os"
)

// level is shared by everything DefaultLogger wraps, so SetLevel takes
// effect retroactively on loggers derived from it.
var level = &slog.LevelVar{}

var LoggerOpts = &slog.HandlerOptions{
	Level: level,
	ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == "time" {
			return slog.Attr{}
		}
		return a
	},
}

// DefaultLogger lazy-prints expression trees passed as attributes; see
// ir.SlogHandler.
var DefaultLogger = slog.New(ir.SlogHandler(slog.NewTextHandler(os.Stdout, LoggerOpts)))

func SetLevel(l slog.Level) {
	level.Set(l)
}
