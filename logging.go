package blogicum

import (
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	slogmulti "github.com/samber/slog-multi"
	"gopkg.in/natefinch/lumberjack.v2"
)

func logColors(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	if !isatty.IsTerminal(f.Fd()) {
		return false
	}

	return os.Getenv("TERM") != "dumb"
}

func GetSlogHandler(debug bool, out io.Writer) slog.Handler {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return tint.NewHandler(out, &tint.Options{
		AddSource: true,
		Level:     level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if _, ok := attr.Value.Any().(error); attr.Key == "err" || ok {
				return tint.Attr(9, attr)
			}
			return attr
		},
		TimeFormat: time.RFC3339,
		NoColor:    !logColors(out),
	})
}

// GetFileSlogHandler fans out to the console handler and a rotating JSON log
// in logDir. With an empty logDir only the console handler is used.
func GetFileSlogHandler(debug bool, logDir string, out io.Writer) slog.Handler {
	console := GetSlogHandler(debug, out)
	if logDir == "" {
		return console
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	file := slog.NewJSONHandler(&lumberjack.Logger{
		Filename:   path.Join(logDir, "blogicum.log"),
		MaxSize:    50, // megabytes
		MaxBackups: 5,
	}, &slog.HandlerOptions{Level: level})

	return slogmulti.Fanout(console, file)
}
