package logger

import (
	"bytes"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger writes coloured console logs into an in-memory buffer so they can
// be shown next to the diagram they describe.
type ZapLogger struct {
	log *zap.Logger

	mu     sync.Mutex
	logBuf *bytes.Buffer
}

type lockedBuffer struct {
	z *ZapLogger
}

func (w lockedBuffer) Write(p []byte) (int, error) {
	w.z.mu.Lock()
	defer w.z.mu.Unlock()
	return w.z.logBuf.Write(p)
}

// New returns a logger buffering every entry at level or above.
func New(level zapcore.Level) *ZapLogger {
	z := &ZapLogger{logBuf: &bytes.Buffer{}}

	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(config), zapcore.AddSync(lockedBuffer{z}), level)
	z.log = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
	return z
}

// NewNop returns a logger that drops everything.
func NewNop() *ZapLogger {
	return &ZapLogger{log: zap.NewNop()}
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colorCode string
	switch level {
	case zapcore.DebugLevel:
		colorCode = "\033[36m" // cyan
	case zapcore.InfoLevel:
		colorCode = "\033[32m" // green
	case zapcore.WarnLevel:
		colorCode = "\033[33m" // yellow
	case zapcore.ErrorLevel:
		colorCode = "\033[31m" // red
	default:
		colorCode = "\033[0m"
	}
	enc.AppendString(colorCode + level.String() + "\033[0m")
}

var ansiColor = regexp.MustCompile(`\033\[(\d+)m`)

// ansiToHTML turns ANSI colour codes into inline-styled spans inside a <pre>.
func ansiToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	open := false

	result.WriteString("<pre>")

	for _, match := range ansiColor.FindAllStringSubmatchIndex(input, -1) {
		start, end := match[0], match[1]
		if start > lastIndex {
			result.WriteString(escapeHTML(input[lastIndex:start]))
		}

		code := input[match[2]:match[3]]
		if color, ok := colorMap[code]; ok {
			if open {
				result.WriteString("</span>")
			}
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		} else if code == "0" && open {
			result.WriteString("</span>")
			open = false
		}

		lastIndex = end
	}

	if lastIndex < len(input) {
		result.WriteString(escapeHTML(input[lastIndex:]))
	}
	if open {
		result.WriteString("</span>")
	}
	result.WriteString("</pre>")

	return result.String()
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

// HTML renders everything logged so far.
func (z *ZapLogger) HTML() string {
	return ansiToHTML(z.String())
}

// String returns the raw buffered log, colour codes included.
func (z *ZapLogger) String() string {
	if z.logBuf == nil {
		return ""
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	return z.logBuf.String()
}

func (z *ZapLogger) Reset() {
	if z.logBuf == nil {
		return
	}
	z.mu.Lock()
	defer z.mu.Unlock()
	z.logBuf.Reset()
}

// Zap exposes the underlying logger.
func (z *ZapLogger) Zap() *zap.Logger {
	return z.log
}

func (z *ZapLogger) Debug(msg string, fields ...zap.Field) {
	z.log.Debug(msg, fields...)
}

func (z *ZapLogger) Info(msg string, fields ...zap.Field) {
	z.log.Info(msg, fields...)
}

func (z *ZapLogger) Warn(msg string, fields ...zap.Field) {
	z.log.Warn(msg, fields...)
}

func (z *ZapLogger) Error(msg string, fields ...zap.Field) {
	z.log.Error(msg, fields...)
}

func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}
