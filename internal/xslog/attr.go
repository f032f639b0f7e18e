package xslog

import (
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/garrettladley/lyra/internal/version"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func ErrorAny(err any) slog.Attr {
	return slog.Any(keyError, err)
}

func Stack() slog.Attr {
	const stackKey = "stack"
	return slog.String(stackKey, string(debug.Stack()))
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func RequestID(requestID string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, requestID)
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func SessionID(id string) slog.Attr {
	const sessionIDKey = "session_id"
	return slog.String(sessionIDKey, id)
}

func Operation(op string) slog.Attr {
	const operationKey = "operation"
	return slog.String(operationKey, op)
}

func ContentID(id int64) slog.Attr {
	const contentIDKey = "content_id"
	return slog.Int64(contentIDKey, id)
}

func Platform(platform string) slog.Attr {
	const platformKey = "platform"
	return slog.String(platformKey, platform)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func DaysAhead(days int) slog.Attr {
	const daysAheadKey = "days_ahead"
	return slog.Int(daysAheadKey, days)
}

func Seq(seq uint64) slog.Attr {
	const seqKey = "seq"
	return slog.Uint64(seqKey, seq)
}

func Element(id string) slog.Attr {
	const elementKey = "element"
	return slog.String(elementKey, id)
}

func Timer(name string) slog.Attr {
	const timerKey = "timer"
	return slog.String(timerKey, name)
}

func Interval(d time.Duration) slog.Attr {
	const intervalKey = "interval"
	return slog.Duration(intervalKey, d)
}

func Store(scheme string) slog.Attr {
	const storeKey = "store"
	return slog.String(storeKey, scheme)
}
