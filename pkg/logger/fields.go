package logger

import "time"

func String(key, value string) Field          { return Field{Key: key, Value: value} }
func Int(key string, value int) Field         { return Field{Key: key, Value: value} }
func Int64(key string, value int64) Field     { return Field{Key: key, Value: value} }
func Bool(key string, value bool) Field       { return Field{Key: key, Value: value} }
func Any(key string, value interface{}) Field { return Field{Key: key, Value: value} }

// Err records err's message under "error". A nil error is logged as null.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Duration is logged in whole milliseconds.
func Duration(key string, d time.Duration) Field {
	return Field{Key: key, Value: d.Milliseconds()}
}

// Site fields. Keep the keys stable, dashboards filter on them.

func Page(name string) Field      { return String("page", name) }
func SubmissionID(id int64) Field { return Int64("submission_id", id) }
func Email(addr string) Field     { return String("email", addr) }
func Provider(name string) Field  { return String("provider", name) }
func Status(code int) Field       { return Int("status", code) }
func Method(method string) Field  { return String("method", method) }
func Path(path string) Field      { return String("path", path) }
func RemoteIP(ip string) Field    { return String("remote_ip", ip) }
func Operation(op string) Field   { return String("operation", op) }
func Count(n int) Field           { return Int("count", n) }
func HTMX(fromHTMX bool) Field    { return Bool("htmx", fromHTMX) }
func Route(pattern string) Field  { return String("route", pattern) }
