package log

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
)

const startKey = "log.start"

type entry struct {
	TS        string         `json:"ts"`
	Level     string         `json:"level"`
	Action    string         `json:"action,omitempty"`
	ReqID     string         `json:"req_id,omitempty"`
	Route     string         `json:"route,omitempty"`
	Query     string         `json:"query,omitempty"`
	ClientIP  string         `json:"client_ip,omitempty"`
	LatencyMs *float64       `json:"latency_ms,omitempty"`
	Err       string         `json:"err,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// Timing records when a request entered the app so later log lines can
// report how long it has been running.
func Timing() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(startKey, time.Now())
		return c.Next()
	}
}

// write emits one JSON line. c may be nil for events outside a request.
func write(level string, c *fiber.Ctx, action string, err error, fields map[string]any) {
	e := entry{TS: time.Now().UTC().Format(time.RFC3339Nano), Level: level, Action: action, Fields: fields}
	if c != nil {
		e.Route = c.Method() + " " + c.Path()
		e.Query = string(c.Request().URI().QueryString())
		e.ClientIP = c.IP()
		if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
			e.ReqID = rid
		}
		if start, ok := c.Locals(startKey).(time.Time); ok {
			ms := float64(time.Since(start).Microseconds()) / 1000
			e.LatencyMs = &ms
		}
	}
	if err != nil {
		e.Err = err.Error()
	}
	b, _ := json.Marshal(e)
	log.Println(string(b))
}

func Info(c *fiber.Ctx, action string, fields map[string]any) { write("info", c, action, nil, fields) }
func Warn(c *fiber.Ctx, action string, fields map[string]any) { write("warn", c, action, nil, fields) }
func Error(c *fiber.Ctx, action string, err error, fields map[string]any) {
	write("error", c, action, err, fields)
}

// TeeFile additionally appends log output to path. The returned closer
// restores stdout-only logging.
func TeeFile(path string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(io.MultiWriter(os.Stdout, f))
	return closerFunc(func() error {
		log.SetOutput(os.Stdout)
		return f.Close()
	}), nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
