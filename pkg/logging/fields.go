package logging

import (
	"time"
)

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value.String()}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Road-graph field helpers
func Component(name string) Field {
	return String("component", name)
}

func NodeID(id int) Field {
	return Int("node_id", id)
}

func EdgeID(id int) Field {
	return Int("edge_id", id)
}

func NodeCount(n int) Field {
	return Int("node_count", n)
}

func EdgeCount(n int) Field {
	return Int("edge_count", n)
}

func ProblemCount(n int) Field {
	return Int("problem_count", n)
}

func Latency(d time.Duration) Field {
	return Duration("latency", d)
}

func Path(p string) Field {
	return String("path", p)
}
