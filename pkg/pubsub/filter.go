package pubsub

import (
	"strings"
	"time"

	"github.com/google/cel-go/cel"
)

// eventFilter wraps a compiled CEL program evaluated against decoded events.
// Filtered-out events are skipped but still count toward flow control.
type eventFilter struct {
	prog cel.Program
}

// newEventFilter compiles expr. An empty expression returns a nil filter.
func newEventFilter(expr string) (*eventFilter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}
	env, err := cel.NewEnv(
		cel.Variable("topic", cel.StringType),
		cel.Variable("replay_id", cel.UintType),
		cel.Variable("schema_id", cel.StringType),
		cel.Variable("event_id", cel.StringType),
		// Decoded payload (map/list/values) for field filtering
		cel.Variable("payload", cel.DynType),
		// Current time in ms for windowed filters
		cel.Variable("now_ms", cel.IntType),
	)
	if err != nil {
		return nil, err
	}
	ast, iss := env.Parse(expr)
	if iss != nil && iss.Err() != nil {
		return nil, iss.Err()
	}
	checked, iss2 := env.Check(ast)
	if iss2 != nil && iss2.Err() != nil {
		return nil, iss2.Err()
	}
	prog, err := env.Program(checked)
	if err != nil {
		return nil, err
	}
	return &eventFilter{prog: prog}, nil
}

// Eval evaluates the expression against one decoded event. Evaluation errors
// filter the event out.
func (f *eventFilter) Eval(topic string, ev *Event) bool {
	out, _, err := f.prog.Eval(map[string]any{
		"topic":     topic,
		"replay_id": ev.ReplayID,
		"schema_id": ev.SchemaID,
		"event_id":  ev.EventID,
		"payload":   ev.Payload,
		"now_ms":    time.Now().UnixMilli(),
	})
	if err != nil {
		return false
	}
	b, ok := out.Value().(bool)
	return ok && b
}
