package repository

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// where accumulates AND-ed conditions with positional arguments. Each condition
// carries a single %d verb that is replaced with its argument's position.
type where struct {
	conds []string
	args  []any
}

func (w *where) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *where) addUUID(cond string, id *uuid.UUID) {
	if id == nil {
		return
	}
	w.add(cond, *id)
}

func (w *where) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// next returns the placeholder for the argument that would be appended next.
func (w *where) next(arg any) string {
	w.args = append(w.args, arg)
	return fmt.Sprintf("$%d", len(w.args))
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
