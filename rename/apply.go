package rename

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Apply renames every Move of a plan without problems, in order.
// It stops at the first failing rename; earlier renames are kept.
func Apply(dir string, plan *Plan) error {
	if err := plan.Err(); err != nil {
		return err
	}
	for _, move := range plan.Moves {
		oldFull := filepath.Join(dir, move.Old)
		newFull := filepath.Join(dir, move.New)
		if _, err := os.Lstat(newFull); err == nil {
			return fmt.Errorf("%w: %s", ErrCollision, newFull)
		}
		log.Printf("renaming: %s --> %s", oldFull, newFull)
		if err := os.Rename(oldFull, newFull); err != nil {
			return err
		}
	}
	return nil
}

// Log writes the files that would change and those without a viable target
func (plan *Plan) Log() {
	log.Printf("%d to rename, %d unchanged", len(plan.Moves), len(plan.Unchanged))
	for _, move := range plan.Moves {
		log.Printf("plan: %s --> %s", move.Old, move.New)
	}
	for _, name := range plan.BadNames {
		log.Printf("bad name: %s, %s", name, BadNameReason)
	}
	for _, name := range plan.Missing {
		log.Printf("key not found: %s", name)
	}
	for _, name := range plan.Collisions {
		log.Printf("collision: %s", name)
	}
}

// WriteTSV writes one old\tnew\tstatus line per file in the plan
func (plan *Plan) WriteTSV(w io.Writer) error {
	var collisions = make(map[string]bool)
	for _, name := range plan.Collisions {
		collisions[name] = true
	}
	var lines = []string{"old\tnew\tstatus"}
	for _, move := range plan.Moves {
		status := "rename"
		if collisions[move.New] {
			status = "collision"
		}
		lines = append(lines, move.Old+"\t"+move.New+"\t"+status)
	}
	for _, name := range plan.Unchanged {
		lines = append(lines, name+"\t"+name+"\tunchanged")
	}
	for _, name := range plan.BadNames {
		lines = append(lines, name+"\t\tbad name, "+BadNameReason)
	}
	for _, name := range plan.Missing {
		lines = append(lines, name+"\t\tkey not found")
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
