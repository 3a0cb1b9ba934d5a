package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/phrazzld/tasktrack/internal/domain"
	"github.com/phrazzld/tasktrack/internal/store"
)

const usage = `Commands:
  add <title> [description] [due-date]   create a regular task (due date: 2006-01-02)
  recur <title> <frequency> [description]  create a recurring task (daily|weekly|monthly)
  list [pending|completed|regular|recurring]  list tasks
  show <id>                              show one task
  done <id>                              mark a task complete
  export <json|csv|pdf> [path]           write a report
  help                                   show this help
  quit                                   exit`

// runREPL reads commands from r and writes responses to w until EOF or
// a quit command. Errors from individual commands are reported to w
// and never terminate the loop.
func (a *application) runREPL(r io.Reader, w io.Writer) error {
	fmt.Fprintln(w, "tasktrack - in-memory task tracker (type 'help' for commands)")

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return scanner.Err()
		}

		args := splitArgs(scanner.Text())
		if len(args) == 0 {
			continue
		}

		if args[0] == "quit" || args[0] == "exit" {
			return nil
		}
		a.dispatch(w, args[0], args[1:])
	}
}

func (a *application) dispatch(w io.Writer, cmd string, args []string) {
	switch cmd {
	case "help":
		fmt.Fprintln(w, usage)
	case "add":
		a.cmdAdd(w, args)
	case "recur":
		a.cmdRecur(w, args)
	case "list":
		a.cmdList(w, args)
	case "show":
		a.cmdShow(w, args)
	case "done":
		a.cmdDone(w, args)
	case "export":
		a.cmdExport(w, args)
	default:
		fmt.Fprintf(w, "unknown command %q (type 'help' for commands)\n", cmd)
	}
}

func (a *application) cmdAdd(w io.Writer, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(w, "usage: add <title> [description] [due-date]")
		return
	}
	var description, dueDate string
	if len(args) > 1 {
		description = args[1]
	}
	if len(args) > 2 {
		dueDate = args[2]
	}
	id := a.store.CreateRegular(args[0], description, dueDate)
	fmt.Fprintf(w, "created task %d\n", id)
}

func (a *application) cmdRecur(w io.Writer, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(w, "usage: recur <title> <frequency> [description]")
		return
	}
	var description string
	if len(args) > 2 {
		description = args[2]
	}
	id := a.store.CreateRecurring(args[0], description, domain.Frequency(args[1]))
	fmt.Fprintf(w, "created recurring task %d\n", id)
}

func (a *application) cmdList(w io.Writer, args []string) {
	var tasks []domain.Task
	if len(args) == 0 {
		tasks = a.store.All()
	} else {
		switch args[0] {
		case "pending":
			tasks = a.store.Filter(store.IsPending)
		case "completed":
			tasks = a.store.Filter(store.IsCompleted)
		case "regular":
			tasks = a.store.Filter(store.TypeIs(domain.TypeRegular))
		case "recurring":
			tasks = a.store.Filter(store.TypeIs(domain.TypeRecurring))
		default:
			fmt.Fprintln(w, "usage: list [pending|completed|regular|recurring]")
			return
		}
	}

	if len(tasks) == 0 {
		fmt.Fprintln(w, "no tasks")
		return
	}
	for _, t := range tasks {
		fmt.Fprintln(w, formatTask(t))
	}
}

func (a *application) cmdShow(w io.Writer, args []string) {
	id, ok := parseID(w, args, "usage: show <id>")
	if !ok {
		return
	}
	t, found := a.store.Get(id)
	if !found {
		fmt.Fprintf(w, "task %d not found\n", id)
		return
	}
	fmt.Fprintln(w, formatTask(t))
	if desc := t.Base().Description; desc != "" {
		fmt.Fprintf(w, "  %s\n", desc)
	}
}

func (a *application) cmdDone(w io.Writer, args []string) {
	id, ok := parseID(w, args, "usage: done <id>")
	if !ok {
		return
	}
	res := a.store.Complete(id)
	fmt.Fprintln(w, res.Message)
}

func (a *application) cmdExport(w io.Writer, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(w, "usage: export <json|csv|pdf> [path]")
		return
	}
	format := strings.ToLower(args[0])

	data, err := a.exporter.Export(format)
	if err != nil {
		fmt.Fprintf(w, "export failed: %v\n", err)
		return
	}

	path := ""
	if len(args) > 1 {
		path = args[1]
	} else {
		name := fmt.Sprintf("tasks-%s.%s", a.clock.Now().Format("20060102-150405"), format)
		path = filepath.Join(a.cfg.Export.Dir, name)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		fmt.Fprintf(w, "export failed: %v\n", err)
		return
	}
	fmt.Fprintf(w, "wrote %s\n", path)
}

func parseID(w io.Writer, args []string, usageLine string) (int64, bool) {
	if len(args) < 1 {
		fmt.Fprintln(w, usageLine)
		return 0, false
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(w, "invalid id %q\n", args[0])
		return 0, false
	}
	return id, true
}

func formatTask(t domain.Task) string {
	m := t.Base()

	status := " "
	if m.Completed {
		status = "x"
	}

	line := fmt.Sprintf("[%s] #%d %s (%s)", status, m.ID, m.Title, t.Type())
	switch v := t.(type) {
	case *domain.Regular:
		if v.DueDate != nil {
			line += ", due " + v.DueDate.Format(store.DueDateLayout)
		}
	case *domain.Recurring:
		line += fmt.Sprintf(", %s, next %s", v.Freq, v.NextOccurrence.Format(store.DueDateLayout))
	}
	return line
}

// splitArgs splits a command line into fields, honoring double quotes
// so titles and descriptions can contain spaces.
func splitArgs(line string) []string {
	var (
		args     []string
		current  strings.Builder
		inQuotes bool
		started  bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			started = true
		case !inQuotes && (r == ' ' || r == '\t'):
			if started {
				args = append(args, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(r)
			started = true
		}
	}
	if started {
		args = append(args, current.String())
	}
	return args
}
