package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridlock/manager"
)

// errExit signals a clean shutdown request from inside the loop.
var errExit = errors.New("exit")

// repl dispatches shell commands against one Manager. It remembers the
// deadlocked set of the last detection so 'graph' can highlight those
// nodes — the graph builder itself never sees detection output.
type repl struct {
	mgr        *manager.Manager
	out        io.Writer
	in         io.Reader
	deadlocked map[string]struct{}
}

func newREPL(mgr *manager.Manager, out io.Writer, in io.Reader) *repl {
	return &repl{mgr: mgr, out: out, in: in, deadlocked: map[string]struct{}{}}
}

func (r *repl) run() error {
	fmt.Fprintln(r.out, styleTitle.Render("gridlock — deadlock detection shell"))
	fmt.Fprintln(r.out, styleMuted.Render("Type 'help' for a list of commands"))

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "\n> ")
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		err := r.dispatch(strings.ToLower(parts[0]), parts[1:])
		if errors.Is(err, errExit) {
			fmt.Fprintln(r.out, "Exiting...")
			return nil
		}
		if err != nil {
			slog.Error("command failed", "command", parts[0], "error", err)
		}
	}

	return scanner.Err()
}

func (r *repl) dispatch(cmd string, args []string) error {
	switch cmd {
	case "help":
		return r.help()
	case "add-process":
		return r.addProcess(args)
	case "add-resource":
		return r.addResource(args)
	case "update-allocation":
		return r.updateAllocation(args)
	case "update-request":
		return r.updateRequest(args)
	case "remove-process":
		return r.removeProcess(args)
	case "remove-resource":
		return r.removeResource(args)
	case "show-matrix":
		return r.showMatrix()
	case "detect":
		return r.detect()
	case "graph":
		return r.graph()
	case "load-example":
		r.mgr.LoadExample()
		fmt.Fprintln(r.out, "Loaded sample example")
		return r.showMatrix()
	case "clear":
		r.mgr.Clear()
		r.deadlocked = map[string]struct{}{}
		fmt.Fprintln(r.out, "Cleared all processes and resources")
		return nil
	case "exit", "quit":
		return errExit
	default:
		fmt.Fprintf(r.out, "Unknown command: %s. Type 'help' for a list of commands.\n", cmd)
		return nil
	}
}

func (r *repl) help() error {
	fmt.Fprintln(r.out, styleHeader.Render("Available commands:"))
	for _, line := range []string{
		"  help                                            - Show this help message",
		"  add-process <id>                                - Add a new process",
		"  add-resource <id> [instances]                   - Add a new resource (default: 1 instance)",
		"  update-allocation <process> <resource> <value>  - Set allocation value",
		"  update-request <process> <resource> <value>     - Set request value",
		"  remove-process <id>                             - Remove a process",
		"  remove-resource <id>                            - Remove a resource",
		"  show-matrix                                     - Show allocation and request matrices",
		"  detect                                          - Run deadlock detection",
		"  graph                                           - Show the resource-allocation graph",
		"  load-example                                    - Load a sample scenario",
		"  clear                                           - Remove everything",
		"  exit                                            - Leave the shell",
	} {
		fmt.Fprintln(r.out, line)
	}

	return nil
}

func (r *repl) addProcess(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("process id is required")
	}
	id := strings.ToUpper(args[0])
	if err := r.mgr.AddProcess(id); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Process %s added\n", id)

	return nil
}

func (r *repl) addResource(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("resource id is required")
	}
	id := strings.ToUpper(args[0])
	instances := 1
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("instances must be an integer: %q", args[1])
		}
		instances = n
	}
	if err := r.mgr.AddResource(id, instances, instances > 1); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Resource %s added with %d instance(s)\n", id, instances)

	return nil
}

func (r *repl) updateAllocation(args []string) error {
	pid, rid, value, err := triple(args)
	if err != nil {
		return err
	}
	actual, err := r.mgr.UpdateAllocation(pid, rid, value)
	if err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Updated allocation: %s allocated %d of %s\n", pid, actual, rid)

	return nil
}

func (r *repl) updateRequest(args []string) error {
	pid, rid, value, err := triple(args)
	if err != nil {
		return err
	}
	if err := r.mgr.UpdateRequest(pid, rid, value); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Updated request: %s requesting %d of %s\n", pid, value, rid)

	return nil
}

func (r *repl) removeProcess(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("process id is required")
	}
	id := strings.ToUpper(args[0])
	if err := r.mgr.RemoveProcess(id); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Process %s removed\n", id)

	return nil
}

func (r *repl) removeResource(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("resource id is required")
	}
	id := strings.ToUpper(args[0])
	if err := r.mgr.RemoveResource(id); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "Resource %s removed\n", id)

	return nil
}

func (r *repl) showMatrix() error {
	m := r.mgr.Snapshot()
	if len(m.Processes) == 0 && len(m.Resources) == 0 {
		fmt.Fprintln(r.out, "No processes or resources defined yet")
		return nil
	}
	fmt.Fprint(r.out, renderMatrix(m))

	return nil
}

func (r *repl) detect() error {
	processes, resources := r.mgr.Len()
	if processes == 0 || resources == 0 {
		fmt.Fprintln(r.out, "No processes or resources defined yet")
		return nil
	}

	res, err := r.mgr.Detect()
	if err != nil {
		return err
	}

	r.deadlocked = map[string]struct{}{}
	for _, id := range res.Deadlocked {
		r.deadlocked[id] = struct{}{}
	}
	fmt.Fprint(r.out, renderResult(res))

	return nil
}

func (r *repl) graph() error {
	g, err := r.mgr.Graph()
	if err != nil {
		return err
	}
	fmt.Fprint(r.out, renderGraph(g, r.deadlocked))

	return nil
}

// triple parses "<process> <resource> <value>" arguments.
func triple(args []string) (pid, rid string, value int, err error) {
	if len(args) < 3 {
		return "", "", 0, fmt.Errorf("process id, resource id, and value are required")
	}
	value, err = strconv.Atoi(args[2])
	if err != nil {
		return "", "", 0, fmt.Errorf("value must be an integer: %q", args[2])
	}

	return strings.ToUpper(args[0]), strings.ToUpper(args[1]), value, nil
}
