package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/hollowcore/list"
	"github.com/wippyai/hollowcore/number"
	"github.com/wippyai/hollowcore/object"
	"github.com/wippyai/hollowcore/resource"
	"github.com/wippyai/hollowcore/set"
)

func main() {
	var (
		verbose     = flag.Bool("v", false, "Log object lifecycle to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		capacity    = flag.Int("capacity", list.DefaultCapacity, "Initial list capacity")
		search      = flag.String("search", "", "Value to search for")
		types       = flag.Bool("types", false, "List registered types and exit")
	)
	flag.Parse()

	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer l.Sync()
		object.SetLogger(l)
		resource.SetLogger(l)
	}

	if *types {
		printTypes(os.Stdout)
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*capacity, flag.Args()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: hcinspect [-v] [-capacity n] [-search value] values...")
		fmt.Fprintln(os.Stderr, "       hcinspect -types")
		fmt.Fprintln(os.Stderr, "       hcinspect -i [values...]  (interactive mode)")
		os.Exit(1)
	}

	if err := run(os.Stdout, *capacity, flag.Args(), *search); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// session holds the inspected list behind a table handle.
type session struct {
	table  *resource.Table
	lists  *resource.Typed[*list.List[*number.Number]]
	handle resource.Handle
}

func newSession(capacity int, values []string) (*session, error) {
	l, err := list.NewWithCapacity[*number.Number](capacity)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		n, err := number.Parse(v)
		if err != nil {
			object.Release(l)
			return nil, err
		}
		l.AddObjectReleased(n)
	}

	table := resource.NewTableWithDefaults()
	s := &session{
		table:  table,
		lists:  resource.NewTyped[*list.List[*number.Number]](table, list.Type),
		handle: table.Insert(l),
	}
	object.Release(l)
	return s, nil
}

func (s *session) list() *list.List[*number.Number] {
	l, _ := s.lists.Get(s.handle)
	return l
}

func (s *session) Close() error {
	return s.table.Close()
}

func run(w io.Writer, capacity int, values []string, search string) error {
	s, err := newSession(capacity, values)
	if err != nil {
		return err
	}
	defer s.Close()
	l := s.list()

	fmt.Fprintf(w, "List: %s\n", l)
	fmt.Fprintf(w, "Type: %s\n", lineage(object.TypeOf(l)))
	fmt.Fprintf(w, "Count: %d  Capacity: %d  Hash: %d\n", l.Count(), l.Capacity(), object.Hash(l))

	distinct := set.From(l.Slice()...)
	defer object.Release(distinct)
	fmt.Fprintf(w, "Distinct: %d\n", distinct.Count())

	fmt.Fprintf(w, "\nElements:\n")
	for i, n := range l.All() {
		fmt.Fprintf(w, "  [%d] %-12s %-8s refs=%d hash=%d\n",
			i, n, n.Kind(), object.RetainCount(n), object.Hash(n))
	}

	if search != "" {
		q, err := number.Parse(search)
		if err != nil {
			return err
		}
		defer object.Release(q)
		fmt.Fprintf(w, "\nSearch %s:\n", q)
		fmt.Fprintf(w, "  first index: %s\n", index(l.FirstIndexOfObject(q)))
		fmt.Fprintf(w, "  last index:  %s\n", index(l.LastIndexOfObject(q)))
	}
	return nil
}

func printTypes(w io.Writer) {
	for _, t := range object.Types() {
		fmt.Fprintf(w, "%s\n", lineage(t))
	}
}

func lineage(t *object.Type) string {
	var names []string
	for _, a := range t.Lineage() {
		names = append(names, a.Name())
	}
	return strings.Join(names, " > ")
}

func index(i int) string {
	if i == list.NotFound {
		return "not found"
	}
	return fmt.Sprint(i)
}
