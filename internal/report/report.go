package report

import (
	"fmt"
	"strings"

	findfolder "github.com/PistonDevelopers/find-folder"
	"github.com/fatih/color"
)

type Outcome string

const (
	Found    Outcome = "FOUND"
	NotFound Outcome = "NOT FOUND"
	Failed   Outcome = "FAILED"
)

type Query struct {
	Name   string
	Search findfolder.Search
}

type Entry struct {
	Query
	Outcome Outcome
	Path    string
	Err     error
}

type Result struct {
	Start   string
	Entries []Entry
}

func (r *Result) Count(o Outcome) int {
	n := 0
	for _, e := range r.Entries {
		if e.Outcome == o {
			n++
		}
	}
	return n
}

func (r *Result) HasFailures() bool {
	return r.Count(Failed) > 0
}

// AllStrategies returns every built-in strategy with depth in each direction.
func AllStrategies(depth uint8) []findfolder.Search {
	return []findfolder.Search{
		findfolder.Parents(depth),
		findfolder.Kids(depth),
		findfolder.Both(depth, depth),
		findfolder.ParentsThenKids(depth, depth),
		findfolder.KidsThenParents(depth, depth),
	}
}

// Run executes the queries in order from start.
func Run(finder findfolder.Finder, start string, queries []Query) *Result {
	result := &Result{
		Start:   start,
		Entries: make([]Entry, 0, len(queries)),
	}

	for _, q := range queries {
		entry := Entry{Query: q}
		path, err := finder.Find(q.Search, start, q.Name)
		switch {
		case err == nil:
			entry.Outcome = Found
			entry.Path = path
		case findfolder.IsNotFound(err):
			entry.Outcome = NotFound
		default:
			entry.Outcome = Failed
			entry.Err = err
		}
		result.Entries = append(result.Entries, entry)
	}

	return result
}

func FormatReport(result *Result) string {
	if len(result.Entries) == 0 {
		return "Nothing to search for."
	}

	found := color.New(color.FgGreen)
	missing := color.New(color.FgYellow)
	failed := color.New(color.FgRed)
	label := color.New(color.FgCyan)

	var b strings.Builder
	fmt.Fprintf(&b, "Searching from %s\n\n", result.Start)

	for _, e := range result.Entries {
		query := label.Sprintf("%-24s", e.Search)
		switch e.Outcome {
		case Found:
			fmt.Fprintf(&b, "  %s %s %s -> %s\n", found.Sprint("+"), query, e.Name, e.Path)
		case NotFound:
			fmt.Fprintf(&b, "  %s %s %s\n", missing.Sprint("-"), query, e.Name)
		default:
			fmt.Fprintf(&b, "  %s %s %s: %v\n", failed.Sprint("!"), query, e.Name, e.Err)
		}
	}

	fmt.Fprintf(&b, "\nSummary: %d found, %d not found, %d failed\n",
		result.Count(Found), result.Count(NotFound), result.Count(Failed))

	return b.String()
}
