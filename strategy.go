// Package findfolder locates a named folder by searching outward through the
// ancestors of a directory, inward through its descendants, or both.
//
//	assets, err := findfolder.Both(3, 3).ForFolder("assets")
//
// Each search re-reads the filesystem; nothing is cached between calls.
package findfolder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Kind selects which directional searches a Search runs and in what order.
type Kind uint8

const (
	KindParents Kind = iota
	KindKids
	KindBoth
	KindParentsThenKids
	KindKidsThenParents
)

var kindNames = map[Kind]string{
	KindParents:         "parents",
	KindKids:            "kids",
	KindBoth:            "both",
	KindParentsThenKids: "parents-then-kids",
	KindKidsThenParents: "kids-then-parents",
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Search is an immutable search strategy with its depth budgets.
// Search values are comparable.
type Search struct {
	kind    Kind
	parents uint8
	kids    uint8
}

// Parents searches the starting directory and up to depth ancestors.
func Parents(depth uint8) Search {
	return Search{kind: KindParents, parents: depth}
}

// Kids searches the starting directory and up to depth levels below it.
func Kids(depth uint8) Search {
	return Search{kind: KindKids, kids: depth}
}

// Both searches parents first, then kids. It behaves exactly like
// ParentsThenKids.
func Both(parentsDepth, kidsDepth uint8) Search {
	return Search{kind: KindBoth, parents: parentsDepth, kids: kidsDepth}
}

// ParentsThenKids searches parents first and falls back to kids only when
// nothing was found.
func ParentsThenKids(parentsDepth, kidsDepth uint8) Search {
	return Search{kind: KindParentsThenKids, parents: parentsDepth, kids: kidsDepth}
}

// KidsThenParents searches kids first and falls back to parents only when
// nothing was found.
func KidsThenParents(kidsDepth, parentsDepth uint8) Search {
	return Search{kind: KindKidsThenParents, parents: parentsDepth, kids: kidsDepth}
}

func (s Search) Kind() Kind          { return s.kind }
func (s Search) ParentsDepth() uint8 { return s.parents }
func (s Search) KidsDepth() uint8    { return s.kids }

// ForFolder searches for name starting at the current working directory.
func (s Search) ForFolder(name string) (string, error) {
	return Finder{}.ForFolder(s, name)
}

// ForFolderFrom searches for name starting at dir.
func (s Search) ForFolderFrom(dir, name string) (string, error) {
	return Finder{}.Find(s, dir, name)
}

// ForFolder runs s from the current working directory.
func (f Finder) ForFolder(s Search, name string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", &IOError{Op: "getwd", Err: err}
	}
	return f.Find(s, cwd, name)
}

// Find runs s from dir. Only ErrNotFound from the first phase of a
// two-direction search triggers the second phase.
func (f Finder) Find(s Search, dir, name string) (string, error) {
	start, err := filepath.Abs(dir)
	if err != nil {
		return "", &IOError{Op: "abs", Path: dir, Err: err}
	}
	dir = start

	switch s.kind {
	case KindParents:
		return f.CheckParents(name, dir, s.parents)
	case KindKids:
		return f.CheckKids(name, dir, s.kids)
	case KindBoth, KindParentsThenKids:
		found, err := f.CheckParents(name, dir, s.parents)
		if errors.Is(err, ErrNotFound) {
			return f.CheckKids(name, dir, s.kids)
		}
		return found, err
	case KindKidsThenParents:
		found, err := f.CheckKids(name, dir, s.kids)
		if errors.Is(err, ErrNotFound) {
			return f.CheckParents(name, dir, s.parents)
		}
		return found, err
	default:
		return "", fmt.Errorf("%w: unknown kind %v", ErrInvalidSearch, s.kind)
	}
}

// String renders s in the form accepted by ParseSearch.
func (s Search) String() string {
	switch s.kind {
	case KindParents:
		return fmt.Sprintf("%s:%d", s.kind, s.parents)
	case KindKids:
		return fmt.Sprintf("%s:%d", s.kind, s.kids)
	case KindKidsThenParents:
		return fmt.Sprintf("%s:%d,%d", s.kind, s.kids, s.parents)
	default:
		return fmt.Sprintf("%s:%d,%d", s.kind, s.parents, s.kids)
	}
}

// ParseSearch parses "parents:N", "kids:N", "both:P,K",
// "parents-then-kids:P,K" or "kids-then-parents:K,P". Depths are listed in
// the order the directions are searched.
func ParseSearch(text string) (Search, error) {
	kindText, depthText, ok := strings.Cut(strings.TrimSpace(text), ":")
	if !ok {
		return Search{}, fmt.Errorf("%w: %q: missing depth", ErrInvalidSearch, text)
	}

	kind, known := kindByName[strings.ToLower(strings.TrimSpace(kindText))]
	if !known {
		return Search{}, fmt.Errorf("%w: %q: unknown kind %q", ErrInvalidSearch, text, kindText)
	}

	var depths []uint8
	for _, part := range strings.Split(depthText, ",") {
		d, err := strconv.ParseUint(strings.TrimSpace(part), 10, 8)
		if err != nil {
			return Search{}, fmt.Errorf("%w: %q: bad depth %q", ErrInvalidSearch, text, part)
		}
		depths = append(depths, uint8(d))
	}

	want := 2
	if kind == KindParents || kind == KindKids {
		want = 1
	}
	if len(depths) != want {
		return Search{}, fmt.Errorf("%w: %q: %s takes %d depth(s)", ErrInvalidSearch, text, kind, want)
	}

	switch kind {
	case KindParents:
		return Parents(depths[0]), nil
	case KindKids:
		return Kids(depths[0]), nil
	case KindBoth:
		return Both(depths[0], depths[1]), nil
	case KindParentsThenKids:
		return ParentsThenKids(depths[0], depths[1]), nil
	default:
		return KidsThenParents(depths[0], depths[1]), nil
	}
}

func (s Search) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Search) UnmarshalText(text []byte) error {
	parsed, err := ParseSearch(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
