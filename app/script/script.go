// Package script replays YAML command scripts against an outline session.
//
// A script looks like:
//
//	mode: full
//	bootstrap: false
//	steps:
//	  - op: add
//	    kind: section
//	    annotation: intro
//	    placement: child
//	  - op: duplicate
//
// Malformed steps are reported when the script is parsed. Steps that the
// outline rejects (a second header, indenting a first child, ...) are not
// errors; they are recorded as not applied and the replay continues.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Guerrilla-Interactive/ng-skeleton/app/outline"
)

var (
	// ErrInvalidStep marks a step that is missing or has malformed fields.
	ErrInvalidStep = errors.New("invalid step")
	// ErrUnknownOp marks a step whose op is not recognized.
	ErrUnknownOp = errors.New("unknown op")
)

// Script is a parsed command script.
type Script struct {
	Mode      string `yaml:"mode"`
	Bootstrap bool   `yaml:"bootstrap"`
	Steps     []Step `yaml:"steps"`
}

// Step is one command. Which fields matter depends on Op.
type Step struct {
	Op         string  `yaml:"op"`
	Kind       string  `yaml:"kind,omitempty"`
	Annotation *string `yaml:"annotation,omitempty"`
	Class      *string `yaml:"class,omitempty"`
	Placement  string  `yaml:"placement,omitempty"`
	Direction  string  `yaml:"direction,omitempty"`
	ID         *int    `yaml:"id,omitempty"`
	Name       string  `yaml:"name,omitempty"`
	Value      string  `yaml:"value,omitempty"`
	Remove     bool    `yaml:"remove,omitempty"`
}

// Result records whether a step changed the session.
type Result struct {
	Index   int
	Op      string
	Applied bool
}

// Parse decodes and validates a script. Unknown fields are rejected.
func Parse(data []byte) (*Script, error) {
	var sc Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Load reads and parses a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// TemplateMode returns the script's mode, defaulting to full.
func (sc *Script) TemplateMode() outline.Mode {
	if strings.TrimSpace(sc.Mode) == "" {
		return outline.ModeFull
	}
	m, err := outline.ParseMode(sc.Mode)
	if err != nil {
		return outline.ModeFull
	}
	return m
}

// Validate checks every step without running anything.
func (sc *Script) Validate() error {
	if strings.TrimSpace(sc.Mode) != "" {
		if _, err := outline.ParseMode(sc.Mode); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStep, err)
		}
	}
	for i, st := range sc.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, st.Op, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	switch st.Op {
	case "add":
		if _, ok := outline.ParseKind(st.Kind); !ok {
			return fmt.Errorf("%w: unknown kind %q", ErrInvalidStep, st.Kind)
		}
		if _, err := outline.ParsePlacement(st.Placement); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStep, err)
		}
	case "move":
		if _, err := parseDirection(st.Direction); err != nil {
			return err
		}
	case "select":
		if st.ID == nil && st.Annotation == nil {
			return fmt.Errorf("%w: select needs id or annotation", ErrInvalidStep)
		}
	case "edit":
		if st.Annotation == nil && st.Class == nil {
			return fmt.Errorf("%w: edit needs annotation or class", ErrInvalidStep)
		}
	case "attr":
		if strings.TrimSpace(st.Name) == "" {
			return fmt.Errorf("%w: attr needs a name", ErrInvalidStep)
		}
	case "delete", "indent", "outdent", "duplicate":
	case "":
		return fmt.Errorf("%w: missing op", ErrInvalidStep)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, st.Op)
	}
	return nil
}

func parseDirection(s string) (int, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "-1":
		return -1, nil
	case "down", "1", "+1":
		return 1, nil
	}
	return 0, fmt.Errorf("%w: direction %q (want up or down)", ErrInvalidStep, s)
}

// Run applies the steps to s in order. It fails only on invalid scripts;
// rejected steps are reported in the results.
func (sc *Script) Run(s *outline.Session) ([]Result, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	results := make([]Result, 0, len(sc.Steps))
	for i, st := range sc.Steps {
		applied := st.apply(s)
		if !applied {
			slog.Debug("script step rejected",
				"step", i+1,
				"op", st.Op,
				"kind", st.Kind,
				"selected", s.Selected().ID)
		}
		results = append(results, Result{Index: i + 1, Op: st.Op, Applied: applied})
	}
	return results, nil
}

// Replay builds a fresh session in the script's mode and runs the script.
func Replay(sc *Script) (*outline.Session, []Result, error) {
	s := outline.NewSession(sc.TemplateMode())
	results, err := sc.Run(s)
	if err != nil {
		return nil, nil, err
	}
	return s, results, nil
}

func (st Step) apply(s *outline.Session) bool {
	switch st.Op {
	case "add":
		kind, _ := outline.ParseKind(st.Kind)
		placement, _ := outline.ParsePlacement(st.Placement)
		return s.Add(kind, deref(st.Annotation), deref(st.Class), placement)
	case "delete":
		return s.Delete()
	case "move":
		dir, _ := parseDirection(st.Direction)
		return s.Move(dir)
	case "indent":
		return s.Indent()
	case "outdent":
		return s.Outdent()
	case "duplicate":
		return s.Duplicate()
	case "edit":
		return s.Edit(st.Annotation, st.Class)
	case "select":
		if st.ID != nil {
			return s.Select(*st.ID)
		}
		return selectByAnnotation(s, *st.Annotation)
	case "attr":
		if st.Remove {
			return s.RemoveAttribute(st.Name)
		}
		return s.SetAttribute(st.Name, st.Value)
	}
	return false
}

// selectByAnnotation selects the first node, in document order, carrying
// the annotation.
func selectByAnnotation(s *outline.Session, annotation string) bool {
	for _, e := range s.Flatten() {
		if e.Node.Annotation == annotation {
			return s.Select(e.Node.ID)
		}
	}
	return false
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// Summary renders results as "applied/total" with the rejected step numbers.
func Summary(results []Result) string {
	applied := 0
	var rejected []string
	for _, r := range results {
		if r.Applied {
			applied++
		} else {
			rejected = append(rejected, strconv.Itoa(r.Index)+":"+r.Op)
		}
	}
	out := fmt.Sprintf("%d/%d steps applied", applied, len(results))
	if len(rejected) > 0 {
		out += " (rejected " + strings.Join(rejected, ", ") + ")"
	}
	return out
}
