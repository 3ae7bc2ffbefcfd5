package strips

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// problemDoc is the YAML layout of a problem file.
type problemDoc struct {
	Fluents []string    `yaml:"fluents"`
	Initial []string    `yaml:"initial"`
	Goal    []string    `yaml:"goal"`
	Actions []actionDoc `yaml:"actions"`
}

type actionDoc struct {
	Name    string   `yaml:"name"`
	Precond []string `yaml:"precond"`
	Effect  []string `yaml:"effect"`
}

// Decode reads a YAML problem definition from r and validates it.
// Unknown keys are rejected. Fluents listed under "initial" hold in the
// initial state; all others do not.
func Decode(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc problemDoc
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("strips: decode problem: %w", err)
	}

	return doc.problem()
}

// LoadFile reads and decodes the YAML problem stored at path.
func LoadFile(path string) (*Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("strips: read %s: %w", path, err)
	}
	p, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// problem converts the document into a validated Problem.
func (d *problemDoc) problem() (*Problem, error) {
	p := &Problem{Fluents: d.Fluents}

	var err error
	if p.Goal, err = parseLiterals(d.Goal); err != nil {
		return nil, fmt.Errorf("goal: %w", err)
	}
	p.Actions = make([]Action, 0, len(d.Actions))
	for _, ad := range d.Actions {
		a := Action{Name: ad.Name}
		if a.Preconditions, err = parseLiterals(ad.Precond); err != nil {
			return nil, fmt.Errorf("action %q: %w", ad.Name, err)
		}
		if a.Effects, err = parseLiterals(ad.Effect); err != nil {
			return nil, fmt.Errorf("action %q: %w", ad.Name, err)
		}
		p.Actions = append(p.Actions, a)
	}
	if p.index, err = p.validate(); err != nil {
		return nil, err
	}
	if p.Initial, err = p.State(d.Initial...); err != nil {
		return nil, fmt.Errorf("initial: %w", err)
	}

	return p, nil
}

func parseLiterals(in []string) ([]Literal, error) {
	out := make([]Literal, 0, len(in))
	for _, s := range in {
		l, err := ParseLiteral(s)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}

	return out, nil
}
