package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"slices"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/roach88/allen/internal/allen"
	"github.com/roach88/allen/internal/ranges"
)

// validName matches names usable as golden file names.
var validName = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

var validate *validator.Validate

func init() {
	v, err := newValidator()
	if err != nil {
		panic(err)
	}
	validate = v
}

// newValidator builds the struct validator for scenario files, with the
// custom tags the Scenario types use.
func newValidator() (*validator.Validate, error) {
	v := validator.New()

	// Report fields by their file names rather than Go names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	if err := v.RegisterValidation("scenarioname", func(fl validator.FieldLevel) bool {
		return validName.MatchString(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("register scenarioname: %w", err)
	}
	if err := v.RegisterValidation("expectation", func(fl validator.FieldLevel) bool {
		_, err := normalizeExpect(fl.Field().String())
		return err == nil
	}); err != nil {
		return nil, fmt.Errorf("register expectation: %w", err)
	}
	if err := v.RegisterValidation("relation", func(fl validator.FieldLevel) bool {
		_, err := allen.ParseRelation(fl.Field().String())
		return err == nil
	}); err != nil {
		return nil, fmt.Errorf("register relation: %w", err)
	}
	return v, nil
}

// schemaSource constrains CUE scenario files. Definitions are closed, so
// misspelled fields are rejected the same way strict YAML decoding does.
const schemaSource = `
#Case: {
	name?:  string
	s:      string
	t:      string
	expect: string
}

#Assertion: {
	type:       "contains" | "count" | "order" | "covers"
	relation?:  string
	count?:     int & >=0
	relations?: [...string]
}

#Scenario: {
	name:        string
	description: string
	domain:      "discrete" | "continuous"
	type:        "int" | "float" | "time"
	cases: [...#Case]
	assertions?: [...#Assertion]
}
`

// Load reads a scenario file, choosing the format by extension: .yaml and
// .yml are YAML, .cue is CUE.
func Load(path string) (*Scenario, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return LoadYAML(path)
	case ".cue":
		return LoadCUE(path)
	default:
		return nil, fmt.Errorf("unsupported scenario file extension: %s", path)
	}
}

// LoadYAML reads and parses a YAML scenario file.
// Unknown fields (typos) are rejected.
func LoadYAML(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var s Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := Validate(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &s, nil
}

// LoadCUE reads a CUE file whose top-level "scenario" field holds the
// scenario.
func LoadCUE(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("scenario.schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compiling scenario schema: %w", err)
	}

	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse CUE: %s", cueDetails(err))
	}

	sv := v.LookupPath(cue.ParsePath("scenario"))
	if !sv.Exists() {
		return nil, fmt.Errorf("failed to parse CUE: no top-level scenario field in %s", path)
	}

	sv = schema.LookupPath(cue.ParsePath("#Scenario")).Unify(sv)
	if err := sv.Validate(cue.Concrete(true)); err != nil {
		return nil, fmt.Errorf("failed to parse CUE: %s", cueDetails(err))
	}

	var s Scenario
	if err := sv.Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode CUE scenario: %w", err)
	}

	if err := Validate(&s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &s, nil
}

func cueDetails(err error) string {
	return strings.TrimSpace(cueerrors.Details(err, nil))
}

// Validate checks required fields and that every range is well-formed
// for the scenario's domain and value type.
func Validate(s *Scenario) error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return formatValidationErrors(verrs)
		}
		return err
	}

	domain, err := allen.ParseDomainKind(s.Domain)
	if err != nil {
		return err
	}
	typ, err := ranges.ParseValueType(s.Type)
	if err != nil {
		return err
	}

	for i, c := range s.Cases {
		if err := ranges.Check(c.S, domain, typ); err != nil {
			return fmt.Errorf("cases[%d].s: %w", i, err)
		}
		if err := ranges.Check(c.T, domain, typ); err != nil {
			return fmt.Errorf("cases[%d].t: %w", i, err)
		}
	}

	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion checks the fields each assertion type needs.
func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case AssertContains:
		if a.Relation == "" {
			return fmt.Errorf("assertions[%d]: relation is required for contains", index)
		}
	case AssertCount:
		if a.Relation == "" {
			return fmt.Errorf("assertions[%d]: relation is required for count", index)
		}
	case AssertOrder:
		if len(a.Relations) < 2 {
			return fmt.Errorf("assertions[%d]: order needs at least two relations", index)
		}
	case AssertCovers:
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}

func formatValidationErrors(verrs validator.ValidationErrors) error {
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		var msg string
		switch fe.Tag() {
		case "required":
			msg = "is required"
		case "min":
			msg = fmt.Sprintf("needs at least %s entries", fe.Param())
		case "oneof":
			msg = fmt.Sprintf("must be one of [%s], got %q", fe.Param(), fe.Value())
		case "scenarioname":
			msg = fmt.Sprintf("%q must be lowercase letters, digits, '_' or '-'", fe.Value())
		case "expectation":
			msg = fmt.Sprintf("%q is neither a relation nor %s/%s", fe.Value(), OutcomeEmptyInterval, OutcomeAmbiguousOrder)
		case "relation":
			msg = fmt.Sprintf("unknown relation %q", fe.Value())
		default:
			msg = fmt.Sprintf("failed %s validation", fe.Tag())
		}
		msgs = append(msgs, field+" "+msg)
	}
	return errors.New(strings.Join(msgs, "; "))
}

// FindFiles returns the scenario files under dir in lexical order. Files
// in golden/ directories are skipped. A non-empty filter is a glob matched
// against the file name without its extension.
func FindFiles(dir, filter string) ([]string, error) {
	if filter != "" {
		if _, err := filepath.Match(filter, ""); err != nil {
			return nil, fmt.Errorf("invalid filter pattern: %w", err)
		}
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && d.Name() == "golden" {
				return filepath.SkipDir
			}
			return nil
		}

		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" && ext != ".cue" {
			return nil
		}
		if filter != "" {
			name := strings.TrimSuffix(d.Name(), ext)
			if ok, _ := filepath.Match(filter, name); !ok {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(files)
	return files, nil
}
