package tables

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// ConfigError reports a malformed external command table schema. It is
// returned before any source is parsed, so callers can distinguish a bad
// table from a bad label file.
type ConfigError struct {
	Path string // empty when the schema did not come from a file
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("invalid command table schema %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("invalid command table schema: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Load merges a JSON schema over the built-in table. External entries win
// by command code, so a schema can both extend and override the defaults.
func Load(data []byte) (*Table, error) {
	return load(data, "")
}

// LoadFile reads path and merges it over the built-in table.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return load(data, path)
}

type schemaFile struct {
	Version  string                 `json:"version"`
	Commands map[string]schemaEntry `json:"commands"`
}

type schemaEntry struct {
	Description string       `json:"description"`
	Plane       string       `json:"plane"`
	Args        []schemaArg  `json:"args"`
	Requires    []string     `json:"requires"`
	OpensField  bool         `json:"opensField"`
	ClosesField bool         `json:"closesField"`
	FieldData   bool         `json:"fieldData"`
	FreeText    bool         `json:"freeText"`
	Data        *schemaRules `json:"data"`
}

type schemaArg struct {
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Min      float64  `json:"min"`
	Max      float64  `json:"max"`
	Enum     []string `json:"enum"`
}

type schemaRules struct {
	Charset        string `json:"charset"`
	MinLength      int    `json:"minLength"`
	MaxLength      int    `json:"maxLength"`
	ExactLength    int    `json:"exactLength"`
	AllowedLengths []int  `json:"allowedLengths"`
	Parity         string `json:"parity"`
}

func load(data []byte, path string) (*Table, error) {
	var sf schemaFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}

	builtin := builtinEntries()
	byCode := make(map[string]*Entry, len(builtin))
	for i := range builtin {
		byCode[builtin[i].Code] = &builtin[i]
	}

	// Validate in code order so a broken schema reports the same problem
	// on every run.
	codes := make([]string, 0, len(sf.Commands))
	for code := range sf.Commands {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		se := sf.Commands[code]
		entry, err := se.toEntry(code)
		if err != nil {
			return nil, &ConfigError{Path: path, Err: err}
		}
		byCode[code] = entry
	}

	return &Table{entries: byCode, digest: computeDigest(byCode)}, nil
}

func (se *schemaEntry) toEntry(code string) (*Entry, error) {
	if !validCode(code) {
		return nil, fmt.Errorf("invalid command code %q", code)
	}
	plane, ok := planeFromString(se.Plane)
	if !ok {
		return nil, fmt.Errorf("%s: unknown plane %q", code, se.Plane)
	}

	entry := &Entry{
		Code:        code,
		Description: se.Description,
		Plane:       plane,
		Requires:    se.Requires,
		OpensField:  se.OpensField,
		ClosesField: se.ClosesField,
		FieldData:   se.FieldData,
		FreeText:    se.FreeText,
	}

	for i, sa := range se.Args {
		typ, ok := argTypeFromString(sa.Type)
		if !ok {
			return nil, fmt.Errorf("%s: argument %d has unknown type %q", code, i+1, sa.Type)
		}
		name := sa.Name
		if name == "" {
			name = fmt.Sprintf("arg%d", i+1)
		}
		if typ == ArgEnum && len(sa.Enum) == 0 {
			return nil, fmt.Errorf("%s: enum argument %q has no values", code, name)
		}
		if sa.Min > sa.Max && (sa.Min != 0 || sa.Max != 0) {
			return nil, fmt.Errorf("%s: argument %q has min %g above max %g", code, name, sa.Min, sa.Max)
		}
		entry.Args = append(entry.Args, Arg{
			Name:     name,
			Type:     typ,
			Required: sa.Required,
			Min:      sa.Min,
			Max:      sa.Max,
			Enum:     sa.Enum,
		})
	}

	if se.Data != nil {
		rules, err := se.Data.toRules(code)
		if err != nil {
			return nil, err
		}
		entry.Data = rules
	}
	return entry, nil
}

func (sr *schemaRules) toRules(code string) (*DataRules, error) {
	if sr.MinLength < 0 || sr.MaxLength < 0 || sr.ExactLength < 0 {
		return nil, fmt.Errorf("%s: negative data length constraint", code)
	}
	if sr.MaxLength > 0 && sr.MinLength > sr.MaxLength {
		return nil, fmt.Errorf("%s: data minLength %d above maxLength %d", code, sr.MinLength, sr.MaxLength)
	}
	for _, n := range sr.AllowedLengths {
		if n <= 0 {
			return nil, fmt.Errorf("%s: allowed data length %d is not positive", code, n)
		}
	}
	switch sr.Parity {
	case "", "even", "odd":
	default:
		return nil, fmt.Errorf("%s: unknown parity %q", code, sr.Parity)
	}
	return &DataRules{
		Charset:        sr.Charset,
		MinLength:      sr.MinLength,
		MaxLength:      sr.MaxLength,
		ExactLength:    sr.ExactLength,
		AllowedLengths: sr.AllowedLengths,
		Parity:         sr.Parity,
	}, nil
}

func validCode(code string) bool {
	if len(code) < 2 || len(code) > 3 {
		return false
	}
	if code[0] != '^' && code[0] != '~' {
		return false
	}
	if !isAlpha(code[1]) {
		return false
	}
	if len(code) == 3 {
		c := code[2]
		return isAlpha(c) || c >= '0' && c <= '9' || c == '@'
	}
	return true
}

func isAlpha(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z'
}

func planeFromString(s string) (Plane, bool) {
	switch s {
	case "", "none":
		return PlaneNone, true
	case "format":
		return PlaneFormat, true
	case "config":
		return PlaneConfig, true
	case "host":
		return PlaneHost, true
	case "device":
		return PlaneDevice, true
	default:
		return PlaneNone, false
	}
}

func argTypeFromString(s string) (ArgType, bool) {
	switch s {
	case "", "any":
		return ArgAny, true
	case "int":
		return ArgInt, true
	case "num":
		return ArgNum, true
	case "enum":
		return ArgEnum, true
	default:
		return ArgAny, false
	}
}
