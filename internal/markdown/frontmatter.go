package markdown

import (
	"strings"

	"github.com/adrg/frontmatter"
)

// Delimiter opens and closes a metadata block.
const Delimiter = "---"

// Value is a frontmatter value: a scalar string or an ordered list of strings.
type Value struct {
	scalar string
	list   []string
	isList bool
}

// Scalar wraps a plain string value.
func Scalar(s string) Value {
	return Value{scalar: s}
}

// List wraps a bracketed value. Empty items are kept.
func List(items ...string) Value {
	if items == nil {
		items = []string{}
	}
	return Value{list: items, isList: true}
}

// IsList reports whether the value was written as [a, b].
func (v Value) IsList() bool { return v.isList }

// String returns the scalar, or the list items joined with ", ".
func (v Value) String() string {
	if v.isList {
		return strings.Join(v.list, ", ")
	}
	return v.scalar
}

// Strings returns the list items, or a one element slice for scalars.
func (v Value) Strings() []string {
	if v.isList {
		return append([]string(nil), v.list...)
	}
	return []string{v.scalar}
}

// Block is the parsed metadata plus the document body.
type Block struct {
	Values map[string]Value
	Body   string
}

// Lookup returns the value stored under key.
func (b Block) Lookup(key string) (Value, bool) {
	v, ok := b.Values[key]
	return v, ok
}

// String returns the trimmed string form of key, or "" when absent.
func (b Block) String(key string) string {
	if v, ok := b.Values[key]; ok {
		return strings.TrimSpace(v.String())
	}
	return ""
}

var blockFormat = &frontmatter.Format{
	Start:     Delimiter,
	End:       Delimiter,
	Unmarshal: unmarshalValues,
}

// ParseFrontmatter splits source into metadata and body. A document that does
// not open with a delimiter line, or whose block is never closed, comes back
// with no values and its input untouched as the body. Content never causes an
// error; malformed lines are skipped.
func ParseFrontmatter(source string) Block {
	if !opensWithDelimiter(source) {
		return Block{Values: map[string]Value{}, Body: source}
	}
	values := map[string]Value{}
	body, err := frontmatter.Parse(strings.NewReader(source), &values, blockFormat)
	if err != nil {
		return Block{Values: map[string]Value{}, Body: source}
	}
	return Block{Values: values, Body: string(body)}
}

// opensWithDelimiter reports whether the first line of source is exactly the
// delimiter. The library also accepts leading blank lines and padded
// delimiters; those documents have no block.
func opensWithDelimiter(source string) bool {
	rest, ok := strings.CutPrefix(source, Delimiter)
	if !ok {
		return false
	}
	return strings.HasPrefix(rest, "\n") || strings.HasPrefix(rest, "\r\n")
}

func unmarshalValues(data []byte, v any) error {
	target, ok := v.(*map[string]Value)
	if !ok || target == nil {
		return nil
	}
	if *target == nil {
		*target = map[string]Value{}
	}
	for key, value := range parseLines(string(data)) {
		(*target)[key] = value
	}
	return nil
}

func parseLines(segment string) map[string]Value {
	values := map[string]Value{}
	for _, line := range strings.Split(segment, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, rest, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		values[key] = parseValue(strings.TrimSpace(rest))
	}
	return values
}

func parseValue(raw string) Value {
	if len(raw) < 2 || !strings.HasPrefix(raw, "[") || !strings.HasSuffix(raw, "]") {
		return Scalar(raw)
	}
	inner := raw[1 : len(raw)-1]
	parts := strings.Split(inner, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}
	return List(parts...)
}
