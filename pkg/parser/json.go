package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/coapi/validator/pkg/value"
)

func parseJSON(data []byte, o options) (value.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return value.Null(), nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	p := &jsonParser{dec: dec, maxDepth: o.maxDepth}

	tok, err := p.token()
	if err != nil {
		return value.Value{}, err
	}
	v, err := p.value(tok, 0)
	if err != nil {
		return value.Value{}, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return value.Value{}, &Error{Format: FormatJSON, Message: "unexpected data after top-level value", Err: err}
	}
	return v, nil
}

type jsonParser struct {
	dec      *json.Decoder
	maxDepth int
}

func (p *jsonParser) token() (json.Token, error) {
	tok, err := p.dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &Error{Format: FormatJSON, Message: "unexpected end of input"}
		}
		return nil, &Error{Format: FormatJSON, Message: "invalid document", Err: err}
	}
	return tok, nil
}

func (p *jsonParser) fail(format string, args ...any) error {
	return &Error{Format: FormatJSON, Message: fmt.Sprintf(format, args...)}
}

func (p *jsonParser) value(tok json.Token, depth int) (value.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return p.object(depth + 1)
		case '[':
			return p.array(depth + 1)
		default:
			return value.Value{}, p.fail("unexpected delimiter %c", rune(t))
		}
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(t), nil
	case string:
		return value.String(t), nil
	case json.Number:
		return value.String(t.String()), nil
	case float64:
		return value.String(strconv.FormatFloat(t, 'f', -1, 64)), nil
	default:
		return value.Value{}, p.fail("unexpected token %v", tok)
	}
}

func (p *jsonParser) checkDepth(depth int) error {
	if p.maxDepth > 0 && depth > p.maxDepth {
		return p.fail("maximum nesting depth %d exceeded", p.maxDepth)
	}
	return nil
}

func (p *jsonParser) object(depth int) (value.Value, error) {
	if err := p.checkDepth(depth); err != nil {
		return value.Value{}, err
	}

	m := value.NewMapping()
	for {
		tok, err := p.token()
		if err != nil {
			return value.Value{}, err
		}
		if d, ok := tok.(json.Delim); ok && d == '}' {
			return value.FromMapping(m), nil
		}
		key, ok := tok.(string)
		if !ok {
			return value.Value{}, p.fail("object key must be a string, got %v", tok)
		}
		if m.Has(key) {
			return value.Value{}, &Error{
				Format:  FormatJSON,
				Message: "duplicate object key",
				Err:     &DuplicateKeyError{Key: key},
			}
		}

		tok, err = p.token()
		if err != nil {
			return value.Value{}, err
		}
		child, err := p.value(tok, depth)
		if err != nil {
			return value.Value{}, err
		}
		m.Set(key, child)
	}
}

func (p *jsonParser) array(depth int) (value.Value, error) {
	if err := p.checkDepth(depth); err != nil {
		return value.Value{}, err
	}

	m := value.NewMapping()
	for i := 0; ; i++ {
		tok, err := p.token()
		if err != nil {
			return value.Value{}, err
		}
		if d, ok := tok.(json.Delim); ok && d == ']' {
			return value.FromMapping(m), nil
		}
		child, err := p.value(tok, depth)
		if err != nil {
			return value.Value{}, err
		}
		m.Set(strconv.Itoa(i), child)
	}
}
