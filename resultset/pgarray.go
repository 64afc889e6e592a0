package resultset

import (
	"fmt"
	"strconv"
	"strings"
)

// pgNode is one parsed element of a PostgreSQL array literal: either a leaf
// value or a nested list.
type pgNode struct {
	leaf  Value
	kids  []pgNode
	isSub bool
}

// ParsePGArray parses the PostgreSQL text form of an array, for example
// {1,2,3}, {{a,"b c"},{NULL,d}} or [0:1]={x,y}. Without an explicit bound
// prefix every dimension starts at 1, as in PostgreSQL.
func ParsePGArray(src string) (Value, error) {
	p := &pgArrayParser{src: src}
	lowers, uppers, err := p.parseBounds()
	if err != nil {
		return Value{}, err
	}
	root, err := p.parseList()
	if err != nil {
		return Value{}, err
	}
	if p.pos != len(p.src) {
		return Value{}, p.errorf("unexpected trailing input")
	}

	var lens []int
	for n := root; ; n = n.kids[0] {
		lens = append(lens, len(n.kids))
		if len(n.kids) == 0 || !n.kids[0].isSub {
			break
		}
	}
	var elems []Value
	if err := flattenPG(root, lens, &elems); err != nil {
		return Value{}, fmt.Errorf("invalid array literal %q: %w", src, err)
	}

	dims := make([]Bound, len(lens))
	for i, n := range lens {
		dims[i] = Bound{Lower: 1, Upper: n}
	}
	if lowers != nil {
		if len(lowers) != len(lens) {
			return Value{}, fmt.Errorf("invalid array literal %q: bounds declare %d dimensions, found %d", src, len(lowers), len(lens))
		}
		for i := range dims {
			dims[i] = Bound{Lower: lowers[i], Upper: uppers[i]}
			if dims[i].Len() != lens[i] {
				return Value{}, fmt.Errorf("invalid array literal %q: dimension %d declares %d elements, found %d", src, i+1, dims[i].Len(), lens[i])
			}
		}
	}
	return NewArray(dims, elems)
}

func flattenPG(n pgNode, lens []int, out *[]Value) error {
	if len(n.kids) != lens[0] {
		return fmt.Errorf("multidimensional arrays must be rectangular")
	}
	for _, k := range n.kids {
		if k.isSub != (len(lens) > 1) {
			return fmt.Errorf("multidimensional arrays must be rectangular")
		}
		if !k.isSub {
			*out = append(*out, k.leaf)
			continue
		}
		if err := flattenPG(k, lens[1:], out); err != nil {
			return err
		}
	}
	return nil
}

type pgArrayParser struct {
	src string
	pos int
}

func (p *pgArrayParser) errorf(format string, args ...any) error {
	return fmt.Errorf("invalid array literal %q at offset %d: %s", p.src, p.pos, fmt.Sprintf(format, args...))
}

// parseBounds reads an optional "[l:u][l:u]=" prefix.
func (p *pgArrayParser) parseBounds() (lowers, uppers []int, err error) {
	if !strings.HasPrefix(p.src, "[") {
		return nil, nil, nil
	}
	eq := strings.IndexByte(p.src, '=')
	if eq < 0 {
		return nil, nil, p.errorf("missing '=' after dimension bounds")
	}
	for _, part := range strings.Split(strings.TrimSuffix(p.src[1:eq], "]"), "][") {
		lo, hi, ok := strings.Cut(part, ":")
		if !ok {
			return nil, nil, p.errorf("malformed dimension bound %q", part)
		}
		l, err := strconv.Atoi(lo)
		if err != nil {
			return nil, nil, p.errorf("malformed lower bound %q", lo)
		}
		u, err := strconv.Atoi(hi)
		if err != nil {
			return nil, nil, p.errorf("malformed upper bound %q", hi)
		}
		lowers = append(lowers, l)
		uppers = append(uppers, u)
	}
	p.pos = eq + 1
	return lowers, uppers, nil
}

func (p *pgArrayParser) parseList() (pgNode, error) {
	if p.pos >= len(p.src) || p.src[p.pos] != '{' {
		return pgNode{}, p.errorf("expected '{'")
	}
	p.pos++
	node := pgNode{isSub: true}
	if p.pos < len(p.src) && p.src[p.pos] == '}' {
		p.pos++
		return node, nil
	}
	for {
		var kid pgNode
		var err error
		if p.pos < len(p.src) && p.src[p.pos] == '{' {
			kid, err = p.parseList()
		} else {
			kid, err = p.parseElement()
		}
		if err != nil {
			return pgNode{}, err
		}
		node.kids = append(node.kids, kid)
		if p.pos >= len(p.src) {
			return pgNode{}, p.errorf("unexpected end of input")
		}
		switch p.src[p.pos] {
		case ',':
			p.pos++
		case '}':
			p.pos++
			return node, nil
		default:
			return pgNode{}, p.errorf("unexpected %q", p.src[p.pos])
		}
	}
}

func (p *pgArrayParser) parseElement() (pgNode, error) {
	if p.pos < len(p.src) && p.src[p.pos] == '"' {
		p.pos++
		var b strings.Builder
		for p.pos < len(p.src) {
			c := p.src[p.pos]
			switch c {
			case '\\':
				p.pos++
				if p.pos >= len(p.src) {
					return pgNode{}, p.errorf("unterminated escape")
				}
				b.WriteByte(p.src[p.pos])
			case '"':
				p.pos++
				return pgNode{leaf: Scalar(b.String())}, nil
			default:
				b.WriteByte(c)
			}
			p.pos++
		}
		return pgNode{}, p.errorf("unterminated quoted element")
	}

	start := p.pos
	for p.pos < len(p.src) && p.src[p.pos] != ',' && p.src[p.pos] != '}' {
		if p.src[p.pos] == '{' || p.src[p.pos] == '"' {
			return pgNode{}, p.errorf("unexpected %q", p.src[p.pos])
		}
		p.pos++
	}
	text := strings.TrimSpace(p.src[start:p.pos])
	if text == "" {
		return pgNode{}, p.errorf("empty element")
	}
	if strings.EqualFold(text, "NULL") {
		return pgNode{leaf: Null()}, nil
	}
	return pgNode{leaf: Scalar(text)}, nil
}
