package parse

import (
	"fmt"
	"io"
	"strconv"

	"github.com/signadot/jsondoc/ir"
	"github.com/signadot/jsondoc/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{lex: token.NewLexer(d), opts: pOpts}
	return p.run()
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// ParseReader reads all of r and parses it.
func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}

// ParseObject parses a document whose top level value must be an object.
func ParseObject(d []byte, opts ...ParseOption) (*ir.Node, error) {
	y, err := Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return y.RequireObject()
}

func ParseArray(d []byte, opts ...ParseOption) (*ir.Node, error) {
	y, err := Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return y.RequireArray()
}

// ParseStringValue parses a document consisting of one JSON string.
func ParseStringValue(d []byte, opts ...ParseOption) (string, error) {
	y, err := Parse(d, opts...)
	if err != nil {
		return "", err
	}
	return y.RequireString()
}

func ParseNumber(d []byte, opts ...ParseOption) (ir.Number, error) {
	y, err := Parse(d, opts...)
	if err != nil {
		return ir.Number{}, err
	}
	return y.RequireNumber()
}

func ParseBool(d []byte, opts ...ParseOption) (bool, error) {
	y, err := Parse(d, opts...)
	if err != nil {
		return false, err
	}
	return y.RequireBool()
}

type state int

const (
	stValue        state = iota // any value
	stValueOrClose              // any value or ']'
	stKey                       // a string key
	stKeyOrClose                // a string key or '}'
	stColon
	stCommaOrClose
	stEnd
)

func (s state) expected(top *ir.Node) string {
	switch s {
	case stValue:
		return "a JSON value"
	case stValueOrClose:
		return "a JSON value or ']'"
	case stKey:
		return "string key"
	case stKeyOrClose:
		return "string key or '}'"
	case stColon:
		return "':'"
	case stCommaOrClose:
		if top.Type() == ir.ObjectType {
			return "',' or '}'"
		}
		return "',' or ']'"
	case stEnd:
		return token.EndOfInput
	}
	return "<unknown>"
}

type open struct {
	node *ir.Node
	key  string
}

type parser struct {
	lex   *token.Lexer
	opts  *parseOpts
	stack []open
	state state
	root  *ir.Node
}

func (p *parser) top() *open {
	if len(p.stack) == 0 {
		return nil
	}
	return &p.stack[len(p.stack)-1]
}

func (p *parser) run() (*ir.Node, error) {
	for {
		tok, err := p.lex.Take()
		if err != nil {
			return nil, lexErr(err)
		}
		switch p.state {
		case stValue, stValueOrClose:
			if p.state == stValueOrClose && tok.Type == token.TRSquare {
				p.close()
				continue
			}
			if err := p.value(tok); err != nil {
				return nil, err
			}
		case stKey, stKeyOrClose:
			if p.state == stKeyOrClose && tok.Type == token.TRCurl {
				p.close()
				continue
			}
			if tok.Type != token.TString {
				return nil, p.unexpected(tok)
			}
			top := p.top()
			if p.opts.rejectDups {
				if _, dup := top.node.Get(tok.Value); dup {
					return nil, tokErr(ErrDuplicateKey, tok, "unique key")
				}
			}
			top.key = tok.Value
			p.state = stColon
		case stColon:
			if tok.Type != token.TColon {
				return nil, p.unexpected(tok)
			}
			p.state = stValue
		case stCommaOrClose:
			top := p.top()
			isObj := top.node.Type() == ir.ObjectType
			switch {
			case tok.Type == token.TComma && isObj:
				p.state = stKey
			case tok.Type == token.TComma:
				p.state = stValue
			case tok.Type == token.TRCurl && isObj,
				tok.Type == token.TRSquare && !isObj:
				p.close()
			default:
				return nil, p.unexpected(tok)
			}
		case stEnd:
			if tok.Type != token.TEOF {
				return nil, tokErr(ErrTrailing, tok, token.EndOfInput)
			}
			return p.root, nil
		}
	}
}

func (p *parser) unexpected(tok *token.Token) error {
	var top *ir.Node
	if o := p.top(); o != nil {
		top = o.node
	}
	return tokErr(ErrUnexpected, tok, p.state.expected(top))
}

// value handles a token in value position.
func (p *parser) value(tok *token.Token) error {
	var y *ir.Node
	switch tok.Type {
	case token.TLCurl:
		y = ir.NewObject()
	case token.TLSquare:
		y = ir.NewArray()
	case token.TString:
		y = ir.FromString(tok.Value)
	case token.TNumber:
		y = ir.FromNumber(number(tok.Num))
	case token.TTrue:
		y = ir.FromBool(true)
	case token.TFalse:
		y = ir.FromBool(false)
	case token.TNull:
		y = ir.Null()
	default:
		return p.unexpected(tok)
	}
	p.opts.trackPos(y, tok.Pos)
	p.add(y)
	switch tok.Type {
	case token.TLCurl:
		p.state = stKeyOrClose
	case token.TLSquare:
		p.state = stValueOrClose
	default:
		return nil
	}
	if p.opts.maxDepth > 0 && len(p.stack) >= p.opts.maxDepth {
		return tokErr(ErrMaxDepth, tok, "at most "+strconv.Itoa(p.opts.maxDepth)+" levels of nesting")
	}
	p.stack = append(p.stack, open{node: y})
	return nil
}

// add places a completed or newly opened value in its parent.
func (p *parser) add(y *ir.Node) {
	top := p.top()
	p.state = stCommaOrClose
	if top == nil {
		p.root = y
		p.state = stEnd
		return
	}
	var err error
	if top.node.Type() == ir.ObjectType {
		err = top.node.Set(top.key, y)
	} else {
		err = top.node.Append(y)
	}
	if err != nil {
		panic(fmt.Sprintf("parse: open container rejected a value: %v", err))
	}
}

func (p *parser) close() {
	p.stack = p.stack[:len(p.stack)-1]
	if len(p.stack) == 0 {
		p.state = stEnd
		return
	}
	p.state = stCommaOrClose
}

func number(n token.Number) ir.Number {
	switch n.Kind {
	case token.NumInt32:
		return ir.Int32Number(int32(n.Int))
	case token.NumInt64:
		return ir.Int64Number(n.Int)
	case token.NumFloat32:
		return ir.Float32Number(float32(n.Float))
	default:
		return ir.Float64Number(n.Float)
	}
}
