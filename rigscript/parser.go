package rigscript

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	TOKEN_KEYWORD = iota
	TOKEN_NUMBER
	TOKEN_STRING
	TOKEN_NEWLINE
	TOKEN_COMMENT
)

var lexer *lexmachine.Lexer

func init() {
	lexer = lexmachine.NewLexer()
	lexer.Add([]byte(`[a-zA-Z_][a-zA-Z0-9_.]*`), getToken(TOKEN_KEYWORD))
	lexer.Add([]byte(`[\+\-]?[0-9]*\.?[0-9]+([eE][\+\-]?[0-9]+)?`), getToken(TOKEN_NUMBER))
	lexer.Add([]byte(`"(\\.|[^"])*"`), getToken(TOKEN_STRING))
	lexer.Add([]byte(`(\n|\r|\n\r)+`), getToken(TOKEN_NEWLINE))
	lexer.Add([]byte(`//[^\n]*`), getToken(TOKEN_COMMENT))
	lexer.Add([]byte(`\s+`), skip)
}

func getToken(tokenType int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(tokenType, string(m.Bytes), m), nil
	}
}

func skip(scan *lexmachine.Scanner, match *machines.Match) (interface{}, error) {
	return nil, nil
}

type line struct {
	number  int
	tokens  []*lexmachine.Token
	comment string
}

func splitLines(text []byte) ([]line, error) {
	scanner, err := lexer.Scanner(text)
	if err != nil {
		return nil, errors.Wrapf(err, "Failed to create lexer scanner")
	}

	lines := make([]line, 0, 16)
	current := line{number: 1}

	flush := func() {
		if len(current.tokens) != 0 || current.comment != "" {
			lines = append(lines, current)
		}
		current = line{}
	}

	for Itok, err, eos := scanner.Next(); !eos; Itok, err, eos = scanner.Next() {
		if err != nil {
			return nil, errors.Wrapf(err, "Failed to parse token")
		}
		tok := Itok.(*lexmachine.Token)

		switch tok.Type {
		case TOKEN_NEWLINE:
			flush()
		case TOKEN_COMMENT:
			current.comment = strings.TrimSpace(string(tok.Lexeme[2:]))
		default:
			if len(current.tokens) == 0 {
				current.number = tok.StartLine
			}
			current.tokens = append(current.tokens, tok)
		}
	}
	flush()

	return lines, nil
}

type lineParser struct {
	line line
	pos  int
}

func (p *lineParser) done() bool { return p.pos >= len(p.line.tokens) }

func (p *lineParser) peekKeyword() string {
	if p.done() {
		return ""
	}
	tok := p.line.tokens[p.pos]
	if tok.Type != TOKEN_KEYWORD {
		return ""
	}
	return string(tok.Lexeme)
}

func (p *lineParser) keyword() (string, error) {
	kw := p.peekKeyword()
	if kw == "" {
		return "", errors.Errorf("Expected keyword on line %v", p.line.number)
	}
	p.pos++
	return kw, nil
}

func (p *lineParser) str() (string, error) {
	if p.done() || p.line.tokens[p.pos].Type != TOKEN_STRING {
		return "", errors.Errorf("Expected string on line %v", p.line.number)
	}
	s, err := strconv.Unquote(string(p.line.tokens[p.pos].Lexeme))
	if err != nil {
		return "", errors.Errorf("Unknown string format on line %v (%q)",
			p.line.number, p.line.tokens[p.pos].Lexeme)
	}
	p.pos++
	return s, nil
}

func (p *lineParser) number() (float32, error) {
	if p.done() || p.line.tokens[p.pos].Type != TOKEN_NUMBER {
		return 0, errors.Errorf("Expected number on line %v", p.line.number)
	}
	f, err := strconv.ParseFloat(string(p.line.tokens[p.pos].Lexeme), 32)
	if err != nil {
		return 0, errors.Errorf("Unknown number format on line %v (%q)",
			p.line.number, p.line.tokens[p.pos].Lexeme)
	}
	p.pos++
	return float32(f), nil
}

func (p *lineParser) vec3() (v mgl32.Vec3, err error) {
	for i := 0; i < 3; i++ {
		if v[i], err = p.number(); err != nil {
			return v, err
		}
	}
	return v, nil
}

// ParseScript parses a metarig description into statements, one per
// non-empty line.
func ParseScript(text []byte) ([]Statement, error) {
	lines, err := splitLines(text)
	if err != nil {
		return nil, err
	}

	result := make([]Statement, 0, len(lines))

	for _, l := range lines {
		if len(l.tokens) == 0 {
			continue
		}
		p := &lineParser{line: l}

		kw, err := p.keyword()
		if err != nil {
			return nil, err
		}

		var stmt Statement
		switch kw {
		case "armature":
			stmt, err = p.parseArmature()
		case "bone":
			stmt, err = p.parseBone()
		case "rig":
			stmt, err = p.parseRig()
		default:
			return nil, errors.Errorf("Unknown statement %q on line %v", kw, l.number)
		}
		if err != nil {
			return nil, err
		}
		if !p.done() {
			return nil, errors.Errorf("Trailing tokens on line %v", l.number)
		}
		result = append(result, stmt)
	}

	return result, nil
}

func (p *lineParser) parseArmature() (Statement, error) {
	name, err := p.str()
	if err != nil {
		return nil, err
	}
	return &ArmatureStatement{Name: name, Comment: p.line.comment}, nil
}

func (p *lineParser) parseBone() (Statement, error) {
	name, err := p.str()
	if err != nil {
		return nil, err
	}
	stmt := &BoneStatement{Name: name, Comment: p.line.comment}

	for !p.done() {
		kw, err := p.keyword()
		if err != nil {
			return nil, err
		}
		switch kw {
		case "head":
			stmt.Head, err = p.vec3()
		case "tail":
			stmt.Tail, err = p.vec3()
		case "roll":
			stmt.Roll, err = p.number()
		case "parent":
			stmt.Parent, err = p.str()
		case "connect":
			stmt.Connect = true
		default:
			return nil, errors.Errorf("Unknown bone property %q on line %v", kw, p.line.number)
		}
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}

func (p *lineParser) parseRig() (Statement, error) {
	name, err := p.str()
	if err != nil {
		return nil, err
	}
	stmt := &RigStatement{Name: name, Comment: p.line.comment}

	for !p.done() {
		kw, err := p.keyword()
		if err != nil {
			return nil, err
		}
		switch kw {
		case "type":
			stmt.Type, err = p.str()
		case "chain":
			for !p.done() && p.line.tokens[p.pos].Type == TOKEN_STRING {
				var bone string
				if bone, err = p.str(); err != nil {
					break
				}
				stmt.Chain = append(stmt.Chain, bone)
			}
		case "bbones":
			var f float32
			if f, err = p.number(); err == nil {
				stmt.BBones = int(f)
			}
		default:
			return nil, errors.Errorf("Unknown rig property %q on line %v", kw, p.line.number)
		}
		if err != nil {
			return nil, err
		}
	}
	return stmt, nil
}
