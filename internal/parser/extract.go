package parser

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"
)

var includeRe = regexp.MustCompile(`^\s*#\s*include\s*(<[^>]+>|"[^"]+")`)

// ExtractIncludes scans one file's text and returns its include directives
// in source order. Directives inside line or block comments are skipped;
// conditional-compilation guards are not evaluated, so guarded includes are
// extracted unconditionally.
func ExtractIncludes(path string, content []byte) []RawInclude {
	var includes []RawInclude

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	inBlock := false
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		code, stillInBlock := stripComments(scanner.Text(), inBlock)
		inBlock = stillInBlock

		m := includeRe.FindStringSubmatch(code)
		if m == nil {
			continue
		}

		delimited := m[1]
		form := FormQuoted
		if strings.HasPrefix(delimited, "<") {
			form = FormAngle
		}
		includes = append(includes, RawInclude{
			Target: delimited[1 : len(delimited)-1],
			Form:   form,
			File:   path,
			Line:   lineNo,
		})
	}

	return includes
}

// stripComments removes // and /* */ regions from one line, preserving
// string literal contents so that quoted include targets survive.
func stripComments(line string, inBlock bool) (string, bool) {
	var b strings.Builder
	inString := false

	for i := 0; i < len(line); i++ {
		c := line[i]

		if inBlock {
			if c == '*' && i+1 < len(line) && line[i+1] == '/' {
				inBlock = false
				i++
			}
			continue
		}

		if inString {
			b.WriteByte(c)
			if c == '\\' && i+1 < len(line) {
				i++
				b.WriteByte(line[i])
			} else if c == '"' {
				inString = false
			}
			continue
		}

		switch {
		case c == '"':
			inString = true
			b.WriteByte(c)
		case c == '/' && i+1 < len(line) && line[i+1] == '/':
			return b.String(), false
		case c == '/' && i+1 < len(line) && line[i+1] == '*':
			inBlock = true
			i++
		default:
			b.WriteByte(c)
		}
	}

	return b.String(), inBlock
}
