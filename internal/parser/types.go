package parser

import "path/filepath"

type FileKind int

const (
	KindHeader FileKind = iota
	KindImplementation
)

func (k FileKind) String() string {
	if k == KindHeader {
		return "header"
	}
	return "implementation"
}

var headerExtensions = map[string]bool{
	".h": true, ".hh": true, ".hpp": true, ".hxx": true, ".inl": true, ".ipp": true,
}

type SourceFile struct {
	Path string // canonical absolute path
	Kind FileKind
}

func NewSourceFile(path string) *SourceFile {
	kind := KindImplementation
	if headerExtensions[filepath.Ext(path)] {
		kind = KindHeader
	}
	return &SourceFile{Path: path, Kind: kind}
}

type IncludeForm int

const (
	FormQuoted IncludeForm = iota
	FormAngle
)

func (f IncludeForm) String() string {
	if f == FormQuoted {
		return "quoted"
	}
	return "angle"
}

// RawInclude is one include directive as written, before resolution.
type RawInclude struct {
	Target string // target string between the delimiters
	Form   IncludeForm
	File   string // canonical path of the including file
	Line   int    // 1-based, for diagnostics
}
