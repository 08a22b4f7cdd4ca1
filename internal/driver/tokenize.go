package driver

import (
	"fmt"

	"galaxy/internal/diag"
	"galaxy/internal/lexer"
	"galaxy/internal/source"
	"galaxy/internal/token"
)

// TokenizeResult is the token stream of one file plus its lexical
// diagnostics.
type TokenizeResult struct {
	Path   string
	FileID source.FileID
	Files  *source.FileSet
	Tokens []token.Token
	Bag    *diag.Bag
}

// Tokenize lexes one file without parsing it.
func Tokenize(path string, maxDiags int) (*TokenizeResult, error) {
	if maxDiags <= 0 {
		maxDiags = DefaultMaxDiags
	}
	fset := source.NewFileSet()
	id, err := fset.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	bag := diag.NewBag(maxDiags)
	lx := lexer.New(fset.Get(id), lexer.Options{
		Reporter: lexBagReporter{bag: bag},
	})
	res := &TokenizeResult{
		Path:   path,
		FileID: id,
		Files:  fset,
		Tokens: lx.Tokenize(),
		Bag:    bag,
	}
	res.Bag.Sort()
	return res, nil
}

// lexBagReporter maps lexer error kinds onto diagnostic codes.
type lexBagReporter struct {
	bag *diag.Bag
}

func (r lexBagReporter) Report(kind string, sp source.Span, msg string) {
	code := diag.LexInfo
	switch kind {
	case "UnexpectedChar":
		code = diag.LexUnknownChar
	case "UnterminatedString":
		code = diag.LexUnterminatedString
	case "UnterminatedComment":
		code = diag.LexUnterminatedBlockComment
	case "BadNumber":
		code = diag.LexBadNumber
	}
	r.bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     code,
		Message:  msg,
		Primary:  sp,
	})
}
