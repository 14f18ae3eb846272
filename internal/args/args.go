// Package args partitions command-line tokens into tool flags, file specs and
// editor pass-through arguments.
package args

import (
	"strings"

	"github.com/tacogips/just-code/internal/debug"
	"github.com/tacogips/just-code/internal/template/model"
)

// Separator ends tool arguments; everything after it goes to the editor.
const Separator = "--"

// Tool flag spellings. They are only recognized before Separator.
const (
	FlagCreateRepoShort = "-g"
	FlagCreateRepo      = "--create-git-repo"
	FlagNoEditorShort   = "-n"
	FlagNoEditor        = "--no-editor"
	FlagHelpShort       = "-h"
	FlagHelp            = "--help"
	FlagVersionShort    = "-V"
	FlagVersion         = "--version"
	FlagDebug           = "--debug"
)

// Parse splits tokens (program name excluded) into ParsedArgs.
//
// Flags may appear anywhere before the separator, in any order. Every other
// token is a file spec. An empty token list parses to empty ParsedArgs.
func Parse(tokens []string) (*model.ParsedArgs, error) {
	cliTokens, passthrough := splitAtSeparator(tokens)

	parsed := &model.ParsedArgs{
		FileSpecs:       []model.FileSpec{},
		PassthroughArgs: passthrough,
	}

	for _, tok := range cliTokens {
		switch tok {
		case FlagCreateRepoShort, FlagCreateRepo:
			parsed.CreateRepo = true
		case FlagNoEditorShort, FlagNoEditor:
			parsed.SkipEditor = true
		case FlagHelpShort, FlagHelp:
			parsed.ShowHelp = true
		case FlagVersionShort, FlagVersion:
			parsed.ShowVersion = true
		case FlagDebug:
			parsed.Debug = true
		default:
			spec, err := ParseFileSpec(tok)
			if err != nil {
				return nil, err
			}
			parsed.FileSpecs = append(parsed.FileSpecs, spec)
		}
	}

	debug.Debug("[args] parsed %d file spec(s), create_repo=%v, skip_editor=%v, passthrough=%v",
		len(parsed.FileSpecs), parsed.CreateRepo, parsed.SkipEditor, parsed.PassthroughArgs)

	return parsed, nil
}

// ParseFileSpec parses one file spec token: "name.ext", "name" or "re:name.ext".
// The extension is whatever follows the last dot.
func ParseFileSpec(token string) (model.FileSpec, error) {
	suppress := strings.HasPrefix(token, model.SuppressExtensionPrefix)
	rest := token
	for strings.HasPrefix(rest, model.SuppressExtensionPrefix) {
		rest = strings.TrimPrefix(rest, model.SuppressExtensionPrefix)
	}

	if rest == "" {
		return model.FileSpec{}, newArgumentError(token, "file name is empty")
	}

	spec := model.FileSpec{Path: rest, SuppressExtension: suppress}
	if i := strings.LastIndex(rest, "."); i >= 0 {
		spec.Path = rest[:i]
		spec.Extension = rest[i+1:]
	}

	if spec.FileName() == "" {
		return model.FileSpec{}, newArgumentError(token, "file name is empty once the extension is removed")
	}

	return spec, nil
}

// HasDebugFlag reports whether the debug flag appears before the separator.
func HasDebugFlag(tokens []string) bool {
	cliTokens, _ := splitAtSeparator(tokens)
	for _, tok := range cliTokens {
		if tok == FlagDebug {
			return true
		}
	}
	return false
}

// HasHelpFlag reports whether a help flag appears anywhere in tokens.
func HasHelpFlag(tokens []string) bool {
	for _, tok := range tokens {
		if tok == FlagHelpShort || tok == FlagHelp {
			return true
		}
	}
	return false
}

func splitAtSeparator(tokens []string) (cli []string, passthrough []string) {
	for i, tok := range tokens {
		if tok == Separator {
			passthrough = append([]string{}, tokens[i+1:]...)
			return tokens[:i], passthrough
		}
	}
	return tokens, []string{}
}
