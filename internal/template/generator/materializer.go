package generator

import (
	"path/filepath"
	"strings"

	"github.com/tacogips/just-code/internal/debug"
	"github.com/tacogips/just-code/internal/template/casing"
	"github.com/tacogips/just-code/internal/template/model"
	"github.com/tacogips/just-code/internal/template/store"
)

// Materializer creates files from templates.
type Materializer struct {
	store  store.Store
	writer Writer
}

// NewMaterializer creates a Materializer reading templates from s.
// A nil writer uses the filesystem.
func NewMaterializer(s store.Store, w Writer) *Materializer {
	if w == nil {
		w = NewFileWriter()
	}
	return &Materializer{store: s, writer: w}
}

// Create writes the file described by spec under dir, or at spec itself when
// it is an absolute path.
//
// It fails with AlreadyExists when anything is present at the target path,
// TemplateMissing or TemplateMalformed when the extension has no usable
// template, and IOFailure for filesystem errors. On failure no file is left
// behind. The returned path is the created file.
func (m *Materializer) Create(dir string, spec model.FileSpec) (string, error) {
	log := debug.Logger("generator")
	target := TargetPath(dir, spec)
	log.Debug().Str("target", target).Str("extension", spec.Extension).Msg("materializing file")

	exists, err := m.writer.Exists(target)
	if err != nil {
		return "", err
	}
	if exists {
		return "", newAlreadyExistsError(spec.FullName())
	}

	raw, ok := m.store.Lookup(spec.Extension)
	if !ok {
		return "", newTemplateMissingError(spec.Extension)
	}
	tmpl, ok := raw.(string)
	if !ok {
		return "", newTemplateMalformedError(spec.Extension, raw)
	}

	content := Render(tmpl, BaseName(spec.Path))

	mode := ModeRegular
	if m.store.IsExecutable(spec.Extension) {
		mode = ModeExecutable
	}

	if err := m.writer.WriteFile(target, []byte(content), mode); err != nil {
		if IsType(err, AlreadyExists) {
			return "", newAlreadyExistsError(spec.FullName())
		}
		return "", err
	}

	log.Debug().Str("target", target).Str("mode", mode.String()).Msg("file created")
	return target, nil
}

// TargetPath returns where spec is created: its name as given when absolute,
// otherwise relative to dir.
func TargetPath(dir string, spec model.FileSpec) string {
	name := spec.FileName()
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

// Render substitutes every casing-style placeholder in tmpl with name
// rendered in that style.
//
// Styles are applied one after another in casing.Styles order over the
// accumulating text, so a placeholder produced by an earlier substitution
// can be replaced by a later style.
func Render(tmpl, name string) string {
	text := tmpl
	for _, style := range casing.Styles() {
		placeholder := casing.Placeholder(style)
		if !strings.Contains(text, placeholder) {
			continue
		}
		text = strings.ReplaceAll(text, placeholder, casing.Convert(name, style))
	}
	return text
}

// BaseName returns the last path segment of path.
func BaseName(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
