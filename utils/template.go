package utils

import (
	"html/template"
	"io/fs"

	"github.com/pkg/errors"
)

// LoadTemplate parses the template stored at templatePath in fsys
func LoadTemplate(fsys fs.FS, templateName string, templatePath string) (*template.Template, error) {
	templateStr, err := fs.ReadFile(fsys, templatePath)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read template file %s", templatePath)
	}

	template, err := template.New(templateName).Parse(string(templateStr))
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse template %s", templateName)
	}

	return template, nil
}
