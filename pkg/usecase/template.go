package usecase

import (
	"bytes"
	"text/template"

	"github.com/breweryteam/releasehook/pkg/domain"
	"github.com/breweryteam/releasehook/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

// renderTemplate expands {{.Project}} and {{.Version}} in text
func renderTemplate(name, text string, release model.Release) (string, error) {
	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", domain.Wrap(domain.ErrConfiguration, err, "failed to parse template",
			goerr.V("template", name),
		)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, release); err != nil {
		return "", domain.Wrap(domain.ErrConfiguration, err, "failed to execute template",
			goerr.V("template", name),
		)
	}

	return buf.String(), nil
}
