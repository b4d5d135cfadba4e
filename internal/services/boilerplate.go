package services

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// redundantPrefix es la muletilla con la que los modelos suelen arrancar la
// descripción. El match es exacto, sensible a mayúsculas, espacio incluido.
const redundantPrefix = "This pull request "

const howHasThisBeenTestedSection = "## How Has This Been Tested?\n\n" +
	"<!--- Please describe in detail how you tested your changes. -->\n" +
	"<!--- Include details of your testing environment, and the tests you ran to -->\n" +
	"<!--- see how your change affects other areas of the code, etc. -->"

const dependsOnSection = "## Depends On\n\n" +
	"<!--- Does this PR depend on another PR that should be merged first or at the same time -->"

const testsIncludedSection = "## Tests included/Docs Updated?\n\n" +
	"<!--- Go over all the following points, and put an `x` in all the boxes that apply. -->\n\n" +
	"- [ ] I have added tests to cover my changes.\n" +
	"- [ ] All relevant doc has been updated"

// fixesJiraIssueSection linkea al ticket. Se renderiza incondicionalmente:
// con los campos de Jira vacíos el link queda malformado.
func fixesJiraIssueSection(jiraBaseURL, issueKey string) string {
	browseURL := fmt.Sprintf("%s/browse/%s", jiraBaseURL, issueKey)
	return fmt.Sprintf("## Fixes Jira Issue\n\n[%s](%s)", browseURL, browseURL)
}

// StripRedundantPrefix saca el prefijo redundante y pone en mayúscula el
// nuevo primer carácter. Sobre un texto ya sin prefijo no cambia nada.
func StripRedundantPrefix(text string) string {
	if !strings.HasPrefix(text, redundantPrefix) {
		return text
	}

	stripped := strings.TrimPrefix(text, redundantPrefix)
	if stripped == "" {
		return stripped
	}

	first, size := utf8.DecodeRuneInString(stripped)
	return string(unicode.ToUpper(first)) + stripped[size:]
}

// AppendBoilerplate agrega las cuatro secciones fijas, en este orden,
// separadas por una línea en blanco.
func AppendBoilerplate(description, jiraBaseURL, issueKey string) string {
	return strings.Join([]string{
		description,
		howHasThisBeenTestedSection,
		fixesJiraIssueSection(jiraBaseURL, issueKey),
		dependsOnSection,
		testsIncludedSection,
	}, "\n\n")
}
