package ai

import (
	"fmt"
	"strings"

	"github.com/thomas-vilte/pr-autofill/internal/config"
	"github.com/thomas-vilte/pr-autofill/internal/domain/models"
)

const (
	// El prompt se recorta a este presupuesto de caracteres, estimado como
	// tokens por un promedio de 4 caracteres por token. El corte es duro,
	// incluso a mitad de una palabra o de un patch.
	maxPromptTokens   = 2048
	charsPerToken     = 4
	maxPromptLength   = maxPromptTokens * charsPerToken
	promptFileLineFmt = "Changes in file %s: %s\n"
)

// SystemInstruction fija el estilo de la respuesta del modelo.
const SystemInstruction = "You are a world class expert full stack web developer having experience with nodejs, typescript, express who writes pull request descriptions adding 'description' and 'how has this been tested' sections."

// SamplePrompt es el ejemplo few-shot de entrada. Se puede reemplazar con
// INPUT_MODEL_SAMPLE_PROMPT.
const SamplePrompt = `
Write a pull request description focusing on the motivation behind the change and why it improves the project.
Go straight to the point.

The title of the pull request is "Fix sorting on "Principal Investigator" and "PI Email" for proposal table" and the following changes took place: 

Changes in file diff --git a/apps/backend/src/datasources/postgres/ProposalDataSource.ts b/apps/backend/src/datasources/postgres/ProposalDataSource.ts
index 425b38954..4014fafd6 100644
--- a/apps/backend/src/datasources/postgres/ProposalDataSource.ts
+++ b/apps/backend/src/datasources/postgres/ProposalDataSource.ts
@@ -52,8 +52,6 @@ const fieldMap: { [key: string]: string } = {
   statusName: 'proposal_table_view.proposal_status_id',
   proposalId: 'proposal_table_view.proposal_id',
   title: 'title',
-  submitted: 'proposal_table_view.submitted',
-  notified: 'proposal_table_view.notified',
 };

 export async function calculateReferenceNumber(
diff --git a/apps/frontend/src/components/proposal/ProposalTableOfficer.tsx b/apps/frontend/src/components/proposal/ProposalTableOfficer.tsx
index d495d9fed..00dff28a2 100644
--- a/apps/frontend/src/components/proposal/ProposalTableOfficer.tsx
+++ b/apps/frontend/src/components/proposal/ProposalTableOfficer.tsx
@@ -118,7 +118,6 @@ let columns: Column<ProposalViewData>[] = [
   {
     title: 'Principal Investigator',
     field: 'principalInvestigator',
-    sorting: false,
     emptyValue: '-',
     render: (proposalView) => {
       if (
@@ -134,7 +133,6 @@ let columns: Column<ProposalViewData>[] = [
   {
     title: 'PI Email',
     field: 'principalInvestigator.email',
-    sorting: false,
     emptyValue: '-',
   },
   {
`

// SampleResponse es el ejemplo few-shot de salida. Se puede reemplazar con
// INPUT_MODEL_SAMPLE_RESPONSE.
const SampleResponse = `
## Description
This PR addresses malfunctioning sorting functionality on "Principal Investigator" and "PI Email" columns by disabling sorting on them.

## Motivation and Context
The sorting functionality on "Principal Investigator" and "PI Email" columns was malfunctioning, causing unexpected results and confusion for users.

## Changes
- Disables sorting on "Principal Investigator" and "PI Email" columns.
`

const promptHeaderTemplate = " " + `
Write a concise pull request description focusing on the motivation behind the change so that it is helpful for the reviewer to understand.
Go straight to the point, avoid verbosity.
Pull request description should consist of three sections:
## Description
This is the concise high level description in one short sentence of the PR. (what).

## Motivation and Context
Why is this change required? Explain in one short sentence. What problem does it solve? (why)

## Changes
Go through step by step. What types of changes does your code introduce? Keep it short focusing only on maximum 3 most important changes. (how)

Below is additional context regarding task from the Jira ticket. Use them to write better description and motivation: 
%s

The title of the pull request is "%s" and the following changes took place: 

`

// BuildPrompt arma el prompt final: instrucciones fijas, descripción del
// ticket, título del PR y una línea por cada archivo con patch que no esté
// excluido. El resultado se recorta al presupuesto de caracteres.
func BuildPrompt(title, taskDescription string, files []models.ChangedFile, cfg *config.Config) string {
	var prompt strings.Builder
	prompt.WriteString(fmt.Sprintf(promptHeaderTemplate, taskDescription, title))

	for _, file := range files {
		// Las entradas sin patch (binarios eliminados, etc.) no aportan nada
		if file.Patch == "" {
			continue
		}
		if cfg.IsFileExcluded(file.Filename) {
			continue
		}
		prompt.WriteString(fmt.Sprintf(promptFileLineFmt, file.Filename, file.Patch))
	}

	assembled := prompt.String()
	if len(assembled) > maxPromptLength {
		assembled = assembled[:maxPromptLength]
	}

	return assembled
}
