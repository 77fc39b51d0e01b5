package entities

import "strings"

// ScriptPreamble makes the generated script stop on the first failure and
// echo every command it runs.
const ScriptPreamble = "set -eux"

// Placeholders understood by the command templates.
const (
	placeholderAlias     = "{alias}"
	placeholderReal      = "{real}"
	placeholderAliasMod  = "{alias_mod}"
	placeholderRealMod   = "{real_mod}"
	placeholderManifest  = "{manifest}"
	placeholderSourceDir = "{src}"
)

// Manifest edits use the names exactly as written in Cargo.toml.
const (
	TemplateRenameKey       = `sed -i "s~{alias} = ~{real} = ~" {manifest}`
	TemplateDropPackage     = `sed -i "s~package = \"{real}\",~~" {manifest}`
	TemplateStdFeature      = `sed -i "s~\"{alias}/std\"~\"{real}/std\"~" {manifest}`
	TemplateOptionalFeature = `sed -i "s~\"{alias}\",~\"{real}\",~" {manifest}`
)

// Source edits use the module names, with hyphens turned into underscores.
const (
	TemplatePathQualifier = `find {src} -type f -name "*.rs" -exec sed -i "s~\b{alias_mod}::~{real_mod}::~g" {} +`
	TemplateUseStatement  = `find {src} -type f -name "*.rs" -exec sed -i "s~use {alias_mod}\b~use {real_mod}~g" {} +`
)

// RenameTemplates lists the command templates in the order they are emitted.
//
//nolint:gochecknoglobals // fixed output contract
var RenameTemplates = []string{
	TemplateRenameKey,
	TemplateDropPackage,
	TemplateStdFeature,
	TemplateOptionalFeature,
	TemplatePathQualifier,
	TemplateUseStatement,
}

// RenderRename returns the command lines that remove a single rename.
func RenderRename(pair RenamePair, manifestPath, sourceDir string) []string {
	replacer := strings.NewReplacer(
		placeholderAliasMod, pair.ModuleAlias(),
		placeholderRealMod, pair.ModuleRealName(),
		placeholderAlias, pair.Alias,
		placeholderReal, pair.RealName,
		placeholderManifest, manifestPath,
		placeholderSourceDir, sourceDir,
	)

	lines := make([]string, 0, len(RenameTemplates))
	for _, tmpl := range RenameTemplates {
		lines = append(lines, replacer.Replace(tmpl))
	}
	return lines
}

// RenderTable returns the command block for every rename of a table.
func RenderTable(pairs []RenamePair, manifestPath, sourceDir string) string {
	var builder strings.Builder
	for _, pair := range pairs {
		for _, line := range RenderRename(pair, manifestPath, sourceDir) {
			builder.WriteString(line)
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}
