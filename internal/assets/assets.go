package assets

import (
	"embed"
	"io/fs"
)

//go:embed embedded_templates
var Templates embed.FS

//go:embed embedded_schemas
var Schemas embed.FS

// ConfigSchemaPath is the config schema's location within GetSchemasFS.
const ConfigSchemaPath = "config/docsweep-config-v1.0.0.yaml"

// HTMLReportTemplatePath is the report template's location within GetTemplatesFS.
const HTMLReportTemplatePath = "report/report.html"

func GetTemplatesFS() fs.FS {
	if sub, err := fs.Sub(Templates, "embedded_templates"); err == nil {
		return sub
	}
	return Templates
}

func GetSchemasFS() fs.FS {
	if sub, err := fs.Sub(Schemas, "embedded_schemas"); err == nil {
		return sub
	}
	return Schemas
}

// ConfigSchema returns the embedded YAML JSON-Schema for .docsweep.yaml
func ConfigSchema() ([]byte, error) {
	return fs.ReadFile(GetSchemasFS(), ConfigSchemaPath)
}

// HTMLReportTemplate returns the embedded Handlebars template for HTML reports
func HTMLReportTemplate() ([]byte, error) {
	return fs.ReadFile(GetTemplatesFS(), HTMLReportTemplatePath)
}
