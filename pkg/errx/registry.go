package errx

// RegistryEntry describes a registered error code.
type RegistryEntry struct {
	Code        string
	Description string
}

// Error codes follow a stable 5-digit scheme where the first two digits are the
// component and the last three digits are reserved for subcodes.
const (
	CodeCLI       = "70000"
	CodeConfig    = "71000"
	CodeCatalog   = "72000"
	CodeRender    = "73000"
	CodeExport    = "74000"
	CodeClipboard = "75000"
	CodeForm      = "76000"
	CodePreview   = "77000"
)

const (
	DescCLI       = "CLI/argument validation error"
	DescConfig    = "Configuration store error"
	DescCatalog   = "Error catalog error"
	DescRender    = "Render error"
	DescExport    = "Export error"
	DescClipboard = "Clipboard error"
	DescForm      = "Form input error"
	DescPreview   = "Preview error"
)

var registryEntries = []RegistryEntry{
	{Code: CodeCLI, Description: DescCLI},
	{Code: CodeConfig, Description: DescConfig},
	{Code: CodeCatalog, Description: DescCatalog},
	{Code: CodeRender, Description: DescRender},
	{Code: CodeExport, Description: DescExport},
	{Code: CodeClipboard, Description: DescClipboard},
	{Code: CodeForm, Description: DescForm},
	{Code: CodePreview, Description: DescPreview},
}

var registryMap = func() map[string]string {
	m := make(map[string]string, len(registryEntries))
	for _, entry := range registryEntries {
		m[entry.Code] = entry.Description
	}
	return m
}()

// ErrorRegistry returns the registered codes in deterministic order.
func ErrorRegistry() []RegistryEntry {
	entries := make([]RegistryEntry, len(registryEntries))
	copy(entries, registryEntries)
	return entries
}

// DescriptionFor returns the registry description for a code.
func DescriptionFor(code string) (string, bool) {
	desc, ok := registryMap[code]
	return desc, ok
}

// IsValidCode checks if the given error code is registered.
func IsValidCode(code string) bool {
	_, ok := registryMap[code]
	return ok
}
