package textutil

import "strings"

// fileNameReplacer removes characters that are unsafe in pointer file names.
// The hash is included because downstream indexers treat it as a fragment
// marker in path queries.
var fileNameReplacer = strings.NewReplacer(
	"\\", "",
	"/", "",
	":", "",
	"\"", "",
	"*", "",
	"?", "",
	"<", "",
	">", "",
	"|", "",
	"#", "",
)

// SanitizeFileName strips filesystem-unsafe characters from a file or
// directory name and trims surrounding whitespace. The result may be empty;
// callers decide whether an empty name is an error.
func SanitizeFileName(name string) string {
	return strings.TrimSpace(fileNameReplacer.Replace(name))
}

// CollapseSpaces folds runs of whitespace into single spaces.
func CollapseSpaces(value string) string {
	return strings.Join(strings.Fields(value), " ")
}
