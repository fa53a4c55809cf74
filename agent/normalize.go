package agent

import (
	"maps"
	"strings"

	"projgen/model"
)

// escapeReplacer turns literal escape sequences into the characters they name.
// Models regularly double-escape file bodies inside JSON strings.
var escapeReplacer = strings.NewReplacer(`\n`, "\n", `\r`, "\r", `\t`, "\t")

// normalizeContent returns args with the "content" entry unescaped when it is a
// string. Other shapes and keys pass through unchanged; the input is not modified.
func normalizeContent(args model.Args) model.Args {
	keyed, ok := args.(model.KeyedArgs)
	if !ok {
		return args
	}
	content, ok := keyed["content"].(string)
	if !ok {
		return args
	}

	out := maps.Clone(keyed)
	out["content"] = escapeReplacer.Replace(content)
	return out
}
