package modeller

import (
	"math"
	"strconv"
	"strings"

	"github.com/ardnew/mkdef/envvar"
	"github.com/ardnew/mkdef/model"
	"github.com/ardnew/mkdef/pkg"
	"github.com/ardnew/mkdef/tree"
)

// GetPermissions decodes a file permissions token ("[rwx]") into a
// Permissions value.
func GetPermissions(tok *tree.Token) model.Permissions {
	var p model.Permissions

	for i := 1; i < len(tok.Text) && tok.Text[i] != ']'; i++ {
		switch tok.Text[i] {
		case 'r':
			p.SetReadable()
		case 'w':
			p.SetWriteable()
		case 'x':
			p.SetExecutable()
		}
	}

	return p
}

// substitute expands environment variable references in a token's text and
// strips any surrounding quotes.
func substitute(tok *tree.Token) (string, *tree.Error) {
	s, err := envvar.DoSubstitution(tok.Text)
	if err != nil {
		return "", tree.ErrorAt(tree.SemanticError, tok, "%s", err.Error())
	}

	return pkg.Unquote(s), nil
}

// getPermissionItem builds a FileSystemObject from an item of the form
// "[permissions] srcPath destPath", defaulting to read-only when the
// permissions are omitted.
func getPermissionItem(item *tree.Item) (*model.FileSystemObject, *tree.Error) {
	obj := &model.FileSystemObject{Item: item}

	var srcTok, destTok *tree.Token

	first := item.Contents[0]
	if first.Kind == tree.FilePermissions {
		srcTok = item.Contents[1]
		destTok = item.Contents[2]
		obj.Permissions = GetPermissions(first)
	} else {
		srcTok = first
		destTok = item.Contents[1]
		obj.Permissions.SetReadable()
	}

	var err *tree.Error

	if obj.Src, err = substitute(srcTok); err != nil {
		return nil, err
	}

	if obj.Dest, err = substitute(destTok); err != nil {
		return nil, err
	}

	// A destination ending in a slash names the directory to put the
	// source into.
	if strings.HasSuffix(obj.Dest, "/") {
		obj.Dest += pkg.GetLastNode(obj.Src)
	}

	return obj, nil
}

// GetBundledItem builds a FileSystemObject for a bundled file or directory.
func GetBundledItem(item *tree.Item) (*model.FileSystemObject, *tree.Error) {
	return getPermissionItem(item)
}

// GetRequiredFileOrDir builds a FileSystemObject for a required file or
// directory. Items bind-mounted into the sandbox from outside keep the
// permissions they have in the target file system, so none are parsed.
func GetRequiredFileOrDir(item *tree.Item) (*model.FileSystemObject, *tree.Error) {
	srcTok := item.Contents[0]
	destTok := item.Contents[1]

	src, err := substitute(srcTok)
	if err != nil {
		return nil, err
	}

	dest, err := substitute(destTok)
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(src, "/") {
		return nil, tree.ErrorAt(tree.SemanticError, srcTok,
			"Required item's path must not end in a '/'.")
	}

	if strings.HasSuffix(dest, "/") {
		dest += pkg.GetLastNode(src)
	}

	return &model.FileSystemObject{Item: item, Src: src, Dest: dest}, nil
}

// GetRequiredDevice builds a FileSystemObject for a required device node.
func GetRequiredDevice(item *tree.Item) (*model.FileSystemObject, *tree.Error) {
	obj, err := getPermissionItem(item)
	if err != nil {
		return nil, err
	}

	if obj.Permissions.IsExecutable() {
		return nil, tree.ErrorAt(tree.SemanticError, item.FirstToken(),
			"Execute permission is not allowed on devices: '%s'", obj.Src)
	}

	return obj, nil
}

// parseIntText parses an integer token's text, applying the optional 'K'
// (x 1024) suffix. Values that do not fit in an int after the multiply
// are rejected rather than wrapped.
func parseIntText(text string, signed bool) (int, bool) {
	multiplier := int64(1)
	if strings.HasSuffix(text, "K") {
		multiplier = 1024
		text = strings.TrimSuffix(text, "K")
	}

	if signed {
		v, err := strconv.ParseInt(text, 0, 64)
		if err != nil || v > math.MaxInt64/multiplier || v < math.MinInt64/multiplier {
			return 0, false
		}

		return int(v * multiplier), true
	}

	v, err := strconv.ParseUint(text, 0, 63)
	if err != nil || v > math.MaxInt64/uint64(multiplier) {
		return 0, false
	}

	return int(v) * int(multiplier), true
}

// GetNonNegativeInt extracts the integer value of a simple section and
// verifies that it is non-negative.
func GetNonNegativeInt(section *tree.SimpleSection) (int, *tree.Error) {
	tok := section.Content

	v, ok := parseIntText(tok.Text, false)
	if !ok {
		return 0, tree.ErrorAt(tree.SemanticError, tok,
			"Value must be an integer between 0 and %d, with an optional 'K' suffix.",
			int64(math.MaxInt64))
	}

	return v, nil
}

// GetInt extracts the signed integer value of a simple section.
func GetInt(section *tree.SimpleSection) (int, *tree.Error) {
	tok := section.Content

	v, ok := parseIntText(tok.Text, true)
	if !ok {
		return 0, tree.ErrorAt(tree.SemanticError, tok,
			"Value must be an integer between %d and %d, with an optional 'K' suffix.",
			int64(math.MinInt64), int64(math.MaxInt64))
	}

	return v, nil
}

// GetPositiveInt extracts the integer value of a simple section and
// verifies that it is positive.
func GetPositiveInt(section *tree.SimpleSection) (int, *tree.Error) {
	v, err := GetNonNegativeInt(section)
	if err != nil {
		return 0, err
	}

	if v == 0 {
		return 0, tree.ErrorAt(tree.SemanticError, section.Content,
			"Value must be an integer between 1 and %d, with an optional 'K' suffix.",
			int64(math.MaxInt64))
	}

	return v, nil
}

// RemoveAngleBrackets strips the angle brackets from a non-app user name,
// turning "<root>" into "root".
func RemoveAngleBrackets(agentName string) string {
	return agentName[1 : len(agentName)-1]
}

// bindToRootService binds a client-side interface to a service provided by
// the root user.
func bindToRootService(app *model.App, instance *model.ApiClientInterfaceInstance, serviceName string) {
	instance.Binding = &model.Binding{
		ClientType:      model.InternalAgent,
		ClientAgentName: app.Name,
		ClientIfName:    instance.Name,
		ServerType:      model.ExternalUserAgent,
		ServerAgentName: "root",
		ServerIfName:    serviceName,
	}
}
