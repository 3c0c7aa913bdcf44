package parser

import (
	"strconv"
	"strings"

	"github.com/ardnew/mkdef/tree"
)

// parseBundledItem parses a bundled file or directory item from inside a
// "bundles:" section's "file" or "dir" subsection: an optional permissions
// token, a build host path, and a target path.
func parseBundledItem(l *Lexer, tag tree.ItemTag) (tree.Content, *tree.Error) {
	var permissions *tree.Token

	if l.IsMatch(tree.FilePermissions) {
		tok, err := l.Pull(tree.FilePermissions)
		if err != nil {
			return nil, err
		}

		permissions = tok

		if err := SkipWhitespaceAndComments(l); err != nil {
			return nil, err
		}
	}

	buildHostPath, err := l.Pull(tree.FilePath)
	if err != nil {
		return nil, err
	}

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	targetPath, err := l.Pull(tree.FilePath)
	if err != nil {
		return nil, err
	}

	first := buildHostPath
	if permissions != nil {
		first = permissions
	}

	item := tree.NewItem(tag, first)

	if permissions != nil {
		item.AddContent(permissions)
	}

	item.AddContent(buildHostPath)
	item.AddContent(targetPath)

	return item, nil
}

// ParseBundlesSubsection parses one subsection ("file" or "dir") of a
// "bundles:" section.
func ParseBundlesSubsection(l *Lexer) (tree.Content, *tree.Error) {
	name, err := l.Pull(tree.Name)
	if err != nil {
		return nil, err
	}

	var tag tree.ItemTag

	switch name.Text {
	case "file":
		tag = tree.BundledFileItem
	case "dir":
		tag = tree.BundledDirItem
	default:
		return nil, l.errUnknownSubsection(name.Text, "bundles", []string{"file", "dir"})
	}

	return ParseComplexSection(l, name, func(l *Lexer) (tree.Content, *tree.Error) {
		return parseBundledItem(l, tag)
	})
}

// parseRequiredFileOrDir parses one item from inside a "requires:" section's
// "file" or "dir" subsection: a source path followed by a destination path.
func parseRequiredFileOrDir(l *Lexer, tag tree.ItemTag) (tree.Content, *tree.Error) {
	srcPath, err := l.Pull(tree.FilePath)
	if err != nil {
		return nil, err
	}

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	destPath, err := l.Pull(tree.FilePath)
	if err != nil {
		return nil, err
	}

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	item := tree.NewItem(tag, srcPath)
	item.AddContent(srcPath)
	item.AddContent(destPath)

	return item, nil
}

// ParseRequiredFile parses a single item from inside a "file:" subsection of
// a "requires:" section.
func ParseRequiredFile(l *Lexer) (tree.Content, *tree.Error) {
	return parseRequiredFileOrDir(l, tree.RequiredFileItem)
}

// ParseRequiredDir parses a single item from inside a "dir:" subsection of a
// "requires:" section.
func ParseRequiredDir(l *Lexer) (tree.Content, *tree.Error) {
	return parseRequiredFileOrDir(l, tree.RequiredDirItem)
}

// ParseRequiredDevice parses a single item from inside a "device:"
// subsection of a "requires:" section: an optional permissions token, a
// source path, and a destination path.
func ParseRequiredDevice(l *Lexer) (tree.Content, *tree.Error) {
	return parseBundledItem(l, tree.RequiredDeviceItem)
}

// ParseFaultAction parses a "faultAction:" section.
func ParseFaultAction(l *Lexer, name *tree.Token) (tree.Content, *tree.Error) {
	section, err := ParseSimpleSection(l, name, tree.Name)
	if err != nil {
		return nil, err
	}

	switch content := section.Text(); content {
	case "ignore", "restart", "restartApp", "stopApp", "reboot":
		return section, nil
	default:
		return nil, l.errSyntax(
			"Invalid fault action '%s'. Must be one of 'ignore', 'restart',"+
				" 'restartApp', 'stopApp', or 'reboot'.", content)
	}
}

// ParsePriority parses a section containing a scheduling priority: one of
// the named service levels, or a real-time level "rt1" through "rt32".
func ParsePriority(l *Lexer, name *tree.Token) (tree.Content, *tree.Error) {
	section, err := ParseSimpleSection(l, name, tree.Name)
	if err != nil {
		return nil, err
	}

	content := section.Text()

	switch content {
	case "idle", "low", "medium", "high":
		return section, nil
	}

	if strings.HasPrefix(content, "rt") && len(content) >= 3 && len(content) <= 4 {
		if number, convErr := strconv.Atoi(content[2:]); convErr == nil {
			if number < 1 || number > 32 {
				return nil, l.errSyntax(
					"Real-time priority level %s out of range."+
						"  Must be in the range 'rt1' through 'rt32'.", content)
			}

			return section, nil
		}
	}

	return nil, l.errSyntax("Invalid priority '%s'.", content)
}

// ParseWatchdogAction parses a "watchdogAction:" section. The accepted
// actions are the fault actions plus "stop".
func ParseWatchdogAction(l *Lexer, name *tree.Token) (tree.Content, *tree.Error) {
	section, err := ParseSimpleSection(l, name, tree.Name)
	if err != nil {
		return nil, err
	}

	switch content := section.Text(); content {
	case "ignore", "restart", "restartApp", "stop", "stopApp", "reboot":
		return section, nil
	default:
		return nil, l.errSyntax(
			"Invalid watchdog action '%s'. Must be one of 'ignore', 'restart',"+
				" 'restartApp', 'stop', 'stopApp', or 'reboot'.", content)
	}
}

// ParseWatchdogTimeout parses a "watchdogTimeout:" section. Unlike other
// simple sections its content can be either an integer (milliseconds) or the
// word "never".
func ParseWatchdogTimeout(l *Lexer, name *tree.Token) (tree.Content, *tree.Error) {
	section := tree.NewSimpleSection(name)

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	if _, err := l.Pull(tree.Colon); err != nil {
		return nil, err
	}

	if err := SkipWhitespaceAndComments(l); err != nil {
		return nil, err
	}

	var content *tree.Token

	switch {
	case l.IsMatch(tree.Name):
		tok, err := l.Pull(tree.Name)
		if err != nil {
			return nil, err
		}

		if tok.Text != "never" {
			return nil, l.errSyntax(
				"Invalid watchdog timeout value '%s'. Must be an integer or"+
					" the word 'never'.", tok.Text)
		}

		content = tok

	case l.IsMatch(tree.Integer):
		tok, err := l.Pull(tree.Integer)
		if err != nil {
			return nil, err
		}

		content = tok

	default:
		return nil, l.errSyntax(
			"Invalid watchdog timeout. Must be an integer or the word 'never'.")
	}

	section.AddContent(content)

	return section, nil
}
