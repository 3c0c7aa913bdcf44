package tree

// Content is the common interface of parse tree nodes. Every node can name
// the token that opened it and the token that closed it, anchoring
// diagnostics to source locations.
type Content interface {
	FirstToken() *Token
	LastToken() *Token
}

// DefFile is the parse tree root for one definition file. It owns every
// token lexed from the file (the arena) and the ordered list of top-level
// sections.
type DefFile struct {
	Path     string
	Tokens   []*Token
	Sections []Content
}

// NewDefFile creates an empty parse tree for the file at path.
func NewDefFile(path string) *DefFile {
	return &DefFile{Path: path}
}

// Append adds a token to the file's arena, linking it to its predecessor.
func (f *DefFile) Append(t *Token) *Token {
	t.File = f
	t.Prev = len(f.Tokens) - 1
	f.Tokens = append(f.Tokens, t)

	return t
}

// node carries the parts shared by every named parse tree node.
type node struct {
	name *Token
	last *Token
}

// Name returns the node's name text (the section or item name, or the first
// token's text for items that have no name of their own).
func (n *node) Name() string { return n.name.Text }

// NameToken returns the token that opened the node.
func (n *node) NameToken() *Token { return n.name }

// FirstToken implements [Content].
func (n *node) FirstToken() *Token { return n.name }

// LastToken implements [Content]. Before any content or closing delimiter
// has been recorded it falls back to the opening token.
func (n *node) LastToken() *Token {
	if n.last != nil {
		return n.last
	}

	return n.name
}

// SetLastToken back-patches the node's designated last token. The parser
// calls this with the closing delimiter of a delimited node.
func (n *node) SetLastToken(t *Token) { n.last = t }

// SimpleSection is a "name : token" section.
type SimpleSection struct {
	node
	Content *Token
}

// NewSimpleSection creates a simple section opened by the given name token.
func NewSimpleSection(name *Token) *SimpleSection {
	return &SimpleSection{node: node{name: name}}
}

// AddContent records the section's single content token.
func (s *SimpleSection) AddContent(t *Token) {
	s.Content = t
	s.last = t
}

// Text returns the content token's text.
func (s *SimpleSection) Text() string { return s.Content.Text }

// TokenListSection is a "name : { token* }" section holding an ordered
// homogeneous token sequence.
type TokenListSection struct {
	node
	Contents []*Token
}

// NewTokenListSection creates a token list section opened by the given name
// token.
func NewTokenListSection(name *Token) *TokenListSection {
	return &TokenListSection{node: node{name: name}}
}

// AddContent appends one content token.
func (s *TokenListSection) AddContent(t *Token) {
	s.Contents = append(s.Contents, t)
	s.last = t
}

// ComplexSection is a "name : { item* }" section whose items are compound
// nodes produced by a caller-supplied item parser.
type ComplexSection struct {
	node
	Items []Content
}

// NewComplexSection creates a complex section opened by the given name token.
func NewComplexSection(name *Token) *ComplexSection {
	return &ComplexSection{node: node{name: name}}
}

// AddItem appends one parsed item.
func (s *ComplexSection) AddItem(item Content) {
	s.Items = append(s.Items, item)
	s.last = item.LastToken()
}

// Item is a compound item inside a complex section: an ordered token
// sequence whose interpretation is fixed by its [ItemTag]. The opening token
// may be the item's name (executables, bindings) or simply its first content
// token (bundled and required entries).
type Item struct {
	node
	Tag      ItemTag
	Contents []*Token
}

// NewItem creates an item of the given tag opened by the given token.
func NewItem(tag ItemTag, first *Token) *Item {
	return &Item{node: node{name: first}, Tag: tag}
}

// AddContent appends one content token.
func (i *Item) AddContent(t *Token) {
	i.Contents = append(i.Contents, t)
	i.last = t
}
