package tree

//go:generate go tool stringer --linecomment --type Kind,ErrorKind,ItemTag --output tree_string.go

// Kind identifies the lexical class of a [Token].
//
// The set is closed: every token a lexer can produce carries exactly one of
// these values, and the generated String method supplies the human-readable
// form used in diagnostics.
type Kind int

const (
	EndOfFile       Kind = iota // end-of-file
	OpenCurly                   // '{'
	CloseCurly                  // '}'
	OpenParen                   // '('
	CloseParen                  // ')'
	Colon                       // ':'
	Equals                      // '='
	Dot                         // '.'
	Star                        // '*'
	Arrow                       // '->'
	Whitespace                  // whitespace
	Comment                     // comment
	FilePermissions             // file permissions
	ServerIPCOption             // server-side IPC option
	ClientIPCOption             // client-side IPC option
	Arg                         // argument
	FilePath                    // file path
	FileName                    // file name
	Name                        // name
	DottedName                  // dotted name
	GroupName                   // group name
	IPCAgent                    // IPC agent
	Integer                     // integer
	SignedInteger               // signed integer
	Boolean                     // Boolean value
	Float                       // floating point number
	String                      // string
	MD5Hash                     // MD5 hash
)

// ErrorKind classifies a definition-file [Error] by the stage that raised it.
type ErrorKind int

const (
	LexicalError  ErrorKind = iota // lexical
	SyntaxError                    // syntax
	SemanticError                  // semantic
	BindingError                   // binding
	InternalError                  // internal
)

// ItemTag identifies the role of a compound [Item] within its enclosing
// section. The generated String method supplies the phrasing used in
// "unexpected end-of-file" diagnostics.
type ItemTag int

const (
	BundledFileItem        ItemTag = iota // bundled file
	BundledDirItem                        // bundled directory
	RequiredFileItem                      // required file
	RequiredDirItem                       // required directory
	RequiredDeviceItem                    // required device
	RequiredConfigTreeItem                // required config tree
	RequiredComponentItem                 // required component
	RequiredLibItem                       // required library
	ProvidedAPIItem                       // provided API
	RequiredAPIItem                       // required API
	ExecutableItem                        // executable
	EnvVarItem                            // environment variable
	BindingItem                           // binding
	ExternAPIItem                         // external interface
	RunProcessItem                        // process
)
