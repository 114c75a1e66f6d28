package scan

// Listener receives events emitted by the Scanner during a single pass
// over one source file. Implementations override only the hooks they care
// about by embedding NoOpListener.
type Listener interface {
	// TagOpen is called when an opening tag is encountered.
	// rawTag is the full tag text from '<' up to (but not including) the
	// closing '>' or '/>'.
	TagOpen(name string, selfClosing bool, rawTag string)

	// TagClose is called when a closing tag is encountered.
	TagClose(name string)

	// Comment is called for line and block comments. content excludes the
	// comment markers; line is 1-based.
	Comment(content string, line int)

	// ClassAttribute is called when a className value is found. rawTag is
	// empty for standalone cn()/clsx()/cva() calls outside any tag.
	ClassAttribute(value string, line int, rawTag string)

	// FileEnd is called once when the scan completes.
	FileEnd()
}

// NoOpListener implements Listener with empty hooks. Embed it to build
// listeners that observe only a subset of events.
type NoOpListener struct{}

func (NoOpListener) TagOpen(name string, selfClosing bool, rawTag string) {}
func (NoOpListener) TagClose(name string)                                 {}
func (NoOpListener) Comment(content string, line int)                     {}
func (NoOpListener) ClassAttribute(value string, line int, rawTag string) {}
func (NoOpListener) FileEnd()                                             {}
