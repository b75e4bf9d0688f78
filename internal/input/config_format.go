package input

// Keyspec is a key sequence in config notation, e.g. "gg" or "<c-w>".
type Keyspec string

// Actionspec names an action a Keyspec can be bound to, e.g. "accept".
type Actionspec string

// InputConfig holds the bindings for each input context.
type InputConfig struct {
	// Field holds bindings for the reference field. Each must be a single key,
	// all other runes are typed into the field.
	Field map[Keyspec]Actionspec `yaml:"field"`
	// BookList holds bindings for the book list overlay; sequences allowed.
	BookList map[Keyspec]Actionspec `yaml:"book-list"`
	// Help holds bindings active while the help overlay is shown.
	Help map[Keyspec]Actionspec `yaml:"help"`
	// Log holds bindings active while the log is shown.
	Log map[Keyspec]Actionspec `yaml:"log"`
}
