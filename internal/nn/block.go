package nn

// Block is a plain container module with a configurable type name.
//
// It is used to assemble trees whose node types are only known at runtime,
// e.g. from an architecture file. Block has no computation of its own;
// Call on a Block panics with ErrForwardNotImplemented.
type Block struct {
	Module
	typeName string
}

// NewBlock creates an empty Block rendered as typeName by Repr.
// An empty typeName renders as "Block".
func NewBlock(typeName string) *Block {
	return &Block{typeName: typeName}
}

// TypeName returns the display name of the block.
func (b *Block) TypeName() string {
	if b.typeName == "" {
		return "Block"
	}
	return b.typeName
}

func (b *Block) String() string { return Repr(b) }
