package gpr

// ChunkKind discriminates the four chunk variants.
type ChunkKind int

const (
	ChunkComment ChunkKind = iota
	ChunkWordAddress
	ChunkPercent
	ChunkWord
)

func (k ChunkKind) String() string {
	switch k {
	case ChunkComment:
		return "comment"
	case ChunkWordAddress:
		return "word-address"
	case ChunkPercent:
		return "percent"
	case ChunkWord:
		return "word"
	}
	return "unknown"
}

// Chunk is one atomic semantic unit within a block: a comment, a
// word-address such as X10.5 or G1, the % program boundary marker, or an
// isolated single-character word with no value. Chunks are immutable and
// structurally comparable. Accessors for a variant the chunk does not
// hold panic; callers that cannot know the kind must check Kind first.
type Chunk struct {
	kind ChunkKind

	// comment payload
	leftDelim  byte
	rightDelim byte
	text       string

	// word-address payload
	letter byte
	addr   Address

	// isolated-word payload
	word byte
}

// NewComment returns a comment chunk with the given delimiter pair and
// inner text. Bracket and paren comments store the text with delimiters
// stripped; line comments use ';' for both delimiters.
func NewComment(left, right byte, text string) Chunk {
	return Chunk{kind: ChunkComment, leftDelim: left, rightDelim: right, text: text}
}

// NewWordAddress returns a word-address chunk pairing a letter with its
// numeric address. The letter's case is preserved from the source.
func NewWordAddress(letter byte, a Address) Chunk {
	return Chunk{kind: ChunkWordAddress, letter: letter, addr: a}
}

// NewIsolatedWord returns a chunk for a single character with no value.
func NewIsolatedWord(c byte) Chunk { return Chunk{kind: ChunkWord, word: c} }

// NewPercent returns the '%' program boundary chunk. All percent chunks
// are equal to each other.
func NewPercent() Chunk { return Chunk{kind: ChunkPercent} }

func (c Chunk) Kind() ChunkKind { return c.kind }

func (c Chunk) mustBe(k ChunkKind, accessor string) {
	if c.kind != k {
		panic("gpr: " + accessor + " called on " + c.kind.String() + " chunk")
	}
}

// LeftDelim returns the opening delimiter of a comment chunk.
func (c Chunk) LeftDelim() byte {
	c.mustBe(ChunkComment, "LeftDelim")
	return c.leftDelim
}

// RightDelim returns the closing delimiter of a comment chunk.
func (c Chunk) RightDelim() byte {
	c.mustBe(ChunkComment, "RightDelim")
	return c.rightDelim
}

// CommentText returns the inner text of a comment chunk.
func (c Chunk) CommentText() string {
	c.mustBe(ChunkComment, "CommentText")
	return c.text
}

// Letter returns the letter of a word-address chunk.
func (c Chunk) Letter() byte {
	c.mustBe(ChunkWordAddress, "Letter")
	return c.letter
}

// Address returns the numeric address of a word-address chunk.
func (c Chunk) Address() Address {
	c.mustBe(ChunkWordAddress, "Address")
	return c.addr
}

// Word returns the character of an isolated-word chunk.
func (c Chunk) Word() byte {
	c.mustBe(ChunkWord, "Word")
	return c.word
}

// Equal reports structural equality: same variant, same payload.
func (c Chunk) Equal(o Chunk) bool {
	if c.kind != o.kind {
		return false
	}
	switch c.kind {
	case ChunkComment:
		return c.leftDelim == o.leftDelim &&
			c.rightDelim == o.rightDelim &&
			c.text == o.text
	case ChunkWordAddress:
		return c.letter == o.letter && c.addr.Equal(o.addr)
	case ChunkPercent:
		return true
	case ChunkWord:
		return c.word == o.word
	}
	return false
}
