package ctl

// Sequencer holds the microcode state that survives between clock edges:
// the latched control word, the finisher pointer, and the registered
// write-enable. The clock edge (Tick) is the sole mutator.
type Sequencer struct {
	store *Store

	current  Word   // Control word latched at the previous edge.
	index    uint16 // Index the current word was read from.
	finisher uint8  // 5-bit finisher pointer.
	pending  bool   // Write-enable read last cycle, visible this cycle.
}

// NewSequencer creates a sequencer in the reset state.
func NewSequencer(store *Store) (seq *Sequencer) {
	seq = &Sequencer{
		store: store,
	}
	seq.Reset()
	return
}

// Reset forces the fixed reset-entry slot, clears the finisher pointer
// to its default, and drops any pending write.
func (seq *Sequencer) Reset() {
	seq.index = RESET_INDEX
	seq.current = seq.store.Read(RESET_INDEX)
	seq.finisher = 0
	seq.pending = false
}

// NextIndex computes the index of the next control word from the latched
// word. The opcode byte is consulted only on decode cycles.
func (seq *Sequencer) NextIndex(opcode uint8) (index uint16) {
	switch seq.current.Mode() {
	case MODE_DECODE:
		index = DECODE_BASE | uint16(opcode)
	case MODE_FINISH:
		index = FINISH_BASE | uint16(seq.finisher)
	default: // MODE_JUMP, MODE_SAVE
		index = SEQ_BASE | uint16(seq.current.AddrLow())
	}
	return
}

// Tick advances the sequencer by one clock edge. A save-variant word with
// the ALU unneeded records its finisher pointer before the word is
// replaced; the write-enable of the outgoing word becomes visible on the
// following cycle. Reset overrides the next-index computation entirely.
func (seq *Sequencer) Tick(opcode uint8, reset bool) {
	if reset {
		seq.Reset()
		return
	}

	if seq.current.Mode() == MODE_SAVE && seq.current.AluNotNeeded() {
		seq.finisher = seq.current.Finisher()
	}
	seq.pending = seq.current.WriteEnable()

	seq.index = seq.NextIndex(opcode)
	seq.current = seq.store.Read(seq.index)
}

// Current returns the latched control word.
func (seq *Sequencer) Current() Word {
	return seq.current
}

// Index returns the index the latched word was read from.
func (seq *Sequencer) Index() uint16 {
	return seq.index
}

// Finisher returns the stored 5-bit finisher pointer.
func (seq *Sequencer) Finisher() uint8 {
	return seq.finisher
}

// Sync reports whether this is a decode cycle: a new instruction is
// starting and the flag-update selector of the latched word is valid.
func (seq *Sequencer) Sync() bool {
	return seq.current.Mode() == MODE_DECODE
}

// WriteEnabled returns the registered write-enable: the value read from
// the previous cycle's word.
func (seq *Sequencer) WriteEnabled() bool {
	return seq.pending
}
