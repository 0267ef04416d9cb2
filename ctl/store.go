package ctl

import (
	"errors"
)

// Microprogram geometry. The opcode byte addresses the Decode Region
// directly; everything above it is the Sequencer Region, with the top
// 32 slots reserved for the shared finisher routines.
const (
	STORE_SIZE  = 512   // Total control words.
	DECODE_BASE = 0x000 // First Decode Region index.
	DECODE_SIZE = 0x100 // Decode Region length (one slot per opcode).
	SEQ_BASE    = 0x100 // First Sequencer Region index.
	FINISH_BASE = 0x1E0 // First finisher slot.
	FINISH_SIZE = 0x20  // Finisher slots (one per 5-bit pointer).
	RESET_INDEX = 0x100 // Entry index forced by reset.
)

// Store is the immutable microprogram memory: 512 control words,
// populated once at start-up and read for the process lifetime.
type Store struct {
	word   [STORE_SIZE]Word
	loaded bool
}

// Load populates the store from an image. It fails with a configuration
// error if the word count or width is wrong, or if the store was already
// loaded; a failed load leaves the store empty.
func (st *Store) Load(image []uint64) (err error) {
	if st.loaded {
		err = errors.Join(ErrConfiguration, ErrImageLoaded)
		return
	}
	if len(image) != STORE_SIZE {
		err = errors.Join(ErrConfiguration, ErrImageCount(len(image)))
		return
	}
	for n, raw := range image {
		if Word(raw)&^WORD_MASK != 0 {
			err = errors.Join(ErrConfiguration, ErrWordWidth(n))
			return
		}
	}
	for n, raw := range image {
		st.word[n] = Word(raw)
	}
	st.loaded = true
	return
}

// Read returns the control word at an index. It is total: the index is
// reduced modulo the store size, and every slot of a loaded image holds
// a defined word.
func (st *Store) Read(index uint16) Word {
	return st.word[index%STORE_SIZE]
}

// Image returns a copy of the loaded image.
func (st *Store) Image() (image []uint64) {
	image = make([]uint64, STORE_SIZE)
	for n, word := range st.word {
		image[n] = uint64(word)
	}
	return
}
