package ctl

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/Arlet/verilog-65C02/internal"
)

var _ctl_defines = map[string]string{
	"STORE_SIZE":  fmt.Sprintf("%d", STORE_SIZE),
	"DECODE_SIZE": fmt.Sprintf("%d", DECODE_SIZE),
	"SEQ_BASE":    fmt.Sprintf("%d", SEQ_BASE),
	"FINISH_BASE": fmt.Sprintf("%d", FINISH_BASE),
	"FINISH_SIZE": fmt.Sprintf("%d", FINISH_SIZE),
	"RESET_INDEX": fmt.Sprintf("%d", RESET_INDEX),
}

// Defines returns the microprogram geometry and address-bus selector
// constants, as predeclared symbols for microcode source.
func Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_ctl_defines), maps.All(_bus_defines))
}

// Input is the per-cycle external stimulus.
type Input struct {
	Reset bool  // Reset level; overrides all next-index computation.
	Data  uint8 // Data/opcode byte. The opcode is valid on decode cycles.
	Cond  bool  // Branch-taken decision from the ALU/flags collaborator.
}

// Signals is the full control-signal surface for one cycle.
type Signals struct {
	Sync        bool   // New instruction starting this cycle.
	FlagMask    uint8  // Flag-update selector; nonzero only when Sync.
	AluValid    bool   // AluOp carries an operation this cycle.
	AluOp       uint8  // 7-bit compound ALU operation code.
	Bus         BusOp  // Expanded address-bus operation.
	DataOut     uint8  // Data-output source selector.
	WriteEnable bool   // Registered write-enable (one cycle late).
	RegBits     uint16 // Forwarded register-file / destination bits.
}

// Engine composes the microprogram store, the sequencer, and the
// address-bus expander into the control-signal surface of the core.
type Engine struct {
	Verbose bool // Set to enable per-cycle logging.

	Store *Store
	Seq   *Sequencer
}

// NewEngine loads a microcode image and creates the engine in the reset
// state.
func NewEngine(image []uint64) (eng *Engine, err error) {
	store := &Store{}
	err = store.Load(image)
	if err != nil {
		return
	}

	eng = &Engine{
		Store: store,
		Seq:   NewSequencer(store),
	}
	return
}

// Step computes this cycle's outputs from the latched word and the
// same-cycle inputs, then advances the sequencer by one clock edge.
func (eng *Engine) Step(in Input) (sig Signals) {
	word := eng.Seq.Current()
	sign := in.Data&0x80 != 0

	sig.Sync = eng.Seq.Sync()
	if sig.Sync {
		sig.FlagMask = word.FlagMask()
	}
	sig.AluValid = !word.AluNotNeeded()
	if sig.AluValid {
		sig.AluOp = word.AluOp()
	}
	sig.Bus = Expand(word.BusSel(), in.Cond, sign)
	sig.DataOut = word.DataOut()
	sig.WriteEnable = eng.Seq.WriteEnabled()
	sig.RegBits = word.RegBits()

	if eng.Verbose {
		log.Printf("ctl: %v data:%02x cond:%v -> %v", eng, in.Data, in.Cond, sig)
	}

	eng.Seq.Tick(in.Data, in.Reset)

	return
}

// String returns the current engine state as a string.
func (eng *Engine) String() string {
	word := eng.Seq.Current()
	return fmt.Sprintf("%03x %v fin:%02x we:%v", eng.Seq.Index(), word.Mode(),
		eng.Seq.Finisher(), eng.Seq.WriteEnabled())
}

// String returns the signal surface as a string.
func (sig Signals) String() (text string) {
	text = fmt.Sprintf("bus:%v dout:%v reg:%03x", sig.Bus, sig.DataOut, sig.RegBits)
	if sig.Sync {
		text += fmt.Sprintf(" sync flags:%02x", sig.FlagMask)
	}
	if sig.AluValid {
		text += fmt.Sprintf(" alu:%02x", sig.AluOp)
	}
	if sig.WriteEnable {
		text += " we"
	}
	return
}
