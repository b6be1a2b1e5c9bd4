package optimize

import (
	"strings"
)

// Stats counts how many times each rewrite rule fired.
type Stats struct {
	// IdentitiesRemoved counts deleted `add x, 0`, `sub x, 0` and `imul x, 1`.
	IdentitiesRemoved int

	// StrengthReduced counts `imul x, 2` rewritten to `shl x, 1`.
	StrengthReduced int

	// JumpsRemoved counts jumps deleted because their target label follows.
	JumpsRemoved int

	// MovesRemoved counts the second move of a `mov a, b` / `mov b, a` pair.
	MovesRemoved int
}

// Total returns the number of rewrites performed.
func (s Stats) Total() int {
	return s.IdentitiesRemoved + s.StrengthReduced + s.JumpsRemoved + s.MovesRemoved
}

// Optimize runs the peephole pass over a listing and returns the optimized
// copy.  The input is left untouched.
func Optimize(lines []string) []string {
	out, _ := OptimizeWithStats(lines)
	return out
}

// OptimizeWithStats is Optimize but also reports which rules fired.
//
// The pass is a single left-to-right scan whose window is the last line
// already written to the output and the next input line.  Deleting a line
// therefore never leaves the new neighbours unexamined, so optimizing an
// optimized listing changes nothing.
func OptimizeWithStats(lines []string) ([]string, Stats) {
	var stats Stats
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			out = append(out, line)
			continue
		}

		inst := parseInstruction(trimmed)

		switch {
		case inst.isIdentity():
			stats.IdentitiesRemoved++
			continue
		case inst.mnemonic == "imul" && len(inst.operands) == 2 && inst.operands[1] == "2":
			indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
			out = append(out, indent+"shl "+inst.operands[0]+", 1")
			stats.StrengthReduced++
			continue
		case inst.label != "":
			// every jump to this label directly above it is redundant
			for len(out) > 0 && parseInstruction(strings.TrimSpace(out[len(out)-1])).jumpsTo(inst.label) {
				out = out[:len(out)-1]
				stats.JumpsRemoved++
			}
		case inst.mnemonic == "mov" && len(inst.operands) == 2 && len(out) > 0:
			prev := parseInstruction(strings.TrimSpace(out[len(out)-1]))
			if prev.mnemonic == "mov" && len(prev.operands) == 2 &&
				strings.EqualFold(prev.operands[0], inst.operands[1]) &&
				strings.EqualFold(prev.operands[1], inst.operands[0]) {
				stats.MovesRemoved++
				continue
			}
		}

		out = append(out, line)
	}

	return out, stats
}

// -----------------------------------------------------------------------------

// instruction is a parsed listing line.
type instruction struct {
	// mnemonic is lower-cased; it is empty for labels.
	mnemonic string

	// operands are trimmed but keep their case.
	operands []string

	// label is set when the line defines a label.
	label string
}

// parseInstruction splits a trimmed line into its parts.
func parseInstruction(trimmed string) instruction {
	if strings.HasSuffix(trimmed, ":") && !strings.ContainsAny(trimmed, " \t,") {
		return instruction{label: strings.TrimSuffix(trimmed, ":")}
	}

	split := strings.IndexAny(trimmed, " \t")
	if split == -1 {
		return instruction{mnemonic: strings.ToLower(trimmed)}
	}

	inst := instruction{mnemonic: strings.ToLower(trimmed[:split])}
	if rest := strings.TrimSpace(trimmed[split:]); rest != "" {
		for _, operand := range strings.Split(rest, ",") {
			inst.operands = append(inst.operands, strings.TrimSpace(operand))
		}
	}

	return inst
}

// isIdentity returns whether the instruction leaves its operand unchanged.
func (inst instruction) isIdentity() bool {
	if len(inst.operands) != 2 {
		return false
	}

	switch inst.mnemonic {
	case "add", "sub":
		return inst.operands[1] == "0"
	case "imul":
		return inst.operands[1] == "1"
	}

	return false
}

// jumpsTo returns whether the instruction is an unconditional jump to label.
func (inst instruction) jumpsTo(label string) bool {
	return inst.mnemonic == "jmp" && len(inst.operands) == 1 && strings.EqualFold(inst.operands[0], label)
}
