package rijndael

import "github.com/cryptocex/cex/util"

// expandStandardKey runs the classical Rijndael key expansion (FIPS-197
// §5.2, generalized to Nk > 8 for the 512-bit-key / 22-round case:
// every word at a multiple of Nk gets RotWord+SubWord+Rcon; when Nk > 6,
// the word four positions later within each Nk-word group additionally
// gets SubWord.
func expandStandardKey(key []byte, nk, nb, rounds int) []uint32 {
	total := nb * (rounds + 1)
	w := make([]uint32, total)

	for i := 0; i < nk; i++ {
		w[i] = util.BE32(key, i*4)
	}

	rconIdx := 0
	for i := nk; i < total; i++ {
		temp := w[i-1]
		if i%nk == 0 {
			temp = subWord(rotWord(temp)) ^ (uint32(rcon[rconIdx]) << 24)
			rconIdx++
		} else if nk > 6 && i%nk == 4 {
			temp = subWord(temp)
		}
		w[i] = w[i-nk] ^ temp
	}
	return w
}

func rotWord(w uint32) uint32 {
	return (w << 8) | (w >> 24)
}

func subWord(w uint32) uint32 {
	return uint32(sbox[byte(w>>24)])<<24 |
		uint32(sbox[byte(w>>16)])<<16 |
		uint32(sbox[byte(w>>8)])<<8 |
		uint32(sbox[byte(w)])
}

// shiftOffsets returns the ShiftRows left-rotation amount for rows 0..3,
// following the official Rijndael table: rows shift by {0,1,2,3} for
// Nb in {4,6} and {0,1,3,4} for Nb=8; the published Rijndael proposal's
// Nb=8 table — 0,1,3,4 — is what's implemented here.
func shiftOffsets(nb int) [4]int {
	if nb == 8 {
		return [4]int{0, 1, 3, 4}
	}
	return [4]int{0, 1, 2, 3}
}

func stateAt(state []byte, r, c int) byte      { return state[r+4*c] }
func setStateAt(state []byte, r, c int, v byte) { state[r+4*c] = v }

func subBytes(state []byte) {
	for i := range state {
		state[i] = sbox[state[i]]
	}
}

func invSubBytes(state []byte) {
	for i := range state {
		state[i] = invSbox[state[i]]
	}
}

func shiftRows(state []byte, nb int) {
	offs := shiftOffsets(nb)
	var row [8]byte
	for r := 1; r < 4; r++ {
		for c := 0; c < nb; c++ {
			row[c] = stateAt(state, r, c)
		}
		amt := offs[r]
		for c := 0; c < nb; c++ {
			setStateAt(state, r, c, row[(c+amt)%nb])
		}
	}
}

func invShiftRows(state []byte, nb int) {
	offs := shiftOffsets(nb)
	var row [8]byte
	for r := 1; r < 4; r++ {
		for c := 0; c < nb; c++ {
			row[c] = stateAt(state, r, c)
		}
		amt := offs[r]
		for c := 0; c < nb; c++ {
			setStateAt(state, r, c, row[((c-amt)%nb+nb)%nb])
		}
	}
}

// mixColumns applies the fixed 4x4 circulant {02,03,01,01} matrix to each
// column. This matrix is the same regardless of Nb — Rijndael's state
// always has 4 rows; only the column count changes with block size.
func mixColumns(state []byte, nb int) {
	for c := 0; c < nb; c++ {
		a0 := stateAt(state, 0, c)
		a1 := stateAt(state, 1, c)
		a2 := stateAt(state, 2, c)
		a3 := stateAt(state, 3, c)

		setStateAt(state, 0, c, gmul(a0, 2)^gmul(a1, 3)^a2^a3)
		setStateAt(state, 1, c, a0^gmul(a1, 2)^gmul(a2, 3)^a3)
		setStateAt(state, 2, c, a0^a1^gmul(a2, 2)^gmul(a3, 3))
		setStateAt(state, 3, c, gmul(a0, 3)^a1^a2^gmul(a3, 2))
	}
}

func invMixColumns(state []byte, nb int) {
	for c := 0; c < nb; c++ {
		a0 := stateAt(state, 0, c)
		a1 := stateAt(state, 1, c)
		a2 := stateAt(state, 2, c)
		a3 := stateAt(state, 3, c)

		setStateAt(state, 0, c, gmul(a0, 0x0e)^gmul(a1, 0x0b)^gmul(a2, 0x0d)^gmul(a3, 0x09))
		setStateAt(state, 1, c, gmul(a0, 0x09)^gmul(a1, 0x0e)^gmul(a2, 0x0b)^gmul(a3, 0x0d))
		setStateAt(state, 2, c, gmul(a0, 0x0d)^gmul(a1, 0x09)^gmul(a2, 0x0e)^gmul(a3, 0x0b))
		setStateAt(state, 3, c, gmul(a0, 0x0b)^gmul(a1, 0x0d)^gmul(a2, 0x09)^gmul(a3, 0x0e))
	}
}

func addRoundKey(state []byte, w []uint32, round, nb int) {
	for c := 0; c < nb; c++ {
		word := w[round*nb+c]
		setStateAt(state, 0, c, stateAt(state, 0, c)^byte(word>>24))
		setStateAt(state, 1, c, stateAt(state, 1, c)^byte(word>>16))
		setStateAt(state, 2, c, stateAt(state, 2, c)^byte(word>>8))
		setStateAt(state, 3, c, stateAt(state, 3, c)^byte(word))
	}
}

func encryptBlock(in, out []byte, w []uint32, rounds, nb int) {
	state := make([]byte, nb*4)
	copy(state, in)

	addRoundKey(state, w, 0, nb)
	for round := 1; round < rounds; round++ {
		subBytes(state)
		shiftRows(state, nb)
		mixColumns(state, nb)
		addRoundKey(state, w, round, nb)
	}
	subBytes(state)
	shiftRows(state, nb)
	addRoundKey(state, w, rounds, nb)

	copy(out, state)
}

func decryptBlock(in, out []byte, w []uint32, rounds, nb int) {
	state := make([]byte, nb*4)
	copy(state, in)

	addRoundKey(state, w, rounds, nb)
	for round := rounds - 1; round >= 1; round-- {
		invShiftRows(state, nb)
		invSubBytes(state)
		addRoundKey(state, w, round, nb)
		invMixColumns(state, nb)
	}
	invShiftRows(state, nb)
	invSubBytes(state)
	addRoundKey(state, w, 0, nb)

	copy(out, state)
}
