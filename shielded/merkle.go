package shielded

import "lukechampine.com/blake3"

// TreeDepth is the default altitude of the note commitment tree.
const TreeDepth = 32

func hashPair(left, right [32]byte) [32]byte {
	h := blake3.New(32, nil)
	h.Write(left[:])
	h.Write(right[:])
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// foldMerklePath folds an altitude-indexed authentication path starting
// from a leaf (the note commitment) up to the root. At altitude lvl, bit
// lvl of position selects whether the sibling is the left child (bit set)
// or the right child (bit clear).
func foldMerklePath(leaf [32]byte, path [][32]byte, position uint64) [32]byte {
	acc := leaf
	for lvl, sibling := range path {
		if (position>>uint(lvl))&1 == 1 {
			acc = hashPair(sibling, acc)
		} else {
			acc = hashPair(acc, sibling)
		}
	}
	return acc
}
