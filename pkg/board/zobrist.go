package board

import "math/rand"

// ZobristHash is a 64-bit position hash based on piece-squares, used for
// repetition draw detection and transposition table keys.
//
// See also: https://research.cs.wisc.edu/techreports/1970/TR88.pdf.
type ZobristHash uint64

// ZobristTable is a pseudo-randomized table for computing a position hash.
// Keys are drawn from a fixed, deterministic seed at construction time so
// that test vectors are reproducible.
type ZobristTable struct {
	pieces [NumColors][NumPieces][NumSquares]ZobristHash
	turn   ZobristHash // toggled in/out of the hash whenever side-to-move flips
}

func NewZobristTable(seed int64) *ZobristTable {
	ret := &ZobristTable{}

	r := rand.New(rand.NewSource(seed))

	for c := ZeroColor; c < NumColors; c++ {
		for p := ZeroPiece; p < NumPieces; p++ {
			for sq := ZeroSquare; sq < NumSquares; sq++ {
				ret.pieces[c][p][sq] = ZobristHash(r.Uint64())
			}
		}
	}
	ret.turn = ZobristHash(r.Uint64())
	return ret
}

// PieceKey returns the XOR key for the given (color, piece, square).
func (z *ZobristTable) PieceKey(c Color, p Piece, sq Square) ZobristHash {
	return z.pieces[c][p][sq]
}

// TurnKey returns the key XORed into the hash whenever Black is to move.
func (z *ZobristTable) TurnKey() ZobristHash {
	return z.turn
}

// Hash computes the zobrist hash for the given position from scratch. Used
// at construction time and for correctness self-checks; the incremental
// path is Position.hash, maintained by Make/Undo.
func (z *ZobristTable) Hash(p *Position) ZobristHash {
	var hash ZobristHash
	for c := ZeroColor; c < NumColors; c++ {
		for piece := ZeroPiece; piece < NumPieces; piece++ {
			bb := p.pieces[c][piece]
			for !bb.IsEmpty() {
				var sq Square
				sq, bb = bb.PopLSB()
				hash ^= z.pieces[c][piece][sq]
			}
		}
	}
	if p.turn == Black {
		hash ^= z.turn
	}
	return hash
}
