package common

import (
	"errors"
	"strconv"
	"strings"
)

const pieceNames = "pnbrqk"

func InitialPosition() Position {
	var p, err = NewPositionFromFEN(InitialPositionFen)
	if err != nil {
		panic(err)
	}
	return p
}

func NewPositionFromFEN(fen string) (Position, error) {
	var tokens = strings.Fields(fen)
	if len(tokens) < 4 || len(tokens) > 6 {
		return Position{}, &ParseError{Section: SectionFen, Text: fen}
	}

	var p = Position{
		EpSquare:   SquareNone,
		MoveNumber: 1,
	}

	if err := p.parseBoard(tokens[0]); err != nil {
		return Position{}, err
	}

	switch tokens[1] {
	case "w":
		p.WhiteMove = true
	case "b":
		p.WhiteMove = false
	default:
		return Position{}, &ParseError{Section: SectionSide, Text: tokens[1]}
	}

	if tokens[2] != "-" {
		for _, ch := range tokens[2] {
			var right int
			switch ch {
			case 'K':
				right = WhiteKingSide
			case 'Q':
				right = WhiteQueenSide
			case 'k':
				right = BlackKingSide
			case 'q':
				right = BlackQueenSide
			default:
				return Position{}, &ParseError{Section: SectionCastling, Text: tokens[2]}
			}
			if p.CastleRights&right != 0 {
				return Position{}, &ParseError{Section: SectionCastling, Text: tokens[2]}
			}
			p.CastleRights |= right
		}
	}

	var epSquare, err = ParseSquare(tokens[3])
	if err != nil {
		return Position{}, &ParseError{Section: SectionEnPassant, Text: tokens[3], Err: err}
	}
	if epSquare != SquareNone {
		// the pawn that just made the double push stands right behind the square
		var pushedSq = epSquare + let(p.WhiteMove, -8, 8)
		if Rank(epSquare) != let(p.WhiteMove, Rank6, Rank3) ||
			p.Pieces[sideIndex(!p.WhiteMove)][Pawn]&SquareMask[pushedSq] == 0 {
			return Position{}, &ParseError{Section: SectionEnPassant, Text: tokens[3]}
		}
	}
	p.EpSquare = epSquare

	if len(tokens) > 4 {
		p.Rule50, err = strconv.Atoi(tokens[4])
		if err != nil || p.Rule50 < 0 {
			return Position{}, &ParseError{Section: SectionHalfMove, Text: tokens[4], Err: err}
		}
	}
	if len(tokens) > 5 {
		p.MoveNumber, err = strconv.Atoi(tokens[5])
		if err != nil || p.MoveNumber < 1 {
			return Position{}, &ParseError{Section: SectionFullMove, Text: tokens[5], Err: err}
		}
	}

	if err := p.validate(); err != nil {
		return Position{}, &ParseError{Section: SectionBoard, Text: tokens[0], Err: err}
	}
	return p, nil
}

func (p *Position) parseBoard(s string) error {
	var ranks = strings.Split(s, "/")
	if len(ranks) != 8 {
		return &ParseError{Section: SectionBoard, Text: s}
	}
	for i, row := range ranks {
		var rank = Rank8 - i
		var file = FileA
		for _, ch := range row {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			var piece, side, ok = parsePiece(ch)
			if !ok || file > FileH {
				return &ParseError{Section: SectionBoard, Text: s}
			}
			p.Pieces[sideIndex(side)][piece] |= SquareMask[MakeSquare(file, rank)]
			file++
		}
		if file != 8 {
			return &ParseError{Section: SectionBoard, Text: s}
		}
	}
	return nil
}

func parsePiece(ch rune) (pieceType int, side bool, ok bool) {
	side = ch >= 'A' && ch <= 'Z'
	var i = strings.IndexRune(pieceNames, ch|0x20)
	if i < 0 {
		return Empty, false, false
	}
	return Pawn + i, side, true
}

func (p *Position) validate() error {
	for side := SideWhite; side <= SideBlack; side++ {
		if MoreThanOne(p.Pieces[side][King]) {
			return errors.New("more than one king")
		}
	}
	if p.Pieces[SideWhite][Pawn]&(Rank1Mask|Rank8Mask) != 0 ||
		p.Pieces[SideBlack][Pawn]&(Rank1Mask|Rank8Mask) != 0 {
		return errors.New("pawn on back rank")
	}
	var kingSq = p.kingSquare(!p.WhiteMove)
	if kingSq != SquareNone && p.isAttackedBySide(kingSq, p.WhiteMove) {
		return errors.New("side not to move is in check")
	}
	return nil
}

func (p *Position) String() string {
	var sb strings.Builder

	for rank := Rank8; rank >= Rank1; rank-- {
		var emptyCount = 0
		for file := FileA; file <= FileH; file++ {
			var piece, side = p.PieceOn(MakeSquare(file, rank))
			if piece == Empty {
				emptyCount++
				continue
			}
			if emptyCount != 0 {
				sb.WriteString(strconv.Itoa(emptyCount))
				emptyCount = 0
			}
			sb.WriteString(pieceToChar(piece, side))
		}
		if emptyCount != 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		if rank != Rank1 {
			sb.WriteString("/")
		}
	}

	sb.WriteString(let(p.WhiteMove, " w ", " b "))

	if p.CastleRights == 0 {
		sb.WriteString("-")
	} else {
		if (p.CastleRights & WhiteKingSide) != 0 {
			sb.WriteString("K")
		}
		if (p.CastleRights & WhiteQueenSide) != 0 {
			sb.WriteString("Q")
		}
		if (p.CastleRights & BlackKingSide) != 0 {
			sb.WriteString("k")
		}
		if (p.CastleRights & BlackQueenSide) != 0 {
			sb.WriteString("q")
		}
	}
	sb.WriteString(" ")
	sb.WriteString(SquareName(p.EpSquare))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.Rule50))
	sb.WriteString(" ")
	sb.WriteString(strconv.Itoa(p.MoveNumber))

	return sb.String()
}

func pieceToChar(pieceType int, side bool) string {
	var result = string(pieceNames[pieceType-Pawn])
	if side {
		result = strings.ToUpper(result)
	}
	return result
}

func (p *Position) Occupied(side int) uint64 {
	var pieces = &p.Pieces[side]
	return pieces[Pawn] | pieces[Knight] | pieces[Bishop] |
		pieces[Rook] | pieces[Queen] | pieces[King]
}

func (p *Position) PiecesByColor(white bool) uint64 {
	return p.Occupied(sideIndex(white))
}

func (p *Position) AllPieces() uint64 {
	return p.Occupied(SideWhite) | p.Occupied(SideBlack)
}

func (p *Position) pieceTypeOn(side, sq int) int {
	var bb = SquareMask[sq]
	for piece := Pawn; piece <= King; piece++ {
		if p.Pieces[side][piece]&bb != 0 {
			return piece
		}
	}
	return Empty
}

// PieceOn returns the piece type on sq and whether it is white.
func (p *Position) PieceOn(sq int) (pieceType int, side bool) {
	if piece := p.pieceTypeOn(SideWhite, sq); piece != Empty {
		return piece, true
	}
	return p.pieceTypeOn(SideBlack, sq), false
}

func (p *Position) WhatPiece(sq int) int {
	var piece, _ = p.PieceOn(sq)
	return piece
}

func (p *Position) kingSquare(white bool) int {
	var kings = p.Pieces[sideIndex(white)][King]
	if kings == 0 {
		return SquareNone
	}
	return FirstOne(kings)
}

func (p *Position) attackersTo(sq int, occ uint64) uint64 {
	var white, black = &p.Pieces[SideWhite], &p.Pieces[SideBlack]
	return (blackPawnAttacks[sq] & white[Pawn]) |
		(whitePawnAttacks[sq] & black[Pawn]) |
		(KnightAttacks[sq] & (white[Knight] | black[Knight])) |
		(BishopAttacks(sq, occ) & (white[Bishop] | black[Bishop] | white[Queen] | black[Queen])) |
		(RookAttacks(sq, occ) & (white[Rook] | black[Rook] | white[Queen] | black[Queen])) |
		(KingAttacks[sq] & (white[King] | black[King]))
}

func (p *Position) isAttackedBySide(sq int, white bool) bool {
	return p.attackersTo(sq, p.AllPieces())&p.PiecesByColor(white) != 0
}

// IsCheck reports whether the side to move is in check.
func (p *Position) IsCheck() bool {
	var kingSq = p.kingSquare(p.WhiteMove)
	return kingSq != SquareNone && p.isAttackedBySide(kingSq, !p.WhiteMove)
}

// IsRepetition compares everything but the move counters.
func (p *Position) IsRepetition(other *Position) bool {
	return p.Pieces == other.Pieces &&
		p.WhiteMove == other.WhiteMove &&
		p.CastleRights == other.CastleRights &&
		p.EpSquare == other.EpSquare
}

// AttackedSquares is the union of squares attacked by the pieces of one side.
func (p *Position) AttackedSquares(white bool) uint64 {
	var pieces = &p.Pieces[sideIndex(white)]
	var occ = p.AllPieces()
	var result uint64
	if white {
		result = AllWhitePawnAttacks(pieces[Pawn])
	} else {
		result = AllBlackPawnAttacks(pieces[Pawn])
	}
	for x := pieces[Knight]; x != 0; x &= x - 1 {
		result |= KnightAttacks[FirstOne(x)]
	}
	for x := pieces[Bishop] | pieces[Queen]; x != 0; x &= x - 1 {
		result |= BishopAttacks(FirstOne(x), occ)
	}
	for x := pieces[Rook] | pieces[Queen]; x != 0; x &= x - 1 {
		result |= RookAttacks(FirstOne(x), occ)
	}
	if pieces[King] != 0 {
		result |= KingAttacks[FirstOne(pieces[King])]
	}
	return result
}
