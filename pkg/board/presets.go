package board

// StandardOpening is the classic 8x8 chess opening array embedded in the
// top-left corner of the 16x16 grid, using the inverted lowercase=White /
// uppercase=Black convention. Row 0 is Black's back rank; White's pieces
// sit on rows 6 and 7 and move north (toward row 0).
const StandardOpening = "" +
	"RNBQKBNR\n" +
	"PPPPPPPP\n" +
	"00000000\n" +
	"00000000\n" +
	"00000000\n" +
	"00000000\n" +
	"pppppppp\n" +
	"rnbqkbnr\n"
