package pkg

// grid cells that do not hold an antenna
const (
	EMPTY_CELL rune = '.'
	BLANK_CELL rune = ' '
)

const (
	BZIP2_EXTENSION = ".bz2"
)

const (
	DEBUG = false
)

func IsAntennaCell(c rune) bool {
	return c != EMPTY_CELL && c != BLANK_CELL
}
