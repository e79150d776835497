package reference

import (
	"fmt"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"log"
	"strconv"
	"strings"
)

// Index is a parsed fai index: the contig catalog of a fasta file.
type Index struct {
	chroms  []chrOffset    // for search by index
	nameMap map[string]int // maps contig name to index in chroms
}

// chrOffset holds the fields of one fai line.
type chrOffset struct {
	name         string // name of this reference sequence
	len          int    // total length of this reference sequence, in bases
	offset       int    // offset within the fasta file of this sequence's first base
	basesPerLine int    // the number of bases on each line
	bytesPerLine int    // the number of bytes in each line, including the newline
}

// String method for Index enables easy writing with the fmt package.
func (idx Index) String() string {
	answer := new(strings.Builder)
	for i := range idx.chroms {
		answer.WriteString(idx.chroms[i].String())
		answer.WriteByte('\n')
	}
	return answer.String()
}

func (c chrOffset) String() string {
	return fmt.Sprintf("%s\t%d\t%d\t%d\t%d", c.name, c.len, c.offset, c.basesPerLine, c.bytesPerLine)
}

// Size returns the length of the named contig in bases. The second return is
// false if the contig is not present in the index.
func (idx Index) Size(contig string) (int, bool) {
	i, ok := idx.nameMap[contig]
	if !ok {
		return 0, false
	}
	return idx.chroms[i].len, true
}

// Names returns contig names in index order.
func (idx Index) Names() []string {
	names := make([]string, len(idx.chroms))
	for i := range idx.chroms {
		names[i] = idx.chroms[i].name
	}
	return names
}

// ReadIndex reads a fai index file to an Index struct that can be used for random access.
func ReadIndex(filename string) Index {
	file := fileio.EasyOpen(filename)
	var answer Index
	var curr chrOffset
	var line string
	var col []string
	var done bool
	var err error
	for line, done = fileio.EasyNextRealLine(file); !done; line, done = fileio.EasyNextRealLine(file) {
		col = strings.Split(line, "\t")
		if len(col) != 5 {
			log.Fatalf("ERROR: malformed index file: %s\nerror on line:\n%s\n", filename, line)
		}

		curr.name = col[0]
		curr.len, err = strconv.Atoi(col[1])
		exception.PanicOnErr(err)
		curr.offset, err = strconv.Atoi(col[2])
		exception.PanicOnErr(err)
		curr.basesPerLine, err = strconv.Atoi(col[3])
		exception.PanicOnErr(err)
		curr.bytesPerLine, err = strconv.Atoi(col[4])
		exception.PanicOnErr(err)

		answer.chroms = append(answer.chroms, curr)
	}

	err = file.Close()
	exception.PanicOnErr(err)

	answer.nameMap = make(map[string]int)
	for i := range answer.chroms {
		answer.nameMap[answer.chroms[i].name] = i
	}
	return answer
}
