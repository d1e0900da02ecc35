package proxy

import (
	"bufio"
	"io"
)

// maxStreamLine bounds a single NDJSON line from the proxy.
const maxStreamLine = 1 << 20

func newLineScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxStreamLine)
	return s
}
