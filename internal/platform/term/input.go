package term

import (
	"bufio"
	"io"

	"github.com/vovakirdan/gridsnake/internal/core"
)

const (
	keyEsc   = 0x1b
	keyCtrlC = 0x03
)

// DecodeKeys turns one chunk of raw terminal bytes into actions.
// Arrow keys arrive as ESC [ A..D; an ESC with nothing after it in the
// same chunk is the Escape key. Unbound bytes are dropped.
func DecodeKeys(buf []byte) []core.Action {
	var actions []core.Action
	add := func(name string) {
		if a := core.LookupKey(name); a != core.ActionNone {
			actions = append(actions, a)
		}
	}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == keyEsc {
			if i+2 < len(buf) && buf[i+1] == '[' {
				switch buf[i+2] {
				case 'A':
					add("up")
				case 'B':
					add("down")
				case 'C':
					add("right")
				case 'D':
					add("left")
				}
				i += 2
				continue
			}
			if i == len(buf)-1 {
				add("esc")
			}
			continue
		}

		switch b {
		case keyCtrlC:
			add("ctrl+c")
		case '\r', '\n':
			add("enter")
		default:
			if b >= 'A' && b <= 'Z' {
				b += 'a' - 'A'
			}
			add(string(rune(b)))
		}
	}
	return actions
}

// streamKeys reads r until it fails, sending decoded actions on keys.
// The read error (io.EOF included) is reported on errs. It stops early
// once stop is closed.
func streamKeys(r io.Reader, keys chan<- core.Action, errs chan<- error, stop <-chan struct{}) {
	br := bufio.NewReader(r)
	buf := make([]byte, 64)
	for {
		n, err := br.Read(buf)
		for _, a := range DecodeKeys(buf[:n]) {
			select {
			case keys <- a:
			case <-stop:
				return
			}
		}
		if err != nil {
			select {
			case errs <- err:
			case <-stop:
			}
			return
		}
	}
}
